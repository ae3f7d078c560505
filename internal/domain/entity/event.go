package entity

import "github.com/google/uuid"

// UnitEventKind tells observers what happened to a unit.
type UnitEventKind string

const (
	UnitEventUpdated UnitEventKind = "updated"
	UnitEventDeleted UnitEventKind = "deleted"
)

// UnitEvent is one committed state change. It is produced once per mutation and never persisted.
type UnitEvent struct {
	Kind     UnitEventKind `json:"kind"`
	UnitID   uuid.UUID     `json:"unit_id"`
	Unit     *Unit         `json:"unit,omitempty"` // Full post-mutation state, nil for deletions.
	Sequence uint64        `json:"sequence"`       // Assigned by the broadcaster on publish.
}

// NewUpdatedEvent builds an updated event carrying a private copy of unit.
func NewUpdatedEvent(unit *Unit) UnitEvent {
	return UnitEvent{
		Kind:   UnitEventUpdated,
		UnitID: unit.ID,
		Unit:   unit.Clone(),
	}
}

// NewDeletedEvent builds a deleted event for id.
func NewDeletedEvent(id uuid.UUID) UnitEvent {
	return UnitEvent{
		Kind:   UnitEventDeleted,
		UnitID: id,
	}
}
