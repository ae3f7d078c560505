package pubsub

import (
	"encoding/json"
	"strconv"

	"leasing/internal/domain/entity"
	"leasing/internal/errors"
)

// encodeEvent returns the message body and attributes shared by every provider.
// Attributes let subscribers filter on kind without decoding the body.
func encodeEvent(event *entity.UnitEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode unit event")
	}

	attributes := map[string]string{
		"kind":     string(event.Kind),
		"unit_id":  event.UnitID.String(),
		"sequence": strconv.FormatUint(event.Sequence, 10),
	}

	return data, attributes, nil
}
