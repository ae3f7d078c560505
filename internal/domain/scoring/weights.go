package scoring

import (
	"maps"

	"leasing/internal/domain/entity"
)

// DefaultAmenityCap bounds the desirable_features term regardless of amenity count.
const DefaultAmenityCap = 20.0

// Weights maps amenity names to their contribution. Lookups go through an
// alias table so synonyms share one weight. A Weights value is immutable;
// WithAmenity returns an extended copy.
type Weights struct {
	weights map[string]float64
	aliases map[string]string
	cap     float64
}

// DefaultWeights returns the built-in amenity table.
func DefaultWeights() *Weights {
	return &Weights{
		weights: map[string]float64{
			"parking":        7,
			"laundry":        7,
			"pet_friendly":   6,
			"balcony":        4,
			"fitness_center": 4,
			"pool":           4,
			"dishwasher":     3,
			"ac":             3,
		},
		aliases: map[string]string{
			"washer_dryer":     "laundry",
			"in_unit_laundry":  "laundry",
			"pets":             "pet_friendly",
			"gym":              "fitness_center",
			"air_conditioning": "ac",
		},
		cap: DefaultAmenityCap,
	}
}

// WithAmenity returns a copy of w with name weighted at weight and the given
// aliases resolving to it. Names are normalized like unit amenities.
func (w *Weights) WithAmenity(name string, weight float64, aliases ...string) *Weights {
	next := &Weights{
		weights: maps.Clone(w.weights),
		aliases: maps.Clone(w.aliases),
		cap:     w.cap,
	}

	canonical := entity.NormalizeAmenity(name)
	delete(next.aliases, canonical)
	next.weights[canonical] = weight

	for _, alias := range aliases {
		key := entity.NormalizeAmenity(alias)
		if key == "" || key == canonical {
			continue
		}
		delete(next.weights, key)
		next.aliases[key] = canonical
	}

	return next
}

// WithCap returns a copy of w using a different amenity cap.
func (w *Weights) WithCap(limit float64) *Weights {
	next := &Weights{
		weights: maps.Clone(w.weights),
		aliases: maps.Clone(w.aliases),
		cap:     limit,
	}

	return next
}

// Canonical resolves an amenity name through the alias table.
func (w *Weights) Canonical(amenity string) string {
	key := entity.NormalizeAmenity(amenity)
	if target, ok := w.aliases[key]; ok {
		return target
	}

	return key
}

// Weight returns the weight of amenity, zero when unknown.
func (w *Weights) Weight(amenity string) float64 {
	return w.weights[w.Canonical(amenity)]
}

// Sum adds up the weights of amenities, counting each canonical amenity once,
// and applies the cap.
func (w *Weights) Sum(amenities []string) float64 {
	seen := make(map[string]struct{}, len(amenities))
	var total float64

	for _, amenity := range amenities {
		key := w.Canonical(amenity)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		total += w.weights[key]
	}

	return min(total, w.cap)
}
