package scoring

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"leasing/internal/domain/entity"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every input e reads for unit at asOf, including e's own
// tables. Two calls return the same value exactly when Score would return
// the same result.
func (e *Engine) Fingerprint(unit *entity.Unit, market MarketContext, asOf time.Time) string {
	digest := xxhash.New()

	writeFields(digest,
		e.config,
		strconv.Itoa(max(unit.Price, 0)),
		strconv.Itoa(max(unit.Bedrooms, 0)),
		strings.Join(entity.NormalizeAmenities(unit.Amenities), ","),
		normalizeZone(unit.Location.Zip),
		strconv.Itoa(unit.ListingAgeDays(asOf)),
		strconv.FormatFloat(market.AveragePrice, 'f', 4, 64),
		strconv.Itoa(market.Comparables),
	)

	return strconv.FormatUint(digest.Sum64(), 16)
}

// configDigest hashes the amenity table, cap and zone set.
func (e *Engine) configDigest() string {
	digest := xxhash.New()

	writeFields(digest, "weights")
	for _, name := range slices.Sorted(maps.Keys(e.weights.weights)) {
		writeFields(digest, name, strconv.FormatFloat(e.weights.weights[name], 'g', -1, 64))
	}

	writeFields(digest, "aliases")
	for _, alias := range slices.Sorted(maps.Keys(e.weights.aliases)) {
		writeFields(digest, alias, e.weights.aliases[alias])
	}

	writeFields(digest, "cap", strconv.FormatFloat(e.weights.cap, 'g', -1, 64))

	writeFields(digest, "zones")
	writeFields(digest, slices.Sorted(maps.Keys(e.zones))...)

	return strconv.FormatUint(digest.Sum64(), 16)
}

func writeFields(digest *xxhash.Digest, parts ...string) {
	for _, part := range parts {
		_, _ = digest.WriteString(part)
		_, _ = digest.WriteString("\x1f")
	}
}
