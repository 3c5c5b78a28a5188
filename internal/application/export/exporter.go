package export

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// The storefront stores article weight in kilograms; the wire schema
// expects grams.
var gramsPerKilogram = decimal.NewFromInt(1000)

// EntityExporter exports one local entity identified by its storefront id.
// Every adapter in this package implements it; the orchestrator and the
// inline dependency exports only depend on this interface.
type EntityExporter interface {
	Export(ctx context.Context, localID int64) error
}

// Clock returns the current time. Adapters take it injected so tests can
// pin "now" for default field synthesis.
type Clock func() time.Time

func localID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// remoteIDToInt converts an opaque remote identity to the numeric form the
// wire schema requires. Remote identities are strings at the domain
// boundary; the ERP's SOAP schema carries them as integers.
func remoteIDToInt(remoteID string) (int, error) {
	n, err := strconv.Atoi(remoteID)
	if err != nil {
		return 0, fmt.Errorf("export: remote id %q is not numeric: %w", remoteID, err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
