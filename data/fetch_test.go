package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/banachtech/volfit/util"
)

func day(t *testing.T, s string) time.Time {
	d, err := time.Parse(util.Layout, s)
	require.NoError(t, err)
	return d
}

func TestExpiryYears(t *testing.T) {
	asOf := day(t, "2026-08-21") // Friday

	// one business week on the trading clock
	require.InDelta(t, 5.0/252.0, expiryYears(asOf, day(t, "2026-08-28")), 1e-12)

	// a holiday-spanning week counts only the open days
	require.InDelta(t, 4.0/252.0, expiryYears(asOf, day(t, "2026-09-11"))-expiryYears(asOf, day(t, "2026-09-04")), 1e-12)

	// beyond the cutoff the ACT/365 fraction applies
	require.InDelta(t, 1.0, expiryYears(asOf, day(t, "2027-08-21")), 1e-12)

	// stale or same-day expiries stay non-positive so the caller skips them
	require.LessOrEqual(t, expiryYears(asOf, asOf), 0.0)
	require.Less(t, expiryYears(asOf, day(t, "2026-08-14")), 0.0)
}
