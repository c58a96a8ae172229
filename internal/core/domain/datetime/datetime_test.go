package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testZone = "America/Caracas"

func TestConversionsAreInverse(t *testing.T) {
	now := time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC)
	clock, err := NewFixedClock(testZone, now)
	require.NoError(t, err)

	local := clock.NowLocal()
	utc := clock.ToUTC(local)
	require.True(t, utc.Equal(clock.NowUTC()))
	require.Equal(t, local.Std().Unix(), utc.Std().Unix())

	back := clock.ToLocal(utc)
	require.Equal(t, local.Std(), back.Std())

	// Caracas is UTC-4, no DST.
	require.Equal(t, 10, local.Std().Hour())
}

func TestStripAndReattachDoNotDrift(t *testing.T) {
	clock, err := NewClock(testZone)
	require.NoError(t, err)

	local := clock.LocalFromStd(time.Date(2023, time.March, 10, 10, 5, 0, 0, clock.Location()))
	utc := clock.ToUTC(local)

	stored := utc.Strip()
	restored := stored.AsUTC()

	require.True(t, restored.Equal(utc))
	require.Equal(t, local.Std(), clock.ToLocal(restored).Std())
}

func TestNaiveFromStorageForcesUTCConvention(t *testing.T) {
	loc, err := time.LoadLocation(testZone)
	require.NoError(t, err)

	// A driver could hand back the same civil fields tagged with any zone;
	// the fields are what the convention is about.
	fromDriver := time.Date(2023, time.March, 10, 14, 5, 0, 0, loc)
	naive := NaiveFromStorage(fromDriver)

	require.Equal(t, 14, naive.AsUTC().Std().Hour())
	require.Equal(t, time.UTC, naive.AsUTC().Std().Location())
}

func TestWindowArithmetic(t *testing.T) {
	now := time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC)
	clock, err := NewFixedClock(testZone, now)
	require.NoError(t, err)

	utc := clock.NowUTC()
	later := utc.Add(5 * time.Minute)
	require.Equal(t, 5*time.Minute, later.Sub(utc))
	require.True(t, utc.Before(later))
}
