// Package datetime separates the three instant flavors the reminder engine
// works with: local wall-clock time, zone-aware UTC, and the zone-stripped
// UTC form that is written to storage. Each flavor is its own type and
// every conversion goes through the Clock or an explicit method.
package datetime

import (
	"fmt"
	"time"
)

// Local is a wall-clock instant in the configured local timezone.
type Local struct {
	t time.Time
}

func (l Local) Std() time.Time {
	return l.t
}

func (l Local) String() string {
	return l.t.Format("2006-01-02 15:04:05 MST")
}

// UTC is a zone-aware instant in UTC.
type UTC struct {
	t time.Time
}

func (u UTC) Std() time.Time {
	return u.t
}

func (u UTC) Add(d time.Duration) UTC {
	return UTC{t: u.t.Add(d)}
}

func (u UTC) Sub(o UTC) time.Duration {
	return u.t.Sub(o.t)
}

func (u UTC) Before(o UTC) bool {
	return u.t.Before(o.t)
}

func (u UTC) Equal(o UTC) bool {
	return u.t.Equal(o.t)
}

// Strip discards the zone tag without moving the point in time, producing
// the storage representation.
func (u UTC) Strip() Naive {
	return Naive{t: u.t.UTC()}
}

func (u UTC) String() string {
	return u.t.Format("2006-01-02 15:04:05") + " UTC"
}

// Naive is a zone-stripped instant as stored in the database. By convention
// it is always UTC; AsUTC reattaches the tag before any comparison.
type Naive struct {
	t time.Time
}

func (n Naive) AsUTC() UTC {
	return UTC{t: time.Date(
		n.t.Year(), n.t.Month(), n.t.Day(),
		n.t.Hour(), n.t.Minute(), n.t.Second(), n.t.Nanosecond(),
		time.UTC,
	)}
}

func (n Naive) Std() time.Time {
	return n.t
}

func (n Naive) IsZero() bool {
	return n.t.IsZero()
}

func (n Naive) Equal(o Naive) bool {
	return n.t.Equal(o.t)
}

func (n Naive) String() string {
	return n.t.Format("2006-01-02 15:04:05")
}

// NaiveFromStorage normalizes an instant read back from the database. The
// driver decodes `timestamp` columns with a UTC location already, but the
// location is forced here so the convention does not depend on the driver.
func NaiveFromStorage(t time.Time) Naive {
	return UTC{t: time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)}.Strip()
}

// Clock converts between the fixed local civil timezone and UTC. All other
// components receive a Clock instead of calling time.Now directly.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixedClock returns a clock frozen at the given instant, for tests.
func NewFixedClock(zone string, at time.Time) (*Clock, error) {
	clock, err := NewClock(zone)
	if err != nil {
		return nil, err
	}
	clock.now = func() time.Time { return at }
	return clock, nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) NowLocal() Local {
	return Local{t: c.now().In(c.loc)}
}

func (c *Clock) NowUTC() UTC {
	return UTC{t: c.now().UTC()}
}

func (c *Clock) ToUTC(l Local) UTC {
	return UTC{t: l.t.UTC()}
}

func (c *Clock) ToLocal(u UTC) Local {
	return Local{t: u.t.In(c.loc)}
}

// LocalFromStd wraps a std time as a Local instant, forcing the clock's
// location. Used at the resolver boundary where calendar arithmetic is done
// on plain time values.
func (c *Clock) LocalFromStd(t time.Time) Local {
	return Local{t: t.In(c.loc)}
}
