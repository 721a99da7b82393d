// README: Hong Kong civil time source; injectable clock for services and tests.
package clock

import "time"

// Clock allows injecting time into services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// hongKong is the single civil timezone all toll evaluation happens in,
// regardless of the host's local zone. Hong Kong observes no DST, so the
// fixed-offset fallback is exact on hosts without tzdata.
var hongKong = loadHongKong()

func loadHongKong() *time.Location {
	loc, err := time.LoadLocation("Asia/Hong_Kong")
	if err != nil {
		return time.FixedZone("HKT", 8*60*60)
	}
	return loc
}

// Civil converts an instant to Hong Kong wall-clock time truncated to the
// minute ("HH:MM") and day-of-week (time.Sunday == 0).
func Civil(t time.Time) (string, time.Weekday) {
	hk := t.In(hongKong)
	return hk.Format("15:04"), hk.Weekday()
}

// CivilDate returns the Hong Kong calendar date of an instant as "YYYY-MM-DD".
func CivilDate(t time.Time) string {
	return t.In(hongKong).Format("2006-01-02")
}
