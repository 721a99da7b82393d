// README: Toll resolver and aggregator; service keeps a live civil-time context.
package toll

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"tollwatch/internal/clock"
)

var ErrUnknownTunnel = errors.New("unknown tunnel")

// Harbour-crossing vehicle overrides apply after the private-car fare: taxis
// and the commercial bucket pay a flat rate all day, motorcycles pay 40% of
// the car fare.
const (
	harbourTaxiFare       = 25
	harbourCommercialFare = 50
	motorcycleFactor      = 0.4
)

// Resolve computes the current fare for one tunnel. It is pure: the same
// input always yields the same non-negative fare. Unknown vehicle classes
// degrade to private-car semantics; only an unknown tunnel id errors.
func Resolve(tunnelID string, in Input) (int, error) {
	t, ok := tunnelsByID[tunnelID]
	if !ok {
		return 0, ErrUnknownTunnel
	}
	return t.resolve(in), nil
}

// List resolves every registered tunnel in display order. The slice is built
// fresh on every call.
func List(in Input, locale string) []Item {
	items := make([]Item, 0, len(tunnels))
	for _, t := range tunnels {
		items = append(items, Item{ID: t.ID, Name: t.Name(locale), Toll: t.resolve(in)})
	}
	return items
}

func (t *Tunnel) resolve(in Input) int {
	switch t.strategy {
	case strategyHarbour:
		return t.harbourFare(in)
	case strategySchedule:
		return t.bandSchedule(in).priceAt(minuteOfDay(in.Time))
	case strategyPerVehicle:
		if fare, ok := t.rates[in.Vehicle]; ok {
			return fare
		}
		return t.rates[VehiclePrivateCar]
	default:
		return t.flat
	}
}

// bandSchedule picks the holiday table on Sundays and public holidays. The
// Sunday OR happens here, not in the holiday oracle.
func (t *Tunnel) bandSchedule(in Input) schedule {
	if in.IsPublicHoliday || in.DayOfWeek == time.Sunday {
		return t.holiday
	}
	return t.weekday
}

func (t *Tunnel) harbourFare(in Input) int {
	switch in.Vehicle {
	case VehicleTaxi:
		return harbourTaxiFare
	case VehicleCommercial:
		return harbourCommercialFare
	}
	car := t.bandSchedule(in).priceAt(minuteOfDay(in.Time))
	if in.Vehicle == VehicleMotorcycle {
		return int(math.Round(float64(car) * motorcycleFactor))
	}
	return car
}

// Oracle answers whether a Hong Kong calendar date is a public holiday.
type Oracle interface {
	IsHoliday(ctx context.Context, date string) bool
}

// civilContext is one evaluation's worth of "now": wall clock, weekday, and
// holiday flag, all in Hong Kong civil time.
type civilContext struct {
	Time            string
	Date            string
	DayOfWeek       time.Weekday
	IsPublicHoliday bool

	at time.Time
}

// Service wraps the pure resolver with the clock and the holiday oracle and
// keeps the current civil context fresh.
type Service struct {
	clock    clock.Clock
	holidays Oracle
	interval time.Duration
	log      *zap.Logger

	mu  sync.RWMutex
	cur civilContext
}

func NewService(c clock.Clock, oracle Oracle, refresh time.Duration, log *zap.Logger) *Service {
	if refresh <= 0 {
		refresh = time.Minute
	}
	return &Service{clock: c, holidays: oracle, interval: refresh, log: log}
}

// Current resolves the full tunnel list for the present moment.
func (s *Service) Current(ctx context.Context, v Vehicle, locale string) (Input, []Item) {
	in := s.inputNow(ctx, v)
	return in, List(in, locale)
}

// CurrentOne resolves a single tunnel for the present moment.
func (s *Service) CurrentOne(ctx context.Context, tunnelID string, v Vehicle, locale string) (Input, Item, error) {
	t, ok := tunnelsByID[tunnelID]
	if !ok {
		return Input{}, Item{}, ErrUnknownTunnel
	}
	in := s.inputNow(ctx, v)
	return in, Item{ID: t.ID, Name: t.Name(locale), Toll: t.resolve(in)}, nil
}

func (s *Service) inputNow(ctx context.Context, v Vehicle) Input {
	c := s.context(ctx)
	return Input{Time: c.Time, DayOfWeek: c.DayOfWeek, IsPublicHoliday: c.IsPublicHoliday, Vehicle: v}
}

// context returns the cached civil context, recomputing when a refresh
// interval has elapsed, so callers stay current even without the refresher
// goroutine.
func (s *Service) context(ctx context.Context) civilContext {
	s.mu.RLock()
	c := s.cur
	s.mu.RUnlock()
	if !c.at.IsZero() && s.clock.Now().Sub(c.at) < s.interval {
		return c
	}
	return s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) civilContext {
	now := s.clock.Now()
	hhmm, day := clock.Civil(now)
	date := clock.CivilDate(now)
	c := civilContext{
		Time:            hhmm,
		Date:            date,
		DayOfWeek:       day,
		IsPublicHoliday: s.holidays.IsHoliday(ctx, date),
		at:              now,
	}
	s.mu.Lock()
	s.cur = c
	s.mu.Unlock()
	return c
}

// RunRefresher recomputes the civil context once per interval until the
// context is cancelled. Start from main as `go svc.RunRefresher(ctx)`.
func (s *Service) RunRefresher(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c := s.refresh(ctx)
			s.log.Debug("toll context refreshed",
				zap.String("time", c.Time),
				zap.Bool("public_holiday", c.IsPublicHoliday))
		}
	}
}
