// README: Holiday oracle; primary fetch, fallback document, memoized cache.
package holiday

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/rickar/cal/v2"
	"go.uber.org/zap"

	"tollwatch/internal/clock"
)

//go:embed holidays.json
var bundledFallback []byte

// maxBodyBytes bounds how much of a holiday feed we are willing to read.
const maxBodyBytes = 1 << 20

// Config selects the oracle's sources.
type Config struct {
	// URL of the primary jCal feed.
	URL string
	// FallbackPath points at a simple-format document on disk; empty means
	// the bundled copy.
	FallbackPath string
	// Computed enables the fixed-date calendar as a last resort when both
	// fetches fail. Off by default: the documented degradation on total
	// failure is an empty list.
	Computed bool
}

// Service answers whether a date is a Hong Kong public holiday. It owns the
// process-lifetime date cache explicitly: the first Dates call resolves the
// sources and commits the result, Invalidate clears it. Fetch failures never
// propagate; the oracle degrades to whatever source answered, down to an
// empty list.
type Service struct {
	client   *http.Client
	cfg      Config
	calendar *cal.BusinessCalendar
	clock    clock.Clock
	log      *zap.Logger

	mu     sync.Mutex
	dates  []string
	loaded bool
}

func NewService(client *http.Client, cfg Config, c clock.Clock, log *zap.Logger) *Service {
	s := &Service{client: client, cfg: cfg, clock: c, log: log}
	if cfg.Computed {
		s.calendar = NewComputedCalendar()
	}
	return s
}

// Dates returns the holiday date list, resolving the sources on first use.
// Concurrent callers before first resolution serialize on the mutex and
// observe the same committed value.
func (s *Service) Dates(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.dates
	}

	dates := s.fetchPrimary(ctx)
	if len(dates) == 0 {
		dates = s.fetchFallback()
	}
	if len(dates) == 0 && s.calendar != nil {
		dates = computedDates(s.calendar, s.clock.Now().Year())
		s.log.Warn("holiday sources unavailable, using computed fixed-date calendar",
			zap.Int("dates", len(dates)))
	}
	if dates == nil {
		dates = []string{}
	}

	s.dates = dates
	s.loaded = true
	return s.dates
}

// Invalidate clears the memo so the next Dates call re-resolves the sources.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.dates = nil
	s.loaded = false
	s.mu.Unlock()
}

// IsHoliday reports whether date is a public holiday according to the
// resolved list. Sundays are not the oracle's concern.
func (s *Service) IsHoliday(ctx context.Context, date string) bool {
	return IsHoliday(date, s.Dates(ctx))
}

func (s *Service) fetchPrimary(ctx context.Context) []string {
	if s.cfg.URL == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		s.log.Warn("holiday feed request build failed", zap.Error(err))
		return nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("holiday feed unreachable, trying fallback", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.log.Warn("holiday feed returned non-OK status, trying fallback",
			zap.Int("status", resp.StatusCode))
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		s.log.Warn("holiday feed read failed, trying fallback", zap.Error(err))
		return nil
	}
	dates := ParseJCal(body)
	if len(dates) == 0 {
		s.log.Warn("holiday feed yielded no dates, trying fallback")
	}
	return dates
}

func (s *Service) fetchFallback() []string {
	data := bundledFallback
	if s.cfg.FallbackPath != "" {
		var err error
		data, err = os.ReadFile(s.cfg.FallbackPath)
		if err != nil {
			s.log.Warn("holiday fallback file unreadable",
				zap.String("path", s.cfg.FallbackPath), zap.Error(err))
			return nil
		}
	}
	return ParseSimple(data)
}

// String describes the cache state, handy in logs.
func (s *Service) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return "holiday cache: unresolved"
	}
	return fmt.Sprintf("holiday cache: %d dates", len(s.dates))
}
