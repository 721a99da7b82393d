// README: Computed fixed-date holiday calendar, optional last-resort source.
package holiday

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
)

// NewComputedCalendar builds a calendar of Hong Kong general holidays that
// fall on fixed Gregorian dates. Lunar-calendar holidays (Lunar New Year,
// Ching Ming, Tuen Ng, Mid-Autumn, Chung Yeung) cannot be derived here and
// need the fetched list, which is why this source only fills in when both
// fetches fail and has to be opted into.
func NewComputedCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		&cal.Holiday{Name: "New Year's Day", Type: cal.ObservancePublic, Month: time.January, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Labour Day", Type: cal.ObservancePublic, Month: time.May, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "HKSAR Establishment Day", Type: cal.ObservancePublic, Month: time.July, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "National Day", Type: cal.ObservancePublic, Month: time.October, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Christmas Day", Type: cal.ObservancePublic, Month: time.December, Day: 25, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "First weekday after Christmas Day", Type: cal.ObservancePublic, Month: time.December, Day: 26, Func: cal.CalcDayOfMonth},
	)
	return c
}

// computedDates lists the calendar's holidays for the year around the given
// one, formatted YYYY-MM-DD.
func computedDates(c *cal.BusinessCalendar, year int) []string {
	var dates []string
	for y := year - 1; y <= year+1; y++ {
		for _, h := range c.Holidays {
			actual, _ := h.Calc(y)
			if !actual.IsZero() {
				dates = append(dates, actual.Format("2006-01-02"))
			}
		}
	}
	sort.Strings(dates)
	return dates
}
