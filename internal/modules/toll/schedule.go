// README: Time-window rate schedule and its interpreter.
package toll

// The tariff is expressed as ordered time-window tables evaluated by one
// interpreter, so the three harbour crossings and the fixed-schedule tunnel
// share logic and differ only in constants. Minutes are minute-of-day
// (0-1439); every window's lower bound is inclusive and upper bound exclusive.

type pricingMode int

const (
	modeFlat pricingMode = iota
	modeRamp
)

// rampStepMinutes is the step length of every transition window in the
// tariff: the fare moves by the step amount once per 2 elapsed minutes.
const rampStepMinutes = 2

type window struct {
	start, end int // minute-of-day, [start, end)
	mode       pricingMode

	price int // modeFlat

	// modeRamp: fare = base + floor((m-start)/2)*step, clamped at limit so a
	// ramp never crosses the adjacent flat rate.
	base  int
	step  int
	limit int
}

func flatWin(start, end, price int) window {
	return window{start: start, end: end, mode: modeFlat, price: price}
}

func rampWin(start, end, base, step, limit int) window {
	return window{start: start, end: end, mode: modeRamp, base: base, step: step, limit: limit}
}

// schedule is an ordered window table covering a full day plus a default fare
// for any uncovered minute.
type schedule struct {
	windows []window
	def     int
}

func (s schedule) priceAt(m int) int {
	for _, w := range s.windows {
		if m < w.start || m >= w.end {
			continue
		}
		if w.mode == modeFlat {
			return w.price
		}
		fare := w.base + (m-w.start)/rampStepMinutes*w.step
		if w.step > 0 && fare > w.limit {
			fare = w.limit
		}
		if w.step < 0 && fare < w.limit {
			fare = w.limit
		}
		return fare
	}
	return s.def
}

// hm converts a wall-clock hour and minute to minute-of-day.
func hm(h, m int) int {
	return h*60 + m
}

// minuteOfDay parses "HH:MM" into minute-of-day. Inputs come from the clock
// or from validated requests, so malformed strings resolve to 0 rather than
// erroring.
func minuteOfDay(t string) int {
	if len(t) != 5 || t[2] != ':' {
		return 0
	}
	h := digits2(t[0], t[1])
	m := digits2(t[3], t[4])
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

func digits2(a, b byte) int {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return -1
	}
	return int(a-'0')*10 + int(b-'0')
}
