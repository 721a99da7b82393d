// README: Static tunnel registry with the 2025 tariff tables.
package toll

// Tariff source: Transport Department, toll rates of road tunnels and Lantau
// Link. Hand-authored constants; not editable at runtime.

type strategy int

const (
	// strategyHarbour: time-banded car fare plus harbour vehicle overrides.
	strategyHarbour strategy = iota
	// strategySchedule: time-banded fare, no vehicle differentiation.
	strategySchedule
	// strategyPerVehicle: flat fare looked up by vehicle class.
	strategyPerVehicle
	// strategyFlat: one fare for everything.
	strategyFlat
)

// Tunnel is one registry entry. Fare fields are only meaningful for the
// entry's strategy.
type Tunnel struct {
	ID       string
	strategy strategy

	nameEN, nameZH string

	weekday schedule
	holiday schedule

	rates map[Vehicle]int
	flat  int
}

// Name returns the display name for a locale (zh-HK unless en is asked for).
func (t *Tunnel) Name(locale string) string {
	if locale == LocaleEN {
		return t.nameEN
	}
	return t.nameZH
}

// harbourHoliday is shared by all three harbour crossings on Sundays and
// public holidays: off-peak 20, general 25, with stepped transitions at
// 10:11-10:15 and 19:15-19:19.
var harbourHoliday = schedule{
	windows: []window{
		flatWin(0, hm(10, 11), 20),
		rampWin(hm(10, 11), hm(10, 15), 21, 2, 25),
		flatWin(hm(10, 15), hm(19, 15), 25),
		rampWin(hm(19, 15), hm(19, 19), 23, -2, 20),
		flatWin(hm(19, 19), hm(24, 0), 20),
	},
	def: 25,
}

// westernWeekday: off-peak 20, morning ramp to the 60 peak, step down to the
// 30 general rate, second 60 peak block in the afternoon.
var westernWeekday = schedule{
	windows: []window{
		flatWin(0, hm(7, 30), 20),
		rampWin(hm(7, 30), hm(8, 8), 22, 2, 60),
		flatWin(hm(8, 8), hm(10, 15), 60),
		rampWin(hm(10, 15), hm(10, 43), 58, -2, 30),
		flatWin(hm(10, 43), hm(16, 30), 30),
		flatWin(hm(16, 30), hm(19, 0), 60),
		flatWin(hm(19, 0), hm(24, 0), 20),
	},
	def: 30,
}

// pairedWeekday covers the Cross-Harbour and Eastern tunnels, whose peak is
// 40 with correspondingly shorter transitions.
var pairedWeekday = schedule{
	windows: []window{
		flatWin(0, hm(7, 30), 20),
		rampWin(hm(7, 30), hm(7, 48), 22, 2, 40),
		flatWin(hm(7, 48), hm(10, 15), 40),
		rampWin(hm(10, 15), hm(10, 23), 38, -2, 30),
		flatWin(hm(10, 23), hm(16, 30), 30),
		flatWin(hm(16, 30), hm(19, 0), 40),
		flatWin(hm(19, 0), hm(24, 0), 20),
	},
	def: 30,
}

var taiLamWeekday = schedule{
	windows: []window{
		flatWin(0, hm(7, 15), 18),
		flatWin(hm(7, 15), hm(9, 59), 45),
		flatWin(hm(9, 59), hm(17, 15), 30),
		flatWin(hm(17, 15), hm(19, 1), 45),
		flatWin(hm(19, 1), hm(24, 0), 18),
	},
	def: 18,
}

var taiLamHoliday = schedule{def: 18}

// tatesCairnRates is the per-class table of the Tate's Cairn Tunnel. Classes
// outside the table (e.g. the harbour "commercial" bucket) charge as
// private_car.
var tatesCairnRates = map[Vehicle]int{
	VehicleMotorcycle:    15,
	VehiclePrivateCar:    20,
	VehicleTaxi:          20,
	VehicleMinibus:       23,
	VehicleLightGoods:    24,
	VehicleMediumGoods:   28,
	VehicleHeavyGoods:    28,
	VehicleSingleDeckBus: 32,
	VehicleDoubleDeckBus: 35,
}

// tunnels is the registry in display order.
var tunnels = []*Tunnel{
	{
		ID:       "cross_harbour",
		strategy: strategyHarbour,
		nameEN:   "Cross-Harbour Tunnel",
		nameZH:   "海底隧道（紅隧）",
		weekday:  pairedWeekday,
		holiday:  harbourHoliday,
	},
	{
		ID:       "eastern",
		strategy: strategyHarbour,
		nameEN:   "Eastern Harbour Crossing",
		nameZH:   "東區海底隧道（東隧）",
		weekday:  pairedWeekday,
		holiday:  harbourHoliday,
	},
	{
		ID:       "western",
		strategy: strategyHarbour,
		nameEN:   "Western Harbour Crossing",
		nameZH:   "西區海底隧道（西隧）",
		weekday:  westernWeekday,
		holiday:  harbourHoliday,
	},
	{
		ID:       "tate_kong",
		strategy: strategySchedule,
		nameEN:   "Tai Lam Tunnel",
		nameZH:   "大欖隧道",
		weekday:  taiLamWeekday,
		holiday:  taiLamHoliday,
	},
	{
		ID:       "tate_mao_shan",
		strategy: strategyPerVehicle,
		nameEN:   "Tate's Cairn Tunnel",
		nameZH:   "大老山隧道",
		rates:    tatesCairnRates,
	},
	{
		ID:       "aberdeen",
		strategy: strategyFlat,
		nameEN:   "Aberdeen Tunnel",
		nameZH:   "香港仔隧道",
		flat:     8,
	},
	{
		ID:       "shing_mun",
		strategy: strategyFlat,
		nameEN:   "Shing Mun Tunnels",
		nameZH:   "城門隧道",
		flat:     8,
	},
	{
		ID:       "lion_rock",
		strategy: strategyFlat,
		nameEN:   "Lion Rock Tunnel",
		nameZH:   "獅子山隧道",
		flat:     8,
	},
	{
		ID:       "sha_tin_heights",
		strategy: strategyFlat,
		nameEN:   "Sha Tin Heights, Eagle's Nest and Tai Wai Tunnels",
		nameZH:   "沙田嶺／尖山／大圍隧道",
		flat:     8,
	},
}

var tunnelsByID = func() map[string]*Tunnel {
	m := make(map[string]*Tunnel, len(tunnels))
	for _, t := range tunnels {
		m[t.ID] = t
	}
	return m
}()
