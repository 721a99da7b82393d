// README: Vehicle classes, toll input, and display item types.
package toll

import "time"

// Vehicle is a closed enumeration of vehicle classes. The first four are the
// vocabulary of the harbour crossings; the rest only matter for the
// rate-by-vehicle tunnel. A class outside a tunnel's vocabulary is charged as
// a private car.
type Vehicle string

const (
	VehiclePrivateCar    Vehicle = "private_car"
	VehicleTaxi          Vehicle = "taxi"
	VehicleMotorcycle    Vehicle = "motorcycle"
	VehicleCommercial    Vehicle = "commercial"
	VehicleMinibus       Vehicle = "minibus"
	VehicleLightGoods    Vehicle = "light_goods"
	VehicleMediumGoods   Vehicle = "medium_goods"
	VehicleHeavyGoods    Vehicle = "heavy_goods"
	VehicleSingleDeckBus Vehicle = "single_deck_bus"
	VehicleDoubleDeckBus Vehicle = "double_deck_bus"
)

// vehicleLabels carries display labels per locale, in selector order.
var vehicleLabels = []struct {
	value Vehicle
	en    string
	zh    string
}{
	{VehiclePrivateCar, "Private car", "私家車"},
	{VehicleTaxi, "Taxi", "的士"},
	{VehicleMotorcycle, "Motorcycle", "電單車"},
	{VehicleCommercial, "Goods vehicle / minibus / bus", "貨車／小巴／巴士"},
	{VehicleMinibus, "Minibus", "小巴"},
	{VehicleLightGoods, "Light goods vehicle", "輕型貨車"},
	{VehicleMediumGoods, "Medium goods vehicle", "中型貨車"},
	{VehicleHeavyGoods, "Heavy goods vehicle", "重型貨車"},
	{VehicleSingleDeckBus, "Single-deck bus", "單層巴士"},
	{VehicleDoubleDeckBus, "Double-deck bus", "雙層巴士"},
}

// ParseVehicle validates a raw string against the vehicle enumeration.
func ParseVehicle(s string) (Vehicle, bool) {
	for _, l := range vehicleLabels {
		if string(l.value) == s {
			return l.value, true
		}
	}
	return "", false
}

// VehicleOption is a selectable vehicle class with its localized label.
type VehicleOption struct {
	Value Vehicle `json:"value"`
	Label string  `json:"label"`
}

// Vehicles returns the selectable vehicle options for a locale.
func Vehicles(locale string) []VehicleOption {
	opts := make([]VehicleOption, 0, len(vehicleLabels))
	for _, l := range vehicleLabels {
		label := l.zh
		if locale == LocaleEN {
			label = l.en
		}
		opts = append(opts, VehicleOption{Value: l.value, Label: label})
	}
	return opts
}

// Supported locales for display names and labels.
const (
	LocaleEN = "en"
	LocaleZH = "zh-HK"
)

// ParseLocale validates a raw string against the supported locales.
func ParseLocale(s string) (string, bool) {
	switch s {
	case LocaleEN, LocaleZH:
		return s, true
	}
	return "", false
}

// Input is everything the resolver needs for one evaluation. It is transient
// and rebuilt for every evaluation.
type Input struct {
	Time            string       `json:"time"` // "HH:MM"
	DayOfWeek       time.Weekday `json:"day_of_week"`
	IsPublicHoliday bool         `json:"is_public_holiday"`
	Vehicle         Vehicle      `json:"vehicle"`
}

// Item is one tunnel's resolved fare, ready for display. Built fresh on every
// evaluation and never mutated afterwards.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Toll int    `json:"toll"`
	Note string `json:"note,omitempty"`
}
