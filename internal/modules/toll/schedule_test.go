// README: Resolver tariff tests; table-driven over times, days, and vehicles.
package toll

import (
	"testing"
	"time"
)

func weekday(t string, v Vehicle) Input {
	return Input{Time: t, DayOfWeek: time.Wednesday, Vehicle: v}
}

func sunday(t string, v Vehicle) Input {
	return Input{Time: t, DayOfWeek: time.Sunday, Vehicle: v}
}

func holiday(t string, v Vehicle) Input {
	return Input{Time: t, DayOfWeek: time.Tuesday, IsPublicHoliday: true, Vehicle: v}
}

func TestResolve_HarbourCrossings(t *testing.T) {
	tests := []struct {
		name   string
		tunnel string
		in     Input
		want   int
	}{
		// Weekday bands, private car.
		{"western off-peak before ramp", "western", weekday("07:29", VehiclePrivateCar), 20},
		{"western ramp start", "western", weekday("07:30", VehiclePrivateCar), 22},
		{"western ramp step 1", "western", weekday("07:32", VehiclePrivateCar), 24},
		{"western ramp near top", "western", weekday("08:06", VehiclePrivateCar), 58},
		{"western morning peak", "western", weekday("08:30", VehiclePrivateCar), 60},
		{"western descent start", "western", weekday("10:15", VehiclePrivateCar), 58},
		{"western descent mid", "western", weekday("10:31", VehiclePrivateCar), 42},
		{"western midday", "western", weekday("12:00", VehiclePrivateCar), 30},
		{"western afternoon peak", "western", weekday("17:00", VehiclePrivateCar), 60},
		{"western evening off-peak", "western", weekday("19:00", VehiclePrivateCar), 20},
		{"western midnight", "western", weekday("00:00", VehiclePrivateCar), 20},

		{"cross_harbour ramp step", "cross_harbour", weekday("07:40", VehiclePrivateCar), 32},
		{"cross_harbour morning peak", "cross_harbour", weekday("08:30", VehiclePrivateCar), 40},
		{"cross_harbour descent", "cross_harbour", weekday("10:17", VehiclePrivateCar), 36},
		{"cross_harbour midday", "cross_harbour", weekday("10:23", VehiclePrivateCar), 30},
		{"eastern morning peak", "eastern", weekday("08:30", VehiclePrivateCar), 40},
		{"eastern afternoon peak", "eastern", weekday("16:30", VehiclePrivateCar), 40},
		{"eastern off-peak", "eastern", weekday("05:00", VehiclePrivateCar), 20},

		// Sunday and holiday bands share one table.
		{"sunday off-peak", "western", sunday("08:00", VehiclePrivateCar), 20},
		{"sunday general", "western", sunday("12:00", VehiclePrivateCar), 25},
		{"holiday morning ramp step 0", "cross_harbour", holiday("10:12", VehiclePrivateCar), 21},
		{"holiday morning ramp step 1", "cross_harbour", holiday("10:13", VehiclePrivateCar), 23},
		{"holiday general start", "cross_harbour", holiday("10:15", VehiclePrivateCar), 25},
		{"holiday evening ramp start", "eastern", holiday("19:15", VehiclePrivateCar), 23},
		{"holiday evening ramp step", "eastern", holiday("19:17", VehiclePrivateCar), 21},
		{"holiday evening off-peak", "eastern", holiday("19:19", VehiclePrivateCar), 20},

		// Vehicle overrides apply on top of the car fare.
		{"taxi flat on sunday", "western", sunday("03:00", VehicleTaxi), 25},
		{"taxi flat at weekday peak", "western", weekday("08:30", VehicleTaxi), 25},
		{"commercial flat", "cross_harbour", weekday("08:30", VehicleCommercial), 50},
		{"commercial flat off-peak", "cross_harbour", weekday("02:00", VehicleCommercial), 50},
		{"motorcycle 40% of peak", "western", weekday("08:30", VehicleMotorcycle), 24},
		{"motorcycle 40% off-peak", "western", weekday("02:00", VehicleMotorcycle), 8},
		{"motorcycle 40% of holiday general", "eastern", holiday("12:00", VehicleMotorcycle), 10},

		// Classes outside the harbour vocabulary charge as private car.
		{"minibus falls back to car fare", "western", weekday("08:30", VehicleMinibus), 60},
		{"heavy goods falls back to car fare", "eastern", sunday("12:00", VehicleHeavyGoods), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.tunnel, tt.in)
			if err != nil {
				t.Fatalf("Resolve(%s) error: %v", tt.tunnel, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s, %s %v) = %d, want %d", tt.tunnel, tt.in.Time, tt.in.Vehicle, got, tt.want)
			}
		})
	}
}

func TestResolve_TaiLam(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{"early off-peak", weekday("07:14", VehiclePrivateCar), 18},
		{"morning peak start", weekday("07:15", VehiclePrivateCar), 45},
		{"morning peak", weekday("08:00", VehiclePrivateCar), 45},
		{"midday starts 09:59", weekday("09:59", VehiclePrivateCar), 30},
		{"midday", weekday("12:00", VehiclePrivateCar), 30},
		{"evening peak start", weekday("17:15", VehiclePrivateCar), 45},
		{"evening peak end boundary", weekday("19:00", VehiclePrivateCar), 45},
		{"evening off-peak", weekday("19:01", VehiclePrivateCar), 18},
		{"sunday flat", sunday("08:00", VehiclePrivateCar), 18},
		{"holiday flat", holiday("17:30", VehiclePrivateCar), 18},
		// No per-vehicle differentiation on this tunnel.
		{"taxi charged as car", weekday("08:00", VehicleTaxi), 45},
		{"double deck bus charged as car", weekday("12:00", VehicleDoubleDeckBus), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve("tate_kong", tt.in)
			if err != nil {
				t.Fatalf("Resolve(tate_kong) error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(tate_kong, %s %v) = %d, want %d", tt.in.Time, tt.in.Vehicle, got, tt.want)
			}
		})
	}
}

func TestResolve_TatesCairn(t *testing.T) {
	tests := []struct {
		vehicle Vehicle
		want    int
	}{
		{VehicleMotorcycle, 15},
		{VehiclePrivateCar, 20},
		{VehicleTaxi, 20},
		{VehicleMinibus, 23},
		{VehicleLightGoods, 24},
		{VehicleMediumGoods, 28},
		{VehicleHeavyGoods, 28},
		{VehicleSingleDeckBus, 32},
		{VehicleDoubleDeckBus, 35},
		// The harbour "commercial" bucket is not in this tunnel's table.
		{VehicleCommercial, 20},
	}
	for _, tt := range tests {
		t.Run(string(tt.vehicle), func(t *testing.T) {
			// Time and day must not matter.
			for _, in := range []Input{weekday("08:30", tt.vehicle), sunday("23:00", tt.vehicle), holiday("00:00", tt.vehicle)} {
				got, err := Resolve("tate_mao_shan", in)
				if err != nil {
					t.Fatalf("Resolve(tate_mao_shan) error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Resolve(tate_mao_shan, %v) = %d, want %d", tt.vehicle, got, tt.want)
				}
			}
		})
	}
}

func TestResolve_FlatTunnels(t *testing.T) {
	for _, id := range []string{"aberdeen", "shing_mun", "lion_rock", "sha_tin_heights"} {
		for _, in := range []Input{
			weekday("08:30", VehiclePrivateCar),
			sunday("12:00", VehicleTaxi),
			holiday("00:00", VehicleDoubleDeckBus),
			weekday("23:59", VehicleCommercial),
		} {
			got, err := Resolve(id, in)
			if err != nil {
				t.Fatalf("Resolve(%s) error: %v", id, err)
			}
			if got != 8 {
				t.Errorf("Resolve(%s, %+v) = %d, want 8", id, in, got)
			}
		}
	}
}

func TestResolve_DeterministicAndNonNegative(t *testing.T) {
	vehicles := []Vehicle{
		VehiclePrivateCar, VehicleTaxi, VehicleMotorcycle, VehicleCommercial,
		VehicleMinibus, VehicleHeavyGoods, VehicleDoubleDeckBus, Vehicle("bicycle"),
	}
	days := []time.Weekday{time.Sunday, time.Monday, time.Saturday}
	for _, tun := range tunnels {
		for _, day := range days {
			for _, v := range vehicles {
				for m := 0; m < 24*60; m += 7 {
					in := Input{
						Time:      clockString(m),
						DayOfWeek: day,
						Vehicle:   v,
					}
					a, err := Resolve(tun.ID, in)
					if err != nil {
						t.Fatalf("Resolve(%s) error: %v", tun.ID, err)
					}
					if a < 0 {
						t.Fatalf("Resolve(%s, %+v) = %d, negative fare", tun.ID, in, a)
					}
					b, _ := Resolve(tun.ID, in)
					if a != b {
						t.Fatalf("Resolve(%s, %+v) not deterministic: %d then %d", tun.ID, in, a, b)
					}
				}
			}
		}
	}
}

func TestResolve_UnknownTunnel(t *testing.T) {
	if _, err := Resolve("channel_tunnel", weekday("08:00", VehiclePrivateCar)); err != ErrUnknownTunnel {
		t.Errorf("Resolve(channel_tunnel) error = %v, want ErrUnknownTunnel", err)
	}
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:08", 488},
		{"23:59", 1439},
		{"24:00", 0},
		{"8:08", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := minuteOfDay(tt.in); got != tt.want {
			t.Errorf("minuteOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func clockString(m int) string {
	const digits = "0123456789"
	h := m / 60
	mm := m % 60
	return string([]byte{digits[h/10], digits[h%10], ':', digits[mm/10], digits[mm%10]})
}
