package pricing

import (
	"errors"
	"testing"
)

func TestCalculateHomePinned(t *testing.T) {
	cfg := DefaultConfig()

	// 50m², 1 bathroom, 1 kitchen, medium, one-off, client's own equipment.
	// midpoint = 50*22 + 150 + 200 = 1450
	q, err := CalculateHome(cfg, HomeInput{
		AreaM2:    50,
		Bathrooms: 1,
		Kitchens:  1,
		Dirtiness: DirtinessMedium,
		Frequency: FrequencyOneOff,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.Min != 1305 || q.Max != 1595 {
		t.Errorf("quote = {%.0f, %.0f}, want {1305, 1595}", q.Min, q.Max)
	}
}

func TestCalculateHomeEquipmentFee(t *testing.T) {
	cfg := DefaultConfig()

	in := HomeInput{
		AreaM2:    50,
		Bathrooms: 1,
		Kitchens:  1,
		Dirtiness: DirtinessMedium,
		Frequency: FrequencyOneOff,
	}
	base, err := CalculateHome(cfg, in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	in.EquipmentNeeded = true
	withFee, err := CalculateHome(cfg, in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if withFee.Min != base.Min+300 || withFee.Max != base.Max+300 {
		t.Errorf("equipment fee not flat on both bounds: base {%.0f, %.0f}, with fee {%.0f, %.0f}",
			base.Min, base.Max, withFee.Min, withFee.Max)
	}
}

func TestCalculateHomeBandContainsMidpoint(t *testing.T) {
	cfg := DefaultConfig()

	inputs := []HomeInput{
		{AreaM2: 30, Dirtiness: DirtinessLow, Frequency: FrequencyWeekly},
		{AreaM2: 75, Bathrooms: 2, Dirtiness: DirtinessHigh, Frequency: FrequencyMonthly},
		{AreaM2: 120, Bathrooms: 1, Kitchens: 2, Dirtiness: DirtinessMedium, Frequency: FrequencyBiweekly},
	}
	for _, in := range inputs {
		q, err := CalculateHome(cfg, in)
		if err != nil {
			t.Fatalf("calculate %+v: %v", in, err)
		}
		mid := in.AreaM2*cfg.Home.RatePerM2[in.Dirtiness]*cfg.Home.FrequencyMult[in.Frequency] +
			float64(in.Bathrooms)*cfg.Home.BathroomFee +
			float64(in.Kitchens)*cfg.Home.KitchenFee
		if q.Min < 0 || q.Max < 0 {
			t.Errorf("negative bound for %+v: {%.0f, %.0f}", in, q.Min, q.Max)
		}
		if q.Min > mid || mid > q.Max {
			t.Errorf("midpoint %.2f outside band {%.0f, %.0f} for %+v", mid, q.Min, q.Max, in)
		}
	}
}

func TestCalculateHomeDirtinessMonotone(t *testing.T) {
	cfg := DefaultConfig()

	prev := -1.0
	for _, d := range []Dirtiness{DirtinessLow, DirtinessMedium, DirtinessHigh} {
		q, err := CalculateHome(cfg, HomeInput{
			AreaM2:    40,
			Bathrooms: 1,
			Dirtiness: d,
			Frequency: FrequencyOneOff,
		})
		if err != nil {
			t.Fatalf("calculate dirtiness=%s: %v", d, err)
		}
		if q.Max < prev {
			t.Errorf("priceMax decreased at dirtiness=%s: %.0f < %.0f", d, q.Max, prev)
		}
		prev = q.Max
	}
}

func TestCalculateHomeRejectsBadInput(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name string
		in   HomeInput
	}{
		{"negative area", HomeInput{AreaM2: -1, Dirtiness: DirtinessLow, Frequency: FrequencyOneOff}},
		{"negative bathrooms", HomeInput{Bathrooms: -1, Dirtiness: DirtinessLow, Frequency: FrequencyOneOff}},
		{"negative kitchens", HomeInput{Kitchens: -2, Dirtiness: DirtinessLow, Frequency: FrequencyOneOff}},
		{"unknown dirtiness", HomeInput{AreaM2: 10, Dirtiness: "filthy", Frequency: FrequencyOneOff}},
		{"extreme not available for home", HomeInput{AreaM2: 10, Dirtiness: DirtinessExtreme, Frequency: FrequencyOneOff}},
		{"unknown frequency", HomeInput{AreaM2: 10, Dirtiness: DirtinessLow, Frequency: "yearly"}},
		{"daily not available for home", HomeInput{AreaM2: 10, Dirtiness: DirtinessLow, Frequency: FrequencyDaily}},
	}
	for _, tc := range cases {
		if _, err := CalculateHome(cfg, tc.in); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("%s: expected ErrInvalidAttribute, got %v", tc.name, err)
		}
	}
}

func TestCalculateHomeZeroAreaIsValid(t *testing.T) {
	cfg := DefaultConfig()

	q, err := CalculateHome(cfg, HomeInput{
		AreaM2:    0,
		Bathrooms: 1,
		Dirtiness: DirtinessLow,
		Frequency: FrequencyOneOff,
	})
	if err != nil {
		t.Fatalf("zero area must be valid: %v", err)
	}
	// Only the bathroom increment remains: 150 ± 10%.
	if q.Min != 135 || q.Max != 165 {
		t.Errorf("quote = {%.0f, %.0f}, want {135, 165}", q.Min, q.Max)
	}
}
