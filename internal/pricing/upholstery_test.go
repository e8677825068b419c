package pricing

import (
	"errors"
	"testing"
)

func TestCalculateUpholsterySingleItems(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name     string
		in       UpholsteryInput
		min, max float64
	}{
		{
			// 10m² * 45 = 450
			name: "carpet low",
			in:   UpholsteryInput{Carpet: &CarpetItem{AreaM2: 10, Dirtiness: DirtinessLow}},
			min:  405, max: 495,
		},
		{
			// 1100 * 1.3 = 1430
			name: "three-seat sofa medium",
			in:   UpholsteryInput{Sofa: &SofaItem{Type: SofaThreeSeat, Dirtiness: DirtinessMedium}},
			min:  1287, max: 1573,
		},
		{
			// 800 * 1.7 * 1.8 = 2448
			name: "double mattress high both sides",
			in:   UpholsteryInput{Mattress: &MattressItem{Size: MattressDouble, Sides: 2, Dirtiness: DirtinessHigh}},
			min:  2203, max: 2693,
		},
		{
			// 2 * 350 = 700
			name: "two armchairs low",
			in:   UpholsteryInput{Armchair: &CountedItem{Count: 2, Dirtiness: DirtinessLow}},
			min:  630, max: 770,
		},
		{
			// 4 * 120 * 1.3 = 624
			name: "four chairs medium",
			in:   UpholsteryInput{Chair: &CountedItem{Count: 4, Dirtiness: DirtinessMedium}},
			min:  562, max: 686,
		},
	}

	for _, tc := range cases {
		q, err := CalculateUpholstery(cfg, tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if q.Min != tc.min || q.Max != tc.max {
			t.Errorf("%s: quote = {%.0f, %.0f}, want {%.0f, %.0f}", tc.name, q.Min, q.Max, tc.min, tc.max)
		}
	}
}

func TestCalculateUpholsterySumsEnabledItems(t *testing.T) {
	cfg := DefaultConfig()

	// carpet 450 + chairs 624 = 1074
	q, err := CalculateUpholstery(cfg, UpholsteryInput{
		Carpet: &CarpetItem{AreaM2: 10, Dirtiness: DirtinessLow},
		Chair:  &CountedItem{Count: 4, Dirtiness: DirtinessMedium},
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.Min != 967 || q.Max != 1181 {
		t.Errorf("quote = {%.0f, %.0f}, want {967, 1181}", q.Min, q.Max)
	}
}

func TestCalculateUpholsteryNoItems(t *testing.T) {
	cfg := DefaultConfig()

	q, err := CalculateUpholstery(cfg, UpholsteryInput{})
	if err != nil {
		t.Fatalf("empty input must be valid: %v", err)
	}
	if q.Min != 0 || q.Max != 0 {
		t.Errorf("quote = {%.0f, %.0f}, want {0, 0}", q.Min, q.Max)
	}
}

func TestCalculateUpholsteryZeroCount(t *testing.T) {
	cfg := DefaultConfig()

	q, err := CalculateUpholstery(cfg, UpholsteryInput{
		Chair: &CountedItem{Count: 0, Dirtiness: DirtinessLow},
	})
	if err != nil {
		t.Fatalf("zero count must be valid: %v", err)
	}
	if q.Min != 0 || q.Max != 0 {
		t.Errorf("quote = {%.0f, %.0f}, want {0, 0}", q.Min, q.Max)
	}
}

func TestCalculateUpholsteryDirtinessMonotone(t *testing.T) {
	cfg := DefaultConfig()

	prev := -1.0
	for _, d := range []Dirtiness{DirtinessLow, DirtinessMedium, DirtinessHigh} {
		q, err := CalculateUpholstery(cfg, UpholsteryInput{
			Carpet:   &CarpetItem{AreaM2: 8, Dirtiness: d},
			Sofa:     &SofaItem{Type: SofaTwoSeat, Dirtiness: d},
			Armchair: &CountedItem{Count: 1, Dirtiness: d},
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

func TestCalculateUpholsteryRejectsBadInput(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name string
		in   UpholsteryInput
	}{
		{"negative carpet area", UpholsteryInput{Carpet: &CarpetItem{AreaM2: -3, Dirtiness: DirtinessLow}}},
		{"unknown sofa type", UpholsteryInput{Sofa: &SofaItem{Type: "chaise", Dirtiness: DirtinessLow}}},
		{"unknown mattress size", UpholsteryInput{Mattress: &MattressItem{Size: "queen", Sides: 1, Dirtiness: DirtinessLow}}},
		{"bad mattress sides", UpholsteryInput{Mattress: &MattressItem{Size: MattressSingle, Sides: 3, Dirtiness: DirtinessLow}}},
		{"negative chair count", UpholsteryInput{Chair: &CountedItem{Count: -1, Dirtiness: DirtinessLow}}},
		{"extreme not available", UpholsteryInput{Carpet: &CarpetItem{AreaM2: 5, Dirtiness: DirtinessExtreme}}},
	}
	for _, tc := range cases {
		if _, err := CalculateUpholstery(cfg, tc.in); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("%s: expected ErrInvalidAttribute, got %v", tc.name, err)
		}
	}
}
