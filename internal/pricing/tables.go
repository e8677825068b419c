package pricing

// Config is the injected factor-table set. Rates are crowns; multipliers
// are dimensionless. A Config is immutable once handed to the calculators,
// which makes them deterministic for a given version.
type Config struct {
	Version string

	Home       HomeTable
	Office     OfficeTable
	Window     WindowTable
	Upholstery UpholsteryTable
}

type HomeTable struct {
	// Rate per m² keyed by dirtiness tier (low/medium/high only).
	RatePerM2 map[Dirtiness]float64
	// Multiplier keyed by frequency; recurring tiers discount one-off.
	FrequencyMult map[Frequency]float64

	BathroomFee float64
	KitchenFee  float64
	// Flat fee when the client does not provide equipment.
	EquipmentFee float64

	BandFraction float64
}

type OfficeTable struct {
	RatePerM2 map[SpaceType]float64
	// 4-tier scale, includes extreme.
	DirtinessMult map[Dirtiness]float64
	// Includes daily, omits biweekly.
	FrequencyMult map[Frequency]float64

	RestroomFee float64

	BandFraction float64
}

type WindowTable struct {
	RatePerM2     float64
	DirtinessMult map[Dirtiness]float64
	ObjectMult    map[ObjectType]float64

	BandFraction float64
}

type UpholsteryTable struct {
	DirtinessMult map[Dirtiness]float64

	CarpetRatePerM2 float64

	SofaPrice     map[SofaType]float64
	MattressPrice map[MattressSize]float64
	// Multiplier applied when both mattress sides are treated.
	MattressTwoSidedMult float64

	ArmchairUnitPrice float64
	ChairUnitPrice    float64

	BandFraction float64
}

// DefaultConfig is the current production factor set.
func DefaultConfig() Config {
	return Config{
		Version: "2025-03",

		Home: HomeTable{
			RatePerM2: map[Dirtiness]float64{
				DirtinessLow:    18,
				DirtinessMedium: 22,
				DirtinessHigh:   28,
			},
			FrequencyMult: map[Frequency]float64{
				FrequencyOneOff:   1.0,
				FrequencyWeekly:   0.8,
				FrequencyBiweekly: 0.85,
				FrequencyMonthly:  0.9,
			},
			BathroomFee:  150,
			KitchenFee:   200,
			EquipmentFee: 300,
			BandFraction: 0.10,
		},

		Office: OfficeTable{
			RatePerM2: map[SpaceType]float64{
				SpaceOffice:     20,
				SpaceShop:       24,
				SpaceWarehouse:  16,
				SpaceProduction: 30,
			},
			DirtinessMult: map[Dirtiness]float64{
				DirtinessLow:     1.0,
				DirtinessMedium:  1.2,
				DirtinessHigh:    1.5,
				DirtinessExtreme: 1.9,
			},
			FrequencyMult: map[Frequency]float64{
				FrequencyOneOff:  1.0,
				FrequencyDaily:   0.7,
				FrequencyWeekly:  0.8,
				FrequencyMonthly: 0.9,
			},
			RestroomFee:  180,
			BandFraction: 0.10,
		},

		Window: WindowTable{
			RatePerM2: 35,
			DirtinessMult: map[Dirtiness]float64{
				DirtinessLow:    1.0,
				DirtinessMedium: 1.25,
				DirtinessHigh:   1.6,
			},
			ObjectMult: map[ObjectType]float64{
				ObjectResidential: 1.0,
				ObjectCommercial:  1.3,
			},
			BandFraction: 0.10,
		},

		Upholstery: UpholsteryTable{
			DirtinessMult: map[Dirtiness]float64{
				DirtinessLow:    1.0,
				DirtinessMedium: 1.3,
				DirtinessHigh:   1.7,
			},
			CarpetRatePerM2: 45,
			SofaPrice: map[SofaType]float64{
				SofaTwoSeat:   800,
				SofaThreeSeat: 1100,
				SofaCorner:    1500,
			},
			MattressPrice: map[MattressSize]float64{
				MattressSingle: 500,
				MattressDouble: 800,
				MattressKing:   1000,
			},
			MattressTwoSidedMult: 1.8,
			ArmchairUnitPrice:    350,
			ChairUnitPrice:       120,
			BandFraction:         0.10,
		},
	}
}
