package pricing

type SofaType string

const (
	SofaTwoSeat   SofaType = "two_seat"
	SofaThreeSeat SofaType = "three_seat"
	SofaCorner    SofaType = "corner"
)

type MattressSize string

const (
	MattressSingle MattressSize = "single"
	MattressDouble MattressSize = "double"
	MattressKing   MattressSize = "king"
)

// UpholsteryInput is a composite of independently toggled sub-items.
// Each enabled item contributes its own cost; the quote is the sum.
type UpholsteryInput struct {
	Carpet   *CarpetItem   `json:"carpet,omitempty"`
	Sofa     *SofaItem     `json:"sofa,omitempty"`
	Mattress *MattressItem `json:"mattress,omitempty"`
	Armchair *CountedItem  `json:"armchair,omitempty"`
	Chair    *CountedItem  `json:"chair,omitempty"`
}

type CarpetItem struct {
	AreaM2    float64   `json:"area_m2"`
	Dirtiness Dirtiness `json:"dirtiness"`
}

type SofaItem struct {
	Type      SofaType  `json:"type"`
	Dirtiness Dirtiness `json:"dirtiness"`
}

type MattressItem struct {
	Size      MattressSize `json:"size"`
	Sides     int          `json:"sides"`
	Dirtiness Dirtiness    `json:"dirtiness"`
}

type CountedItem struct {
	Count     int       `json:"count"`
	Dirtiness Dirtiness `json:"dirtiness"`
}

func CalculateUpholstery(cfg Config, in UpholsteryInput) (Quote, error) {
	t := cfg.Upholstery
	total := 0.0

	dirtMult := func(field string, d Dirtiness) (float64, error) {
		m, ok := t.DirtinessMult[d]
		if !ok {
			return 0, invalidAttr(field, d)
		}
		return m, nil
	}

	if in.Carpet != nil {
		if in.Carpet.AreaM2 < 0 {
			return Quote{}, invalidAttr("carpet.area_m2", in.Carpet.AreaM2)
		}
		m, err := dirtMult("carpet.dirtiness", in.Carpet.Dirtiness)
		if err != nil {
			return Quote{}, err
		}
		total += in.Carpet.AreaM2 * t.CarpetRatePerM2 * m
	}

	if in.Sofa != nil {
		price, ok := t.SofaPrice[in.Sofa.Type]
		if !ok {
			return Quote{}, invalidAttr("sofa.type", in.Sofa.Type)
		}
		m, err := dirtMult("sofa.dirtiness", in.Sofa.Dirtiness)
		if err != nil {
			return Quote{}, err
		}
		total += price * m
	}

	if in.Mattress != nil {
		price, ok := t.MattressPrice[in.Mattress.Size]
		if !ok {
			return Quote{}, invalidAttr("mattress.size", in.Mattress.Size)
		}
		if in.Mattress.Sides != 1 && in.Mattress.Sides != 2 {
			return Quote{}, invalidAttr("mattress.sides", in.Mattress.Sides)
		}
		m, err := dirtMult("mattress.dirtiness", in.Mattress.Dirtiness)
		if err != nil {
			return Quote{}, err
		}
		cost := price * m
		if in.Mattress.Sides == 2 {
			cost *= t.MattressTwoSidedMult
		}
		total += cost
	}

	if in.Armchair != nil {
		if in.Armchair.Count < 0 {
			return Quote{}, invalidAttr("armchair.count", in.Armchair.Count)
		}
		m, err := dirtMult("armchair.dirtiness", in.Armchair.Dirtiness)
		if err != nil {
			return Quote{}, err
		}
		total += float64(in.Armchair.Count) * t.ArmchairUnitPrice * m
	}

	if in.Chair != nil {
		if in.Chair.Count < 0 {
			return Quote{}, invalidAttr("chair.count", in.Chair.Count)
		}
		m, err := dirtMult("chair.dirtiness", in.Chair.Dirtiness)
		if err != nil {
			return Quote{}, err
		}
		total += float64(in.Chair.Count) * t.ChairUnitPrice * m
	}

	return band(total, t.BandFraction), nil
}
