package pricing

// HomeInput describes a home-cleaning quote request.
type HomeInput struct {
	AreaM2    float64   `json:"area_m2"`
	Bathrooms int       `json:"bathrooms"`
	Kitchens  int       `json:"kitchens"`
	Dirtiness Dirtiness `json:"dirtiness"`
	Frequency Frequency `json:"frequency"`

	// True when the crew brings its own equipment and supplies.
	EquipmentNeeded bool `json:"equipment_needed"`
}

// CalculateHome prices a home cleaning. Base = area × per-m² rate selected
// by dirtiness, discounted by recurring frequency, plus fixed per-room
// increments. The equipment fee is flat and lands on both bounds.
func CalculateHome(cfg Config, in HomeInput) (Quote, error) {
	if in.AreaM2 < 0 {
		return Quote{}, invalidAttr("area_m2", in.AreaM2)
	}
	if in.Bathrooms < 0 {
		return Quote{}, invalidAttr("bathrooms", in.Bathrooms)
	}
	if in.Kitchens < 0 {
		return Quote{}, invalidAttr("kitchens", in.Kitchens)
	}

	rate, ok := cfg.Home.RatePerM2[in.Dirtiness]
	if !ok {
		return Quote{}, invalidAttr("dirtiness", in.Dirtiness)
	}
	mult, ok := cfg.Home.FrequencyMult[in.Frequency]
	if !ok {
		return Quote{}, invalidAttr("frequency", in.Frequency)
	}

	mid := in.AreaM2*rate*mult +
		float64(in.Bathrooms)*cfg.Home.BathroomFee +
		float64(in.Kitchens)*cfg.Home.KitchenFee

	q := band(mid, cfg.Home.BandFraction)
	if in.EquipmentNeeded {
		q.Min += cfg.Home.EquipmentFee
		q.Max += cfg.Home.EquipmentFee
	}
	return q, nil
}
