package pricing

// OfficeInput describes an office/commercial quote request. Same shape as
// home cleaning but its own tables: 4-tier dirtiness (adds extreme) and a
// frequency scale with daily but without biweekly.
type OfficeInput struct {
	AreaM2    float64   `json:"area_m2"`
	Restrooms int       `json:"restrooms"`
	SpaceType SpaceType `json:"space_type"`
	Dirtiness Dirtiness `json:"dirtiness"`
	Frequency Frequency `json:"frequency"`
}

func CalculateOffice(cfg Config, in OfficeInput) (Quote, error) {
	if in.AreaM2 < 0 {
		return Quote{}, invalidAttr("area_m2", in.AreaM2)
	}
	if in.Restrooms < 0 {
		return Quote{}, invalidAttr("restrooms", in.Restrooms)
	}

	rate, ok := cfg.Office.RatePerM2[in.SpaceType]
	if !ok {
		return Quote{}, invalidAttr("space_type", in.SpaceType)
	}
	dirt, ok := cfg.Office.DirtinessMult[in.Dirtiness]
	if !ok {
		return Quote{}, invalidAttr("dirtiness", in.Dirtiness)
	}
	freq, ok := cfg.Office.FrequencyMult[in.Frequency]
	if !ok {
		return Quote{}, invalidAttr("frequency", in.Frequency)
	}

	mid := in.AreaM2*rate*dirt*freq + float64(in.Restrooms)*cfg.Office.RestroomFee

	return band(mid, cfg.Office.BandFraction), nil
}
