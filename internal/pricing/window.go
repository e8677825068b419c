package pricing

// WindowInput describes a window-cleaning quote request.
type WindowInput struct {
	AreaM2     float64    `json:"area_m2"`
	Dirtiness  Dirtiness  `json:"dirtiness"`
	ObjectType ObjectType `json:"object_type"`
}

// WindowResult carries the quote plus the surrogate window count.
type WindowResult struct {
	Quote Quote `json:"quote"`

	// WindowCount mirrors the area value. Inherited behavior, pending
	// product clarification; do not "fix" without a decision.
	WindowCount float64 `json:"window_count"`
}

func CalculateWindow(cfg Config, in WindowInput) (WindowResult, error) {
	if in.AreaM2 < 0 {
		return WindowResult{}, invalidAttr("area_m2", in.AreaM2)
	}

	dirt, ok := cfg.Window.DirtinessMult[in.Dirtiness]
	if !ok {
		return WindowResult{}, invalidAttr("dirtiness", in.Dirtiness)
	}
	obj, ok := cfg.Window.ObjectMult[in.ObjectType]
	if !ok {
		return WindowResult{}, invalidAttr("object_type", in.ObjectType)
	}

	mid := in.AreaM2 * cfg.Window.RatePerM2 * dirt * obj

	return WindowResult{
		Quote:       band(mid, cfg.Window.BandFraction),
		WindowCount: in.AreaM2,
	}, nil
}
