package raster

// Option configures a Rasterizer during creation.
// Every option corresponds to a runtime setter; options exist so the
// common one-shot setup reads as a single expression.
//
// Example:
//
//	// Default: non-zero fill, no clipping
//	ras := raster.NewRasterizer()
//
//	// Clipped, even-odd fill
//	ras := raster.NewRasterizer(
//	    raster.WithClipBox(0, 0, 640, 480),
//	    raster.WithFillingRule(raster.FillEvenOdd),
//	)
type Option func(*Rasterizer)

// WithClipBox clips all geometry to (x1,y1)-(x2,y2) in user units.
// Equivalent to calling SetClipBox after creation.
func WithClipBox(x1, y1, x2, y2 float64) Option {
	return func(r *Rasterizer) {
		r.SetClipBox(x1, y1, x2, y2)
	}
}

// WithFillingRule selects the fill rule.
// Equivalent to calling SetFillingRule after creation.
func WithFillingRule(rule FillingRule) Option {
	return func(r *Rasterizer) {
		r.SetFillingRule(rule)
	}
}

// WithAutoClose controls implicit closing of open contours.
// Equivalent to calling SetAutoClose after creation.
func WithAutoClose(flag bool) Option {
	return func(r *Rasterizer) {
		r.SetAutoClose(flag)
	}
}
