package hkstack

// Defaults follow the conventional H-kappa parameterization for continental
// crust: Zhu & Kanamori (2001) phase weights and a 6.2 km/s average Vp.
const (
	defaultVp           = 6.2
	defaultDepthMin     = 32.0
	defaultDepthMax     = 50.0
	defaultDepthInc     = 0.1
	defaultKappaMin     = 1.6
	defaultKappaMax     = 1.9
	defaultKappaInc     = 0.01
	defaultW1           = 0.7
	defaultW2           = 0.2
	defaultW3           = 0.1
	defaultReplications = 200
	defaultEllipseN     = 250
	defaultPlotStart    = -2.0
	defaultPlotEnd      = 30.0
)

// Config holds the H-kappa stacking parameters.
type Config struct {
	Vp float64 // assumed average crustal P velocity (km/s)

	DepthMin float64 // grid depth range [DepthMin, DepthMax), km
	DepthMax float64
	DepthInc float64

	KappaMin float64 // grid Vp/Vs range [KappaMin, KappaMax)
	KappaMax float64
	KappaInc float64

	W1 float64 // Ps stacking weight
	W2 float64 // PpPs stacking weight
	W3 float64 // PpSs stacking weight (subtracted: reversed polarity)

	PWS bool // phase-weighted stacking (Schimmel & Paulssen, 1997)

	Bootstrap    bool  // estimate uncertainty via bootstrap resampling
	Replications int   // bootstrap trial count
	Seed         int64 // bootstrap RNG seed; 0 draws one from the clock
	Workers      int   // bootstrap worker pool size; 0 uses all CPUs

	EllipsePoints int // vertices on the confidence ellipse polyline

	// Receiver-function display window, carried through for rendering
	// collaborators. Not used by the stacking computation.
	PlotStart float64
	PlotEnd   float64
}

// DefaultConfig returns the stock parameterization.
func DefaultConfig() Config {
	return Config{
		Vp:            defaultVp,
		DepthMin:      defaultDepthMin,
		DepthMax:      defaultDepthMax,
		DepthInc:      defaultDepthInc,
		KappaMin:      defaultKappaMin,
		KappaMax:      defaultKappaMax,
		KappaInc:      defaultKappaInc,
		W1:            defaultW1,
		W2:            defaultW2,
		W3:            defaultW3,
		Replications:  defaultReplications,
		EllipsePoints: defaultEllipseN,
		PlotStart:     defaultPlotStart,
		PlotEnd:       defaultPlotEnd,
	}
}

// normalizeConfig fills zero values with defaults. Weights and ranges are
// defaulted as a group so a partially set group is passed through to
// validation instead of being silently completed.
func normalizeConfig(cfg Config) Config {
	if cfg.Vp == 0 {
		cfg.Vp = defaultVp
	}

	if cfg.DepthMin == 0 && cfg.DepthMax == 0 {
		cfg.DepthMin = defaultDepthMin
		cfg.DepthMax = defaultDepthMax
	}

	if cfg.DepthInc == 0 {
		cfg.DepthInc = defaultDepthInc
	}

	if cfg.KappaMin == 0 && cfg.KappaMax == 0 {
		cfg.KappaMin = defaultKappaMin
		cfg.KappaMax = defaultKappaMax
	}

	if cfg.KappaInc == 0 {
		cfg.KappaInc = defaultKappaInc
	}

	if cfg.W1 == 0 && cfg.W2 == 0 && cfg.W3 == 0 {
		cfg.W1 = defaultW1
		cfg.W2 = defaultW2
		cfg.W3 = defaultW3
	}

	if cfg.Replications == 0 {
		cfg.Replications = defaultReplications
	}

	if cfg.EllipsePoints == 0 {
		cfg.EllipsePoints = defaultEllipseN
	}

	if cfg.PlotStart == 0 && cfg.PlotEnd == 0 {
		cfg.PlotStart = defaultPlotStart
		cfg.PlotEnd = defaultPlotEnd
	}

	return cfg
}

// validateConfig rejects configurations that cannot produce a grid.
func validateConfig(cfg Config) error {
	if cfg.Vp <= 0 {
		return ErrInvalidVp
	}

	if cfg.DepthInc <= 0 || cfg.KappaInc <= 0 {
		return ErrInvalidIncrement
	}

	if cfg.DepthMax <= cfg.DepthMin || cfg.KappaMax <= cfg.KappaMin {
		return ErrInvalidRange
	}

	if cfg.KappaMin <= 0 {
		return ErrInvalidRange
	}

	if cfg.Bootstrap && cfg.Replications < 2 {
		return ErrInvalidReplications
	}

	return nil
}
