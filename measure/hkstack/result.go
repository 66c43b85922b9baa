package hkstack

import (
	"context"

	"github.com/cwbudde/algo-seis/rftn"
	"github.com/cwbudde/algo-seis/stats/bivar"
)

// Result is the full outcome of one stacking run.
type Result struct {
	Station string
	Optimum
	Surface     Surface
	Uncertainty *Uncertainty  // nil unless Config.Bootstrap
	Ellipse     []bivar.Point // confidence ellipse around the optimum, with Uncertainty
}

// Analyze is the one-shot entry point: it validates the configuration,
// stacks the trace set, and, when Config.Bootstrap is set, estimates the
// optimum's uncertainty and its confidence ellipse. ctx bounds only the
// bootstrap phase; the single stack is synchronous.
func Analyze(ctx context.Context, ts rftn.TraceSet, cfg Config) (Result, error) {
	st, err := NewStacker(cfg)
	if err != nil {
		return Result{}, err
	}

	surf, opt, err := st.Stack(ts)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Station: ts.Station(),
		Optimum: opt,
		Surface: surf,
	}

	if !st.cfg.Bootstrap {
		return res, nil
	}

	unc, err := st.Bootstrap(ctx, ts)
	if err != nil {
		return Result{}, err
	}

	res.Uncertainty = &unc
	res.Ellipse = bivar.ConfidenceEllipse(
		opt.Depth, opt.Kappa,
		unc.SigmaDepth, unc.SigmaKappa, unc.Corr,
		st.cfg.EllipsePoints,
	)

	return res, nil
}
