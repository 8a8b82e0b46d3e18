// Package arma implements ARMA(1,1) estimation with explicit convergence reporting.
//
// An ARMA(1,1) model combines one autoregressive and one moving-average term:
//
//	x[t] = mu + phi*x[t-1] + theta*e[t-1] + e[t]
//
// Two estimation modes are provided, both stateless with respect to prior
// calls:
//
//   - FitAuto: iterative refinement from seed coefficients until the
//     parameter step norm falls below a tolerance or an iteration budget is
//     exhausted. The result carries an explicit Converged flag so the caller
//     can tell the two outcomes apart.
//   - FitFixed: a single prediction pass with fixed seed coefficients, for
//     hosts that supply their own parameters.
//
// # Basic Usage
//
//	result, err := arma.FitAuto(series, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Converged {
//	    log.Printf("budget exhausted after %d iterations", result.Iterations)
//	}
//	fmt.Printf("phi=%.4f theta=%.4f mu=%.4f\n",
//	    result.Params.Phi, result.Params.Theta, result.Params.Mu)
//
// # Tuning
//
// The iteration budget and tolerance are call-time configuration rather than
// hardcoded constants:
//
//	cfg := arma.DefaultConfig()
//	cfg.MaxIterations = 200
//	cfg.Tolerance = 1e-8
//	result, err := arma.FitAuto(series, cfg)
//
// Convergence diagnostics are emitted through the configured zap logger; the
// default is a no-op.
package arma
