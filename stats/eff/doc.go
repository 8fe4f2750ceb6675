// Package eff computes binomial efficiency histograms: data are split
// into bins and the success fraction in each bin is estimated together
// with an asymmetric error pair.
//
// Two error modes are available:
//
//   - Approximate (default): the normal-approximation error
//     sqrt(p*(1-p)/n), applied symmetrically. Accurate when n is large
//     and p is not too close to 0 or 1, and much faster.
//   - Exact: a 68.3% credible interval obtained by treating the observed
//     success count as a binomial likelihood in the unknown true
//     efficiency, splitting the likelihood mass below and above the point
//     estimate, and walking outward in fixed steps until each side has
//     captured its share of the mass.
//
// Empty bins report an efficiency of 0 with errors (0, 1) in both modes
// and are filtered from the output unless WithReturnAll(true) is set.
//
// # Usage
//
// One-shot over in-memory data:
//
//	res, err := eff.Compute(x, success, eff.WithBins(20), eff.WithRange(0, 25))
//
// Streaming over data that arrives in blocks:
//
//	edges, _ := hist.Linear(20, 0, 25)
//	acc, _ := eff.NewAccumulator(edges)
//	for ... {
//	    acc.Add(x, ok)
//	}
//	res := acc.Result(eff.WithFullErrors(true))
package eff
