// Package analysis compares settled bin counts against the binomial overlay.
//
//   - [ChiSquare]: Pearson goodness of fit with tail pooling
//   - [PValue]: upper tail of the chi-square distribution
//   - [TotalVariation]: half the L1 distance between two distributions
//
// # Goodness of Fit
//
// Bins whose expected count is below [MinExpected] are pooled with their
// neighbours before the statistic is computed:
//
//	fit := analysis.ChiSquare(bins, board.Distribution(rows))
//	if fit.PValue < 0.01 {
//	    // the board is not behaving like fair coin flips
//	}
package analysis
