package analytics

import "math"

// KDEGridSize is the number of evaluation points for distribution charts.
const KDEGridSize = 200

// KDE evaluates a Gaussian kernel density estimate over a fixed grid spanning
// [min-std, max+std], using Scott's rule for bandwidth. Returns the grid and
// the density values; nil for fewer than 2 points.
func KDE(xs []float64) (grid, density []float64) {
	if len(xs) < 2 {
		return nil, nil
	}
	std := Std(xs)
	if std == 0 {
		return nil, nil
	}

	minV, maxV := xs[0], xs[0]
	for _, x := range xs {
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}

	n := float64(len(xs))
	bw := std * math.Pow(n, -1.0/5.0) // Scott's rule

	lo, hi := minV-std, maxV+std
	step := (hi - lo) / float64(KDEGridSize-1)

	grid = make([]float64, KDEGridSize)
	density = make([]float64, KDEGridSize)
	norm := 1 / (n * bw * math.Sqrt(2*math.Pi))
	for i := 0; i < KDEGridSize; i++ {
		g := lo + float64(i)*step
		grid[i] = g
		sum := 0.0
		for _, x := range xs {
			u := (g - x) / bw
			sum += math.Exp(-0.5 * u * u)
		}
		density[i] = sum * norm
	}
	return grid, density
}
