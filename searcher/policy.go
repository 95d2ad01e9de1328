package searcher

import "math"

type uct struct {
	temperature float64
	logN        float64
}

// newUCT prepares the scores of the children of a node visited N times.
func newUCT(temperature float64, N int) uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return uct{temperature: temperature, logN: math.Log(float64(N))}
}

// evaluate scores a child with win fraction p over n rollouts.
func (u uct) evaluate(p float64, n int) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = p + c*sqrt(ln(N)/n)
	return p + u.temperature*math.Sqrt(u.logN/float64(n))
}
