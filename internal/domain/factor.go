package domain

// WeightingFactor holds the linear weights of one season's wOBA formula.
// Corresponds to one row of the FanGraphs guts table.
type WeightingFactor struct {
	Season int
	WBB    float64 // unintentional walk
	WHBP   float64 // hit by pitch
	W1B    float64 // single
	W2B    float64 // double
	W3B    float64 // triple
	WHR    float64 // home run
}
