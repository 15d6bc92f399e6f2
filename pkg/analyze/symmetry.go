package analyze

import "math"

// Ratios is a pair of relative distances from edge intersections to the
// valley vertex, each normalized by the span between the two
// intersections. A perfectly centered valley gives 0.5 on both sides.
type Ratios struct {
	Left  float64
	Right float64
}

// OuterDistance relates the outer edge pair to the vertex: the first
// half's rising edge and the second half's falling edge. A zero span
// yields zero ratios rather than a division by zero.
func OuterDistance(posFirst, negSecond, vertexX float64) Ratios {
	span := math.Abs(posFirst - negSecond)
	if span == 0 {
		return Ratios{}
	}
	return Ratios{
		Left:  math.Abs(posFirst-vertexX) / span,
		Right: math.Abs(negSecond-vertexX) / span,
	}
}

// InnerDistance relates the inner edge pair to the vertex: the first
// half's falling edge and the second half's rising edge. Note the label
// routing: Left measures the second half's rising edge and Right the
// first half's falling edge. This matches the measurement scripts this
// tool replaces, and downstream aggregation depends on it.
func InnerDistance(negFirst, posSecond, vertexX float64) Ratios {
	span := math.Abs(negFirst - posSecond)
	if span == 0 {
		return Ratios{}
	}
	return Ratios{
		Left:  math.Abs(posSecond-vertexX) / span,
		Right: math.Abs(negFirst-vertexX) / span,
	}
}
