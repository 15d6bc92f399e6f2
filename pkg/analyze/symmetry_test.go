package analyze

import (
	"math"
	"testing"
)

func TestOuterDistanceCentered(t *testing.T) {
	// Vertex exactly between the two edges: both ratios are 0.5.
	r := OuterDistance(1, 3, 2)
	if math.Abs(r.Left-0.5) > 1e-12 || math.Abs(r.Right-0.5) > 1e-12 {
		t.Errorf("OuterDistance(1,3,2) = %+v, want 0.5/0.5", r)
	}
}

func TestOuterDistanceOffCenter(t *testing.T) {
	// Vertex at 1.5 between edges 1 and 3: left ratio 0.25, right 0.75.
	r := OuterDistance(1, 3, 1.5)
	if math.Abs(r.Left-0.25) > 1e-12 {
		t.Errorf("Left = %v, want 0.25", r.Left)
	}
	if math.Abs(r.Right-0.75) > 1e-12 {
		t.Errorf("Right = %v, want 0.75", r.Right)
	}
}

func TestZeroSpan(t *testing.T) {
	// Coincident intersections have no span to normalize by; the
	// ratios collapse to zero instead of dividing by zero.
	if r := OuterDistance(2, 2, 5); r.Left != 0 || r.Right != 0 {
		t.Errorf("OuterDistance zero span = %+v, want zeros", r)
	}
	if r := InnerDistance(2, 2, 5); r.Left != 0 || r.Right != 0 {
		t.Errorf("InnerDistance zero span = %+v, want zeros", r)
	}
}

func TestInnerDistanceLabelRouting(t *testing.T) {
	// InnerDistance's Left measures the second half's rising edge and
	// Right the first half's falling edge, matching the measurement
	// scripts. negFirst=1, posSecond=3, vertex=1.5.
	r := InnerDistance(1, 3, 1.5)
	if math.Abs(r.Left-0.75) > 1e-12 {
		t.Errorf("Left = %v, want 0.75 (distance of posSecond from vertex)", r.Left)
	}
	if math.Abs(r.Right-0.25) > 1e-12 {
		t.Errorf("Right = %v, want 0.25 (distance of negFirst from vertex)", r.Right)
	}
}

func TestRatiosUnderReflection(t *testing.T) {
	// Reflecting every x about the vertex (x -> 2v - x) swaps which
	// physical edge is "first half rising" vs "second half falling",
	// so the ratio pair swaps sides but keeps its values.
	posFirst, negSecond, v := 0.8, 3.2, 1.9
	orig := OuterDistance(posFirst, negSecond, v)
	refl := OuterDistance(2*v-negSecond, 2*v-posFirst, v)
	if math.Abs(orig.Left-refl.Right) > 1e-12 || math.Abs(orig.Right-refl.Left) > 1e-12 {
		t.Errorf("reflection: orig = %+v, reflected = %+v, want swapped pair", orig, refl)
	}
}
