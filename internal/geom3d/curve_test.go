package geom3d

import "testing"

func TestCurveFrontBackLen(t *testing.T) {
	c := Curve{Points: Cloud3D{{X: 0}, {X: 1}, {X: 2}}}
	if c.Front().X != 0 || c.Back().X != 2 || c.Len() != 3 {
		t.Fatalf("unexpected front/back/len: %+v %+v %d", c.Front(), c.Back(), c.Len())
	}
}

func TestCurveReversed(t *testing.T) {
	c := Curve{Points: Cloud3D{{X: 0}, {X: 1}, {X: 2}}}
	r := c.Reversed()
	if r.Front().X != 2 || r.Back().X != 0 {
		t.Fatalf("expected reversed endpoints, got front=%+v back=%+v", r.Front(), r.Back())
	}
	if c.Front().X != 0 {
		t.Fatal("expected Reversed to not mutate the original curve")
	}
}

func TestCurveClose(t *testing.T) {
	c := Curve{Points: Cloud3D{{X: 0}, {X: 1}, {X: 2}}}
	closed := c.Close()
	if !closed.Closed {
		t.Fatal("expected Close to set Closed=true")
	}
	if closed.Len() != c.Len()+1 {
		t.Fatalf("expected one extra vertex, got len %d", closed.Len())
	}
	if closed.Front() != closed.Back() {
		t.Fatalf("expected first vertex duplicated onto the end, got front=%+v back=%+v", closed.Front(), closed.Back())
	}
}
