package phpver

import "testing"

func TestGateMonotone(t *testing.T) {
	g := NewGate(PHP70)
	if g.Floor() != PHP70 {
		t.Errorf("Floor = %d", g.Floor())
	}

	g.Raise(PHP72)
	if g.Floor() != PHP72 {
		t.Errorf("Floor = %d after raise", g.Floor())
	}

	// raising to a lower version must not lower the floor
	g.Raise(PHP71)
	if g.Floor() != PHP72 {
		t.Errorf("Floor = %d, floor must never drop", g.Floor())
	}
}

func TestGateAllows(t *testing.T) {
	g := NewGate(PHP70)
	if !g.Allows(PHP70) {
		t.Error("floor equal to ceiling must be allowed")
	}

	g.Raise(PHP71)
	if g.Allows(PHP70) {
		t.Error("floor above ceiling must not be allowed")
	}
	if !g.Allows(PHP74) {
		t.Error("ceiling above floor must be allowed")
	}
}
