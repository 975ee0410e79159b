package phpver

// Gate is the per-file-pass version watermark. It starts at the tool's
// floor and only ever rises: once a construct requiring a newer version
// has been seen anywhere in the file, every later decision is made at that
// higher floor, even when the annotation that raised it was itself
// abandoned. A gate is scoped to one file pass and discarded afterwards.
type Gate struct {
	floor ID
}

// NewGate creates a gate with the given starting floor.
func NewGate(floor ID) *Gate {
	return &Gate{floor: floor}
}

// Raise lifts the floor to v if v is higher. Lower values are ignored.
func (g *Gate) Raise(v ID) {
	if v > g.floor {
		g.floor = v
	}
}

// Floor returns the current watermark.
func (g *Gate) Floor() ID {
	return g.floor
}

// Allows reports whether the current floor fits under the target ceiling.
func (g *Gate) Allows(target ID) bool {
	return g.floor <= target
}
