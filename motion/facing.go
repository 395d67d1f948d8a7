package motion

// Facing is the horizontal sprite orientation
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Face derives facing from horizontal velocity; zero keeps the current value
func Face(current Facing, vx float64) Facing {
	switch {
	case vx < 0:
		return FacingLeft
	case vx > 0:
		return FacingRight
	default:
		return current
	}
}

// Sign is -1 when facing left, 1 otherwise; used to mirror anchor offsets
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}
