package collision

type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

type Resolution struct {
	Side Side
	// Corrected is the Y (vertical) or X (horizontal) position that removes the overlap.
	Corrected float64
	Stop      bool
}

// ResolveVertical decides which face of stationary the moving box struck.
// SideBottom means the mover's bottom landed on stationary's top face.
func ResolveVertical(moving, stationary AABB, velocity Vec) Resolution {
	if !Check(moving, stationary).IsColliding {
		return Resolution{Side: SideNone, Corrected: moving.Y}
	}

	landed := velocity.Y > 0
	if velocity.Y == 0 {
		landed = moving.CenterY() < stationary.CenterY()
	}
	if landed {
		return Resolution{Side: SideBottom, Corrected: stationary.Y - moving.Height, Stop: true}
	}
	return Resolution{Side: SideTop, Corrected: stationary.Bottom(), Stop: true}
}

// ResolveHorizontal mirrors ResolveVertical on the X axis. SideRight means
// the mover's right edge struck stationary's left face.
func ResolveHorizontal(moving, stationary AABB, velocity Vec) Resolution {
	if !Check(moving, stationary).IsColliding {
		return Resolution{Side: SideNone, Corrected: moving.X}
	}

	right := velocity.X > 0
	if velocity.X == 0 {
		right = moving.CenterX() < stationary.CenterX()
	}
	if right {
		return Resolution{Side: SideRight, Corrected: stationary.X - moving.Width, Stop: true}
	}
	return Resolution{Side: SideLeft, Corrected: stationary.Right(), Stop: true}
}
