package engine

// Entity is anything the registry updates and draws
// An entity removes itself by marking itself dead; the registry drops it next tick
type Entity interface {
	Update(ctx *Context)
	Draw(ctx *Context)
	Dead() bool
	Kill()
}

// Lifecycle supplies Dead/Kill for embedding
type Lifecycle struct {
	dead bool
}

func (l *Lifecycle) Dead() bool { return l.dead }
func (l *Lifecycle) Kill()      { l.dead = true }

// Layer selects draw order; lower layers update and draw first
type Layer int

const (
	Background Layer = iota
	Midground
	Foreground

	layerCount
)

func (l Layer) String() string {
	switch l {
	case Background:
		return "background"
	case Midground:
		return "midground"
	case Foreground:
		return "foreground"
	default:
		return "unknown"
	}
}
