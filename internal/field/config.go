package field

// Config holds the constants of a field. Values are fixed for the lifetime
// of a Field.
type Config struct {
	Count             int
	MaxSpeed          float64 // per-axis velocity bound, units per tick
	MinRadius         float64
	MaxRadius         float64
	ConnectionRadius  float64
	InteractionRadius float64
	RepulsionFactor   float64 // fraction of the pointer displacement applied per tick
	GridThreshold     int     // particle count above which Connections uses the grid
}

const (
	DefaultCount             = 60
	DefaultMaxSpeed          = 0.25
	DefaultMinRadius         = 0.5
	DefaultMaxRadius         = 2.0
	DefaultConnectionRadius  = 150.0
	DefaultInteractionRadius = 100.0
	DefaultRepulsionFactor   = 0.01
	DefaultGridThreshold     = 400
)

// OffscreenPointer is the pointer position before any pointer activity. It
// is far enough outside any surface to have no influence.
var OffscreenPointer = Vec2{X: -1000, Y: -1000}

func DefaultConfig() Config {
	return Config{
		Count:             DefaultCount,
		MaxSpeed:          DefaultMaxSpeed,
		MinRadius:         DefaultMinRadius,
		MaxRadius:         DefaultMaxRadius,
		ConnectionRadius:  DefaultConnectionRadius,
		InteractionRadius: DefaultInteractionRadius,
		RepulsionFactor:   DefaultRepulsionFactor,
		GridThreshold:     DefaultGridThreshold,
	}
}
