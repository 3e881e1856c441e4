package cubesim

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all movements are stored and accessible via
// History(). Disable this for long sessions to reduce memory usage; Undo is
// unavailable while disabled.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
