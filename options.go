package fieldreport

// DefaultSpacing is the vertical gap, in points, left after a block.
const DefaultSpacing = 12.0

// CursorOption is a functional option for configuring a PageCursor via
// NewPageCursor.
type CursorOption func(*cursorConfig)

type cursorConfig struct {
	geometry PageGeometry
	spacing  float64
}

// WithSpacing sets the vertical spacing added by PageCursor.Space.
func WithSpacing(spacing float64) CursorOption {
	return func(c *cursorConfig) {
		if spacing >= 0 {
			c.spacing = spacing
		}
	}
}

// WithGeometry overrides the page geometry. Documents are always Letter;
// this exists so layouts can be exercised on small pages.
func WithGeometry(g PageGeometry) CursorOption {
	return func(c *cursorConfig) {
		c.geometry = g
	}
}
