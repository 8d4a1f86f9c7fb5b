package reflow

import (
	"fmt"
	"unicode/utf8"
)

const (
	DefaultLaneCount    = 6
	DefaultMaxWidth     = 80
	DefaultSegmentWidth = 80
	DefaultSeparator    = '|'
)

// Config controls a reflow. The zero value is not valid; start from
// [Default] or [New].
type Config struct {
	// LaneCount is the number of lines in a lane block, one per string.
	LaneCount int
	// MaxWidth is the widest block that is passed through unsplit.
	MaxWidth int
	// SegmentWidth is the width of each segment of a split block.
	SegmentWidth int
	// Separator ends a lane's prefix.
	Separator   rune
	Measure     Measure
	Termination Termination
}

func Default() Config {
	return Config{
		LaneCount:    DefaultLaneCount,
		MaxWidth:     DefaultMaxWidth,
		SegmentWidth: DefaultSegmentWidth,
		Separator:    DefaultSeparator,
		Measure:      Runes,
		Termination:  FirstLane,
	}
}

type Option func(*Config)

// New returns [Default] with opts applied.
func New(opts ...Option) Config {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func WithLaneCount(n int) Option {
	return func(c *Config) { c.LaneCount = n }
}

func WithMaxWidth(n int) Option {
	return func(c *Config) { c.MaxWidth = n }
}

func WithSegmentWidth(n int) Option {
	return func(c *Config) { c.SegmentWidth = n }
}

// WithWidth sets both MaxWidth and SegmentWidth.
func WithWidth(n int) Option {
	return func(c *Config) {
		c.MaxWidth = n
		c.SegmentWidth = n
	}
}

func WithSeparator(r rune) Option {
	return func(c *Config) { c.Separator = r }
}

func WithMeasure(m Measure) Option {
	return func(c *Config) { c.Measure = m }
}

func WithTermination(t Termination) Option {
	return func(c *Config) { c.Termination = t }
}

// Validate returns an error wrapping [ErrConfig] if c cannot be used.
func (c Config) Validate() error {
	switch {
	case c.LaneCount <= 0:
		return fmt.Errorf("%w: lane count must be positive, got %d", ErrConfig, c.LaneCount)
	case c.MaxWidth <= 0:
		return fmt.Errorf("%w: max width must be positive, got %d", ErrConfig, c.MaxWidth)
	case c.SegmentWidth <= 0:
		return fmt.Errorf("%w: segment width must be positive, got %d", ErrConfig, c.SegmentWidth)
	case c.Separator == 0, c.Separator == '\n', c.Separator == '\r':
		return fmt.Errorf("%w: separator %q cannot delimit lanes", ErrConfig, c.Separator)
	case !utf8.ValidRune(c.Separator), c.Separator == utf8.RuneError:
		return fmt.Errorf("%w: separator %U is not a valid rune", ErrConfig, c.Separator)
	}
	if _, err := c.Measure.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := c.Termination.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}
