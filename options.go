package signature

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidOptions is returned by [Options.Validate].
var ErrInvalidOptions = errors.New("invalid options")

const (
	DefaultVelocityFilterWeight = 0.7
	DefaultMinWidth             = 0.5
	DefaultMaxWidth             = 2.5
	DefaultMinDistance          = 5
)

// Options configures how strokes are rendered. A stroke reads its options
// once, when it is created.
type Options struct {
	// VelocityFilterWeight is the weight of the newest velocity reading in the
	// low-pass filter, in [0, 1]. 1 disables filtering.
	VelocityFilterWeight float64 `yaml:"velocity_filter_weight"`
	// MinWidth and MaxWidth bound the stroke width. Widths are disc radii.
	MinWidth float64 `yaml:"min_width"`
	MaxWidth float64 `yaml:"max_width"`
	// MinDistance is how far the pointer has to move before [Pad] accepts
	// another sample. The stroke itself doesn't enforce it.
	MinDistance float64 `yaml:"min_distance"`
	// Color is the fill color of strokes. Nil means black.
	Color color.Color `yaml:"-"`
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		VelocityFilterWeight: DefaultVelocityFilterWeight,
		MinWidth:             DefaultMinWidth,
		MaxWidth:             DefaultMaxWidth,
		MinDistance:          DefaultMinDistance,
		Color:                color.Black,
	}
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"velocity filter weight", o.VelocityFilterWeight},
		{"min width", o.MinWidth},
		{"max width", o.MaxWidth},
		{"min distance", o.MinDistance},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidOptions, f.name, f.v)
		}
	}
	switch {
	case o.VelocityFilterWeight < 0 || o.VelocityFilterWeight > 1:
		return fmt.Errorf("%w: velocity filter weight %g is outside [0, 1]", ErrInvalidOptions, o.VelocityFilterWeight)
	case o.MinWidth < 0:
		return fmt.Errorf("%w: min width %g is negative", ErrInvalidOptions, o.MinWidth)
	case o.MaxWidth < o.MinWidth:
		return fmt.Errorf("%w: max width %g is less than min width %g", ErrInvalidOptions, o.MaxWidth, o.MinWidth)
	case o.MinDistance < 0:
		return fmt.Errorf("%w: min distance %g is negative", ErrInvalidOptions, o.MinDistance)
	}
	return nil
}

func (o Options) fillColor() color.Color {
	if o.Color == nil {
		return color.Black
	}
	return o.Color
}
