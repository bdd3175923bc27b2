// Package plotlog converts benchmark SVG plots whose data spans several
// decades to a logarithmic presentation.
package plotlog

import (
	"github.com/rs/zerolog"

	"github.com/ukaji3/plotlog-go/pkg/plotlog/scale"
)

const (
	// DefaultSuffix is inserted before the extension of converted outputs.
	DefaultSuffix = "_log"
	// TitleSuffix is appended to the title of converted plots.
	TitleSuffix = " (log scale)"
	// Extension is the file extension of plot documents.
	Extension = ".svg"
)

// Options configures conversion behavior.
type Options struct {
	// Suffix is inserted between stem and extension of the output file.
	// Empty means DefaultSuffix.
	Suffix string
	// InPlace overwrites the source file instead of writing a sibling.
	InPlace bool
	// DryRun makes every decision but writes nothing.
	DryRun bool
	// TickCount is the target number of log ticks. Zero means scale.DefaultTickCount.
	TickCount int
	// SkipConverted excludes files that look like earlier outputs from discovery.
	// If nil, defaults to true unless InPlace is set.
	SkipConverted *bool
	// Logger receives progress and error events. The zero value discards them.
	Logger zerolog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Suffix:    DefaultSuffix,
		TickCount: scale.DefaultTickCount,
		Logger:    zerolog.Nop(),
	}
}

// OutputSuffix returns the suffix used for output file names.
func (o Options) OutputSuffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}

// Ticks returns the target tick count.
func (o Options) Ticks() int {
	if o.TickCount <= 0 {
		return scale.DefaultTickCount
	}
	return o.TickCount
}

// ShouldSkipConverted returns whether earlier outputs are excluded from discovery.
func (o Options) ShouldSkipConverted() bool {
	if o.InPlace {
		return false
	}
	if o.SkipConverted != nil {
		return *o.SkipConverted
	}
	return true
}
