// Package seasonality implements seasonal configuration for additive forecasting models.
package seasonality

import (
	"fmt"
	"strings"
)

// Kind determines how a seasonal period is represented in the model.
type Kind string

const (
	// Fourier represents each period with sin/cos harmonic pairs.
	Fourier Kind = "fourier"
	// Linear represents each period with one weight per resolution step.
	Linear Kind = "linear"
)

// Built-in seasonality names with automatic enable/disable rules.
const (
	Yearly = "yearly"
	Weekly = "weekly"
	Daily  = "daily"
)

type argKind int

const (
	argAuto argKind = iota
	argEnabled
	argDisabled
	argOverride
)

// Argument states how a seasonal period was requested: automatically
// decided from the data, forced on or off, or given an explicit resolution.
type Argument struct {
	kind     argKind
	override int
}

// Auto lets the resolver decide from the historical date range.
func Auto() Argument { return Argument{kind: argAuto} }

// Enabled forces the period on at its default resolution.
func Enabled() Argument { return Argument{kind: argEnabled} }

// Disabled forces the period off.
func Disabled() Argument { return Argument{kind: argDisabled} }

// Override forces the period on with an explicit resolution.
func Override(resolution int) Argument {
	return Argument{kind: argOverride, override: resolution}
}

// String returns a human-readable form of the argument.
func (a Argument) String() string {
	switch a.kind {
	case argAuto:
		return "auto"
	case argEnabled:
		return "enabled"
	case argDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("override(%d)", a.override)
	}
}

// Period is one seasonal component of the configuration.
type Period struct {
	Name              string
	Arg               Argument
	DefaultResolution int
	// Resolution is set by the resolver; it is meaningful only after
	// resolution logic has run.
	Resolution int
}

// Config is an ordered set of seasonal periods. Insertion order defines
// iteration and display order. A nil *Config means no seasonality.
type Config struct {
	Kind    Kind
	Periods []*Period
}

// NewConfig creates an empty seasonal configuration of the given kind.
func NewConfig(kind Kind) *Config {
	return &Config{Kind: kind}
}

// Add appends a period to the configuration, preserving insertion order.
func (c *Config) Add(name string, arg Argument, defaultResolution int) *Config {
	c.Periods = append(c.Periods, &Period{
		Name:              name,
		Arg:               arg,
		DefaultResolution: defaultResolution,
	})
	return c
}

// Period returns the named period, or nil if it is not configured.
func (c *Config) Period(name string) *Period {
	if c == nil {
		return nil
	}
	for _, p := range c.Periods {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Dim is a named input-dimension count for one seasonal component.
type Dim struct {
	Name string
	Size int
}

// ModelDims converts the configuration to input dimensions for the
// seasonal submodule, in configuration order. Fourier periods contribute
// two dimensions per resolution step (a sin/cos pair), other kinds one.
// Returns nil if the config is nil or has no periods.
func (c *Config) ModelDims() []Dim {
	if c == nil || len(c.Periods) == 0 {
		return nil
	}
	dims := make([]Dim, 0, len(c.Periods))
	for _, p := range c.Periods {
		size := p.Resolution
		if c.Kind == Fourier {
			size = 2 * p.Resolution
		}
		dims = append(dims, Dim{Name: p.Name, Size: size})
	}
	return dims
}

// String renders the configuration for diagnostics.
func (c *Config) String() string {
	if c == nil {
		return "seasonality: none"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "seasonality(kind=%s):", c.Kind)
	for _, p := range c.Periods {
		fmt.Fprintf(&b, " %s{arg=%s, default=%d, resolution=%d}",
			p.Name, p.Arg, p.DefaultResolution, p.Resolution)
	}
	return b.String()
}
