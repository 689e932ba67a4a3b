package seasonality

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goprophet/timeseries"
)

// ErrInsufficientHistory indicates the date sequence has fewer than two
// distinct timestamps, so no minimum spacing can be derived.
var ErrInsufficientHistory = errors.New("seasonality: need at least 2 distinct timestamps")

// Thresholds for the automatic enable/disable rules.
const (
	yearlyMinSpan = 730 * 24 * time.Hour
	weeklyMinSpan = 14 * 24 * time.Hour
	weeklyMaxGap  = 7 * 24 * time.Hour
	dailyMinSpan  = 2 * 24 * time.Hour
	dailyMaxGap   = 24 * time.Hour
)

// Resolver applies the automatic seasonality rules to a configuration.
// The zero value logs through logrus.StandardLogger and is not verbose.
type Resolver struct {
	// Logger receives auto-disable notices and, when Verbose is set,
	// the fully resolved configuration.
	Logger logrus.FieldLogger
	// Verbose dumps the resolved configuration after resolution.
	Verbose bool
}

func (r *Resolver) log() logrus.FieldLogger {
	if r.Logger != nil {
		return r.Logger
	}
	return logrus.StandardLogger()
}

// Resolve sets each period's resolution and prunes disabled periods.
//
// Yearly seasonality is enabled when the history spans at least two years.
// Weekly seasonality is enabled when the history spans at least two weeks
// and the spacing between dates is under a week. Daily seasonality is
// enabled when the history spans at least two days and the spacing between
// dates is under a day. Custom period names have no automatic rule and
// resolve Auto to their default resolution.
//
// The configuration is mutated in place: resolutions are filled in and
// periods that resolve to zero are dropped, preserving order. Returns nil
// when no periods remain active; callers must treat a nil config as "no
// seasonality".
func (r *Resolver) Resolve(dates []time.Time, cfg *Config) (*Config, error) {
	if cfg == nil {
		return nil, nil
	}
	minGap := timeseries.MinGap(dates)
	if minGap == 0 {
		return nil, ErrInsufficientHistory
	}
	span := timeseries.Span(dates)

	autoDisable := map[string]bool{
		Yearly: span < yearlyMinSpan,
		Weekly: span < weeklyMinSpan || minGap >= weeklyMaxGap,
		Daily:  span < dailyMinSpan || minGap >= dailyMaxGap,
	}

	for _, p := range cfg.Periods {
		switch p.Arg.kind {
		case argAuto:
			if autoDisable[p.Name] {
				p.Resolution = 0
				r.log().Infof("Disabling %s seasonality. Configure %s seasonality as enabled to override this.",
					p.Name, p.Name)
			} else {
				p.Resolution = p.DefaultResolution
			}
		case argEnabled:
			p.Resolution = p.DefaultResolution
		case argDisabled:
			p.Resolution = 0
		case argOverride:
			p.Resolution = p.Arg.override
		}
	}

	active := cfg.Periods[:0]
	for _, p := range cfg.Periods {
		if p.Resolution > 0 {
			active = append(active, p)
		}
	}
	cfg.Periods = active

	if r.Verbose {
		r.log().Info(cfg.String())
	}
	if len(cfg.Periods) == 0 {
		return nil, nil
	}
	return cfg, nil
}

// ResolveAuto resolves a configuration with default resolver settings.
func ResolveAuto(dates []time.Time, cfg *Config) (*Config, error) {
	r := &Resolver{}
	return r.Resolve(dates, cfg)
}
