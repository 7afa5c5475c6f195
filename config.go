package businesstime

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rabitt1ove/businesstime/holidays"
	"github.com/rabitt1ove/businesstime/internal/civil"
	"github.com/rabitt1ove/businesstime/internal/confload"
)

// Config is the file form of a calendar:
//
//	business_hours: {open: "09:00", close: "17:00"}
//	weekend: [saturday, sunday]
//	holidays:
//	  preset: us-federal
//
// Use either business_hours or weekly_hours. Holidays come from exactly
// one of dates, preset or rules_file.
type Config struct {
	BusinessHours *HoursConfig           `yaml:"business_hours" toml:"business_hours"`
	WeeklyHours   map[string]HoursConfig `yaml:"weekly_hours" toml:"weekly_hours"`
	Weekend       []string               `yaml:"weekend" toml:"weekend"`
	Holidays      HolidaysConfig         `yaml:"holidays" toml:"holidays"`

	// dir resolves a relative rules_file; set by LoadConfig.
	dir string
}

// HoursConfig is an open window in "15:04" form.
type HoursConfig struct {
	Open  string `yaml:"open" toml:"open"`
	Close string `yaml:"close" toml:"close"`
}

// HolidaysConfig selects the holiday source.
type HolidaysConfig struct {
	Dates     []string `yaml:"dates" toml:"dates"`
	Preset    string   `yaml:"preset" toml:"preset"`
	RulesFile string   `yaml:"rules_file" toml:"rules_file"`
}

var presets = map[string]Option{
	"us-federal":     WithHolidayGenerator(holidays.USFederal.Sequence),
	"us-federal-cal": WithHolidayGenerator(holidays.USFederalCal),
	"uk":             WithHolidaySet(holidays.UK),
	"queensland":     WithHolidaySet(holidays.Queensland),
	"brisbane":       WithHolidaySet(holidays.Brisbane),
	"singapore":      WithHolidaySet(holidays.Singapore),
}

// Presets returns the names accepted by holidays.preset, sorted.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := confload.LoadFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// ParseConfig decodes data in the given format, "yaml" or "toml".
func ParseConfig(data []byte, format string) (*Config, error) {
	f, err := confload.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var cfg Config
	if err := confload.Unmarshal(data, f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Options converts the config to calendar options. All problems found are
// returned together.
func (cfg *Config) Options() ([]Option, error) {
	var (
		opts []Option
		errs []error
	)

	switch {
	case cfg.BusinessHours != nil && cfg.WeeklyHours != nil:
		errs = append(errs, fmt.Errorf("%w: both business_hours and weekly_hours set", ErrInvalidConfig))
	case cfg.BusinessHours != nil:
		h, err := ParseHours(cfg.BusinessHours.Open, cfg.BusinessHours.Close)
		if err != nil {
			errs = append(errs, fmt.Errorf("business_hours: %w", err))
		} else {
			opts = append(opts, WithBusinessHours(h))
		}
	case cfg.WeeklyHours != nil:
		week := make(WeeklyHours, len(cfg.WeeklyHours))
		for name, hc := range cfg.WeeklyHours {
			wd, err := holidays.ParseWeekday(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: weekly_hours: %v", ErrInvalidConfig, err))
				continue
			}
			h, err := ParseHours(hc.Open, hc.Close)
			if err != nil {
				errs = append(errs, fmt.Errorf("weekly_hours.%s: %w", name, err))
				continue
			}
			week[wd] = h
		}
		opts = append(opts, WithWeeklyHours(week))
	}

	if cfg.Weekend != nil {
		weekend := make([]time.Weekday, 0, len(cfg.Weekend))
		for _, name := range cfg.Weekend {
			wd, err := holidays.ParseWeekday(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidWeekend, err))
				continue
			}
			weekend = append(weekend, wd)
		}
		opts = append(opts, WithWeekend(weekend...))
	}

	src, err := cfg.holidayOption()
	if err != nil {
		errs = append(errs, err)
	} else if src != nil {
		opts = append(opts, src)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return opts, nil
}

func (cfg *Config) holidayOption() (Option, error) {
	hc := cfg.Holidays
	var set []string
	if hc.Dates != nil {
		set = append(set, "dates")
	}
	if hc.Preset != "" {
		set = append(set, "preset")
	}
	if hc.RulesFile != "" {
		set = append(set, "rules_file")
	}
	if len(set) > 1 {
		return nil, fmt.Errorf("%w: holidays: %s", ErrConflictingHolidays, strings.Join(set, ", "))
	}

	switch {
	case hc.Dates != nil:
		dates := make([]time.Time, 0, len(hc.Dates))
		for _, s := range hc.Dates {
			d, err := civil.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("%w: holidays.dates: %v", ErrInvalidConfig, err)
			}
			dates = append(dates, d.In(time.UTC))
		}
		return WithHolidays(dates...), nil
	case hc.Preset != "":
		opt, ok := presets[strings.ToLower(hc.Preset)]
		if !ok {
			return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPreset, hc.Preset, strings.Join(Presets(), ", "))
		}
		return opt, nil
	case hc.RulesFile != "":
		path := hc.RulesFile
		if !filepath.IsAbs(path) && cfg.dir != "" {
			path = filepath.Join(cfg.dir, path)
		}
		rs, err := holidays.LoadRuleSet(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return WithHolidayGenerator(rs.Sequence), nil
	}
	return nil, nil
}

// NewFromConfig builds a Calendar from cfg. Options in extra are applied
// after the config's own, so WithLogger can be added here.
func NewFromConfig(cfg *Config, extra ...Option) (*Calendar, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
