package holidays

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rabitt1ove/businesstime/internal/confload"
)

// ruleFile is the on-disk shape of a rule set:
//
//	name: Company
//	observe_weekend: true
//	rules:
//	  - {name: Founders Day, month: march, day: 3}
//	  - {name: Summer Friday, month: 8, weekday: friday, week: -1}
type ruleFile struct {
	Name           string      `yaml:"name" toml:"name"`
	ObserveWeekend bool        `yaml:"observe_weekend" toml:"observe_weekend"`
	Rules          []ruleEntry `yaml:"rules" toml:"rules"`
}

type ruleEntry struct {
	Name     string `yaml:"name" toml:"name"`
	Month    any    `yaml:"month" toml:"month"`
	Day      int    `yaml:"day" toml:"day"`
	Weekday  any    `yaml:"weekday" toml:"weekday"`
	Week     int    `yaml:"week" toml:"week"`
	FromYear int    `yaml:"from_year" toml:"from_year"`
	ToYear   int    `yaml:"to_year" toml:"to_year"`
}

// LoadRuleSet reads a rule set from a YAML (.yaml, .yml) or TOML file.
func LoadRuleSet(path string) (*RuleSet, error) {
	var f ruleFile
	if err := confload.LoadFile(path, &f); err != nil {
		return nil, fmt.Errorf("holidays: load %s: %w", path, err)
	}
	return f.ruleSet()
}

// ParseRuleSet decodes a rule set from data in the given format ("yaml" or
// "toml").
func ParseRuleSet(data []byte, format string) (*RuleSet, error) {
	fmtID, err := confload.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("holidays: parse rule set: %w", err)
	}
	var f ruleFile
	if err := confload.Unmarshal(data, fmtID, &f); err != nil {
		return nil, fmt.Errorf("holidays: parse rule set: %w", err)
	}
	return f.ruleSet()
}

func (f ruleFile) ruleSet() (*RuleSet, error) {
	rs := &RuleSet{Name: f.Name, ObserveWeekend: f.ObserveWeekend}
	for i, e := range f.Rules {
		r := Rule{Name: e.Name, Day: e.Day, Week: e.Week, FromYear: e.FromYear, ToYear: e.ToYear}
		m, err := ParseMonth(e.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d (%q): %v", ErrInvalidRule, i, e.Name, err)
		}
		r.Month = m
		if e.Weekday != nil {
			wd, err := ParseWeekday(e.Weekday)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %d (%q): %v", ErrInvalidRule, i, e.Name, err)
			}
			r.Weekday = wd
		}
		rs.Rules = append(rs.Rules, r)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// ParseMonth accepts a month name ("may", "May"), a three-letter
// abbreviation or a number 1-12.
func ParseMonth(v any) (time.Month, error) {
	switch x := v.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		if n, err := strconv.Atoi(s); err == nil {
			return ParseMonth(n)
		}
		for m := time.January; m <= time.December; m++ {
			name := strings.ToLower(m.String())
			if s == name || s == name[:3] {
				return m, nil
			}
		}
		return 0, fmt.Errorf("unknown month %q", x)
	case int:
		if x < 1 || x > 12 {
			return 0, fmt.Errorf("month %d out of range", x)
		}
		return time.Month(x), nil
	case int64:
		return ParseMonth(int(x))
	case uint64:
		return ParseMonth(int(x))
	case nil:
		return 0, fmt.Errorf("month missing")
	default:
		return 0, fmt.Errorf("unsupported month value %v (%T)", v, v)
	}
}

// ParseWeekday accepts a weekday name ("monday"), a three-letter
// abbreviation or a number where 0 is Monday and 6 is Sunday.
func ParseWeekday(v any) (time.Weekday, error) {
	switch x := v.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		if n, err := strconv.Atoi(s); err == nil {
			return ParseWeekday(n)
		}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			name := strings.ToLower(wd.String())
			if s == name || s == name[:3] {
				return wd, nil
			}
		}
		return 0, fmt.Errorf("unknown weekday %q", x)
	case int:
		if x < 0 || x > 6 {
			return 0, fmt.Errorf("weekday %d out of range", x)
		}
		return time.Weekday((x + 1) % 7), nil
	case int64:
		return ParseWeekday(int(x))
	case uint64:
		return ParseWeekday(int(x))
	default:
		return 0, fmt.Errorf("unsupported weekday value %v (%T)", v, v)
	}
}
