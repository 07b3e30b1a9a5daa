package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PresentLiteral is the serialized form of an open-ended date.
const PresentLiteral = "Present"

// YearMonth is a calendar month without a day, or the Present sentinel.
type YearMonth struct {
	Year    int
	Month   time.Month
	present bool
}

// Present marks an ongoing period; it resolves to the current month when
// durations are computed.
var Present = YearMonth{present: true}

// NewYearMonth validates and builds a YearMonth.
func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	if month < time.January || month > time.December {
		return YearMonth{}, fmt.Errorf("month %d out of range", month)
	}
	if year < 1 || year > 9999 {
		return YearMonth{}, fmt.Errorf("year %d out of range", year)
	}
	return YearMonth{Year: year, Month: month}, nil
}

// MustYearMonth is NewYearMonth for literals known to be valid.
func MustYearMonth(year int, month time.Month) YearMonth {
	ym, err := NewYearMonth(year, month)
	if err != nil {
		panic(err)
	}
	return ym
}

// ParseYearMonth parses "YYYY-MM" or "Present".
func ParseYearMonth(value string) (YearMonth, error) {
	value = strings.TrimSpace(value)
	if value == PresentLiteral {
		return Present, nil
	}
	yearPart, monthPart, ok := strings.Cut(value, "-")
	if !ok || len(yearPart) != 4 || len(monthPart) != 2 {
		return YearMonth{}, fmt.Errorf("parse year-month %q: want YYYY-MM or %s", value, PresentLiteral)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: year: %w", value, err)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: month: %w", value, err)
	}
	ym, err := NewYearMonth(year, time.Month(month))
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: %w", value, err)
	}
	return ym, nil
}

// IsPresent reports whether ym is the Present sentinel.
func (ym YearMonth) IsPresent() bool { return ym.present }

// IsZero reports whether ym was never set.
func (ym YearMonth) IsZero() bool {
	return !ym.present && ym.Year == 0 && ym.Month == 0
}

// String renders the serialized form.
func (ym YearMonth) String() string {
	if ym.present {
		return PresentLiteral
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// After reports whether ym falls strictly after other. Present is after
// every concrete month.
func (ym YearMonth) After(other YearMonth) bool {
	switch {
	case ym.present:
		return !other.present
	case other.present:
		return false
	}
	return ym.index() > other.index()
}

// resolve maps Present onto now.
func (ym YearMonth) resolve(now time.Time) YearMonth {
	if !ym.present {
		return ym
	}
	return YearMonth{Year: now.Year(), Month: now.Month()}
}

func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// UnmarshalYAML accepts the same forms as ParseYearMonth.
func (ym *YearMonth) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	parsed, err := ParseYearMonth(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*ym = parsed
	return nil
}

// MarshalYAML writes the serialized form.
func (ym YearMonth) MarshalYAML() (any, error) {
	return ym.String(), nil
}
