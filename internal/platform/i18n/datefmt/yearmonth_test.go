package datefmt

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseYearMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    YearMonth
		wantErr bool
	}{
		{input: "2024-09", want: YearMonth{Year: 2024, Month: time.September}},
		{input: " 2019-01 ", want: YearMonth{Year: 2019, Month: time.January}},
		{input: "Present", want: Present},
		{input: "present", wantErr: true},
		{input: "2024-13", wantErr: true},
		{input: "2024-00", wantErr: true},
		{input: "2024-9", wantErr: true},
		{input: "24-09", wantErr: true},
		{input: "2024/09", wantErr: true},
		{input: "abcd-ef", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseYearMonth(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseYearMonth(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseYearMonth(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseYearMonth(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewYearMonthRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	if _, err := NewYearMonth(2024, 0); err == nil {
		t.Fatal("expected error for month 0")
	}
	if _, err := NewYearMonth(2024, 13); err == nil {
		t.Fatal("expected error for month 13")
	}
	if _, err := NewYearMonth(0, time.March); err == nil {
		t.Fatal("expected error for year 0")
	}
}

func TestYearMonthStringRoundTrips(t *testing.T) {
	t.Parallel()

	for _, ym := range []YearMonth{MustYearMonth(2024, time.September), MustYearMonth(2001, time.December), Present} {
		parsed, err := ParseYearMonth(ym.String())
		if err != nil {
			t.Fatalf("ParseYearMonth(%q): %v", ym.String(), err)
		}
		if parsed != ym {
			t.Fatalf("round trip = %v, want %v", parsed, ym)
		}
	}
}

func TestYearMonthAfter(t *testing.T) {
	t.Parallel()

	a := MustYearMonth(2023, time.January)
	b := MustYearMonth(2023, time.February)
	if !b.After(a) || a.After(b) {
		t.Fatal("expected February after January")
	}
	if a.After(a) {
		t.Fatal("a month is not after itself")
	}
	if !Present.After(b) || b.After(Present) {
		t.Fatal("expected Present after concrete months")
	}
	if Present.After(Present) {
		t.Fatal("Present is not after Present")
	}
}

func TestYearMonthZero(t *testing.T) {
	t.Parallel()

	var zero YearMonth
	if !zero.IsZero() {
		t.Fatal("expected zero value to report IsZero")
	}
	if Present.IsZero() {
		t.Fatal("Present is not zero")
	}
}

func TestYearMonthYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Start YearMonth  `yaml:"start"`
		End   YearMonth  `yaml:"end"`
		Until *YearMonth `yaml:"until"`
	}
	if err := yaml.Unmarshal([]byte("start: \"2023-04\"\nend: Present\n"), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Start != MustYearMonth(2023, time.April) {
		t.Fatalf("start = %v", doc.Start)
	}
	if !doc.End.IsPresent() {
		t.Fatalf("end = %v, want Present", doc.End)
	}
	if doc.Until != nil {
		t.Fatalf("until = %v, want nil", doc.Until)
	}

	if err := yaml.Unmarshal([]byte("start: \"2023-14\"\n"), &doc); err == nil {
		t.Fatal("expected invalid month error")
	}

	out, err := yaml.Marshal(map[string]YearMonth{"start": MustYearMonth(2020, time.July)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]YearMonth
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal marshalled: %v", err)
	}
	if back["start"] != MustYearMonth(2020, time.July) {
		t.Fatalf("round trip = %v", back["start"])
	}
}
