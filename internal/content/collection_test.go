package content

import "testing"

type item struct{ key, label string }

func TestLocalizedGetFallsBack(t *testing.T) {
	t.Parallel()

	c, err := NewLocalized("en", map[string][]item{
		"en":    {{key: "a", label: "A"}},
		"zh-CN": {{key: "a", label: "甲"}},
	})
	if err != nil {
		t.Fatalf("NewLocalized: %v", err)
	}
	if got := c.Get("zh-CN")[0].label; got != "甲" {
		t.Fatalf("Get(zh-CN) = %q, want %q", got, "甲")
	}
	if got := c.Get("de")[0].label; got != "A" {
		t.Fatalf("Get(de) = %q, want default %q", got, "A")
	}
	if _, ok := c.Exact("de"); ok {
		t.Fatal("Exact(de) should miss")
	}
	if got, ok := c.Exact("en"); !ok || len(got) != 1 {
		t.Fatalf("Exact(en) = (%v, %t)", got, ok)
	}
	locales := c.Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "zh-CN" {
		t.Fatalf("Locales() = %v", locales)
	}
	if c.DefaultLocale() != "en" {
		t.Fatalf("DefaultLocale() = %q", c.DefaultLocale())
	}
}

func TestNewLocalizedRequiresDefault(t *testing.T) {
	t.Parallel()

	if _, err := NewLocalized("en", map[string]string{"zh-CN": "x"}); err == nil {
		t.Fatal("expected error when default locale missing")
	}
}

func TestNewLocalizedCopiesEntries(t *testing.T) {
	t.Parallel()

	entries := map[string]string{"en": "x"}
	c, err := NewLocalized("en", entries)
	if err != nil {
		t.Fatalf("NewLocalized: %v", err)
	}
	entries["en"] = "changed"
	if got := c.Get("en"); got != "x" {
		t.Fatalf("Get(en) = %q, want %q", got, "x")
	}
}

func TestCheckKeys(t *testing.T) {
	t.Parallel()

	key := func(i item) string { return i.key }
	tests := []struct {
		name    string
		entries map[string][]item
		wantErr bool
	}{
		{
			name:    "aligned",
			entries: map[string][]item{"en": {{key: "a"}, {key: "b"}}, "zh-CN": {{key: "b"}, {key: "a"}}},
		},
		{
			name:    "missing in translation",
			entries: map[string][]item{"en": {{key: "a"}, {key: "b"}}, "zh-CN": {{key: "a"}}},
			wantErr: true,
		},
		{
			name:    "extra in translation",
			entries: map[string][]item{"en": {{key: "a"}}, "zh-CN": {{key: "a"}, {key: "c"}}},
			wantErr: true,
		},
		{
			name:    "duplicate",
			entries: map[string][]item{"en": {{key: "a"}, {key: "a"}}},
			wantErr: true,
		},
		{
			name:    "empty key",
			entries: map[string][]item{"en": {{key: " "}}},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewLocalized("en", tc.entries)
			if err != nil {
				t.Fatalf("NewLocalized: %v", err)
			}
			err = CheckKeys(c, key)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("CheckKeys: %v", err)
			}
		})
	}
}
