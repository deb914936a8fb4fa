package options

import (
	"testing"
	"time"
)

func TestDateOptions(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"2026-5-30":  "2026-05-30",
		"2026-05-30": "2026-05-30",
		"12/24":      "2026-12-24",
		"10/15":      "2026-10-15",
		"3/1":        "2027-03-01",
	}
	for in, want := range tests {
		o := DateOptions{Value: in}
		got, err := o.get(now)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if s := got.Format(layoutStored); s != want {
			t.Errorf("%q = %s, want %s", in, s, want)
		}
	}

	if _, err := (&DateOptions{Value: "tomorrow"}).get(now); err == nil {
		t.Errorf("expected an error for an unknown format")
	}
	if got, err := (&DateOptions{}).Get(); err != nil || got != "" {
		t.Errorf("empty value = %q, %v", got, err)
	}
}

func TestParseBudget(t *testing.T) {
	if b, err := ParseBudget(""); b != nil || err != nil {
		t.Errorf("empty budget = %v, %v", b, err)
	}
	if b, err := ParseBudget("450,50"); err != nil || *b != 450.5 {
		t.Errorf("ParseBudget = %v, %v", b, err)
	}
	if _, err := ParseBudget("lots"); err == nil {
		t.Errorf("expected an error")
	}
}
