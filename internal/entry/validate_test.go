package entry_test

import (
	"testing"

	"tradehall/internal/entry"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"spawn", "spawn", false},
		{"  SPAWN  ", "spawn", false},
		{"Spa001", "spa001", false},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tc := range cases {
		got, err := entry.NormalizeName(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizeName(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeName(%q): unexpected error %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	if v, err := entry.ParseCoordinate(" -120 "); err != nil || v != -120 {
		t.Fatalf("ParseCoordinate(-120) = %d, %v", v, err)
	}
	if _, err := entry.ParseCoordinate("twelve"); err == nil {
		t.Fatal("expected error for non-numeric coordinate")
	}
	if _, err := entry.ParseCoordinate(""); err == nil {
		t.Fatal("expected error for empty coordinate")
	}
}

func TestParseLevel(t *testing.T) {
	if v, err := entry.ParseLevel("3", 5); err != nil || v != 3 {
		t.Fatalf("ParseLevel(3, 5) = %d, %v", v, err)
	}
	if _, err := entry.ParseLevel("0", 5); err == nil {
		t.Fatal("expected error below range")
	}
	if _, err := entry.ParseLevel("6", 5); err == nil {
		t.Fatal("expected error above range")
	}
	if _, err := entry.ParseLevel("two", 5); err == nil {
		t.Fatal("expected error for non-numeric level")
	}
	if v, err := entry.ParseLevel("5", 5); err != nil || v != 5 {
		t.Fatalf("ParseLevel(5, 5) = %d, %v", v, err)
	}
}

func TestParseCost(t *testing.T) {
	if v, err := entry.ParseCost("15"); err != nil || v != 15 {
		t.Fatalf("ParseCost(15) = %d, %v", v, err)
	}
	for _, raw := range []string{"0", "65", "-1", "emeralds"} {
		if _, err := entry.ParseCost(raw); err == nil {
			t.Errorf("ParseCost(%q): expected error", raw)
		}
	}
	if v, err := entry.ParseCost("64"); err != nil || v != 64 {
		t.Fatalf("ParseCost(64) = %d, %v", v, err)
	}
	if v, err := entry.ParseCost("1"); err != nil || v != 1 {
		t.Fatalf("ParseCost(1) = %d, %v", v, err)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[entry.Outcome]string{
		entry.OutcomeSuccess:   "success",
		entry.OutcomeCancelled: "cancelled",
		entry.OutcomeFull:      "full",
		entry.OutcomeError:     "error",
	}
	for outcome, want := range cases {
		if got := outcome.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", outcome, got, want)
		}
	}
}
