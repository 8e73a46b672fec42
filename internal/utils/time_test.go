package utils

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseTimeToMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-01-10", "2024-01-10", 0},
		{"2024-01-10", "2024-01-11", 1},
		{"2024-01-11", "2024-01-10", -1},
		{"2024-01-31", "2024-02-01", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-12-31", "2024-01-01", 1},
	}

	for _, tc := range cases {
		got, err := DaysBetween(tc.a, tc.b)
		if err != nil {
			t.Errorf("DaysBetween(%q, %q): %v", tc.a, tc.b, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}

	if _, err := DaysBetween("not-a-date", "2024-01-10"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-01-31", 1)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if got != "2024-02-01" {
		t.Errorf("AddDays = %s, want 2024-02-01", got)
	}

	got, err = AddDays("2024-01-01", -1)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if got != "2023-12-31" {
		t.Errorf("AddDays = %s, want 2023-12-31", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-10", "2024-01-08"}, // Wednesday -> Monday
		{"2024-01-08", "2024-01-08"}, // Monday stays
		{"2024-01-14", "2024-01-08"}, // Sunday belongs to the week before
	}

	for _, tc := range cases {
		got, err := StartOfWeek(tc.in)
		if err != nil {
			t.Errorf("StartOfWeek(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("StartOfWeek(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
