package report

import "testing"

func TestWorkHours(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		overtime int
		expected string
	}{
		{"same day shift", "10:00", "18:00", 0, "08:00"},
		{"overnight shift", "22:00", "06:00", 0, "08:00"},
		{"overnight with overtime", "18:00", "02:00", 30, "08:30"},
		{"negative overtime", "10:00", "18:00", -30, "07:30"},
		{"zero length shift", "12:00", "12:00", 0, "00:00"},
		{"end one minute before start wraps a full day", "10:00", "09:59", 0, "23:59"},
		{"negative total duration", "12:00", "12:00", -90, "-01:30"},
		{"duration past 24 hours", "06:00", "05:00", 120, "25:00"},
		{"empty start reads as midnight", "", "18:00", 0, "18:00"},
		{"malformed end reads as midnight", "22:00", "xx:yy", 0, "02:00"},
		{"hour without minutes", "7", "9", 0, "02:00"},
	}
	for _, tc := range cases {
		if got := WorkHours(tc.start, tc.end, tc.overtime); got != tc.expected {
			t.Fatalf("%s: WorkHours(%q, %q, %d) = %q, expected %q",
				tc.name, tc.start, tc.end, tc.overtime, got, tc.expected)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{0, "00:00"},
		{510, "08:30"},
		{-90, "-01:30"},
		{1500, "25:00"},
		{59, "00:59"},
		{-1, "-00:01"},
	}
	for _, tc := range cases {
		if got := MinutesToTime(tc.minutes); got != tc.expected {
			t.Fatalf("MinutesToTime(%d) = %q, expected %q", tc.minutes, got, tc.expected)
		}
	}
}

func TestTimeToMinutes_LenientParsing(t *testing.T) {
	cases := []struct {
		in       string
		expected int
	}{
		{"18:30", 1110},
		{"00:00", 0},
		{"", 0},
		{"ab:cd", 0},
		{"7", 420},
		{"24:00", 1440}, // inputs are not range checked
	}
	for _, tc := range cases {
		if got := TimeToMinutes(tc.in); got != tc.expected {
			t.Fatalf("TimeToMinutes(%q) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestTimeReward(t *testing.T) {
	cases := []struct {
		workHours string
		rate      int64
		expected  int64
	}{
		{"08:30", 1500, 12750},
		{"08:00", 1500, 12000},
		{"00:00", 1500, 0},
		{"08:00", 0, 0},
		{"00:01", 100, 2},   // 1.67 yen rounds up
		{"00:30", 1, 1},     // half rounds away from zero
		{"08:01", 1500, 12025},
	}
	for _, tc := range cases {
		if got := TimeReward(tc.workHours, tc.rate); got != tc.expected {
			t.Fatalf("TimeReward(%q, %d) = %d, expected %d", tc.workHours, tc.rate, got, tc.expected)
		}
	}
}

func TestTimeReward_MonotonicInDuration(t *testing.T) {
	const rate = 1200
	prev := int64(-1)
	for minutes := 0; minutes <= 600; minutes++ {
		reward := TimeReward(MinutesToTime(minutes), rate)
		if reward < prev {
			t.Fatalf("TimeReward decreased at %d minutes: %d -> %d", minutes, prev, reward)
		}
		prev = reward
	}
}
