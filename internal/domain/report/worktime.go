// Package report holds the pure calculation core of the back office: clock
// time to wage conversion per cast per day, and the daily/monthly roll-up of
// cast records and store cash flow into financial KPIs. Everything here is
// side-effect free and does no I/O.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// SplitTime splits an HH:MM string into hours and minutes. Malformed or
// missing parts read as 0 rather than erroring; report rows with untouched
// time inputs come through as empty strings.
func SplitTime(t string) (hours, minutes int) {
	h, m, _ := strings.Cut(t, ":")
	hours, _ = strconv.Atoi(h)
	minutes, _ = strconv.Atoi(m)
	return hours, minutes
}

// CombineTime formats hours and minutes as a zero-padded HH:MM string.
func CombineTime(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// TimeToMinutes converts an HH:MM string to total minutes.
func TimeToMinutes(t string) int {
	hours, minutes := SplitTime(t)
	return hours*60 + minutes
}

// MinutesToTime formats a minute count as [sign]HH:MM. Hours are not wrapped
// at 24, so durations over a day keep growing (26:30 etc.).
func MinutesToTime(total int) string {
	abs := total
	sign := ""
	if total < 0 {
		abs = -total
		sign = "-"
	}
	return sign + CombineTime(abs/60, abs%60)
}

// WorkHours computes the payable duration between two wall-clock times plus
// an overtime adjustment in minutes (which may be negative). An end time
// earlier than the start time means the shift crossed midnight, so a full
// day is added before the subtraction.
func WorkHours(startTime, endTime string, overtime int) string {
	start := TimeToMinutes(startTime)
	end := TimeToMinutes(endTime)
	if end < start {
		end += minutesPerDay
	}
	return MinutesToTime(end - start + overtime)
}

// TimeReward converts a work duration and an hourly rate into a wage amount,
// rounded to the nearest yen.
func TimeReward(workHours string, hourlyRate int64) int64 {
	minutes := TimeToMinutes(workHours)
	return int64(math.Round(float64(minutes) / 60 * float64(hourlyRate)))
}
