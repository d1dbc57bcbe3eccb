// services/availability.go
package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"reservahub-backend/models"
)

// Slot is one bookable time window on a concrete date, derived from a
// schedule. Slots are computed on demand and never persisted.
type Slot struct {
	StartTime string  `json:"startTime"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// DayIndex buckets a date into the schedule convention 0=Monday .. 6=Sunday.
// This remap must be used everywhere a day-of-week is derived from a date,
// otherwise generated slots silently misalign with the stored schedules.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ExpandSlots generates the bookable slots a schedule yields on the given
// date, ordered by start time. If the date does not fall on the schedule's
// day of week (or a stored time is malformed) it returns an empty sequence,
// not an error.
//
// The loop bound is start < end, matching the window end exclusively: a
// window whose length is not an exact multiple of the slot duration yields a
// final shorter slot, still offered at the full slot price. Known quirk,
// kept on purpose until product decides otherwise.
func ExpandSlots(schedule models.Schedule, date time.Time) []Slot {
	if schedule.DayOfWeek != DayIndex(date) {
		return nil
	}
	if schedule.SlotDuration <= 0 {
		return nil
	}

	start, err := parseClock(schedule.StartTime)
	if err != nil {
		return nil
	}
	end, err := parseClock(schedule.EndTime)
	if err != nil {
		return nil
	}

	var slots []Slot
	for cur := start; cur < end; cur += schedule.SlotDuration {
		slots = append(slots, Slot{
			StartTime: formatClock(cur),
			Price:     schedule.Price,
			Available: true,
		})
	}
	return slots
}

// MarkAvailability returns a copy of slots with the availability flag
// cleared for every slot whose start time exactly matches an occupied start
// time. Matching is string equality, not interval overlap; that is enough
// while all slots of a schedule share one canonical duration.
func MarkAvailability(slots []Slot, occupiedStartTimes []string) []Slot {
	occupied := make(map[string]bool, len(occupiedStartTimes))
	for _, t := range occupiedStartTimes {
		occupied[t] = true
	}

	marked := make([]Slot, len(slots))
	for i, slot := range slots {
		slot.Available = !occupied[slot.StartTime]
		marked[i] = slot
	}
	return marked
}

// BuildDaySlots expands every schedule for the date, concatenates the
// results, orders them by start time and applies the occupancy marks.
// Overlapping schedules are not deduplicated or validated against each
// other; each contributes its own slots.
func BuildDaySlots(schedules []models.Schedule, date time.Time, occupiedStartTimes []string) []Slot {
	var slots []Slot
	for _, schedule := range schedules {
		slots = append(slots, ExpandSlots(schedule, date)...)
	}

	// Zero-padded HH:MM sorts chronologically
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})

	return MarkAvailability(slots, occupiedStartTimes)
}

// SlotAligned reports whether a clock value lands on the grid the schedule
// generates, i.e. a whole number of slot durations after the window start.
// Off-grid starts would straddle two generated slots and never match an
// occupancy mark.
func SlotAligned(schedule models.Schedule, clock string) bool {
	if schedule.SlotDuration <= 0 {
		return false
	}
	start, err := parseClock(schedule.StartTime)
	if err != nil {
		return false
	}
	at, err := parseClock(clock)
	if err != nil {
		return false
	}
	if at < start {
		return false
	}
	return (at-start)%schedule.SlotDuration == 0
}

// parseClock converts "HH:MM" to minutes since midnight
func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}
	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
