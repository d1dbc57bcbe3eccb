package services

import (
	"reflect"
	"testing"
	"time"

	"reservahub-backend/models"
)

// 2025-06-02 is a Monday, 2025-06-08 a Sunday.
var (
	monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
)

func TestDayIndex(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{monday, 0},
		{monday.AddDate(0, 0, 1), 1},
		{monday.AddDate(0, 0, 5), 5},
		{sunday, 6},
	}
	for _, tc := range cases {
		if got := DayIndex(tc.date); got != tc.want {
			t.Errorf("DayIndex(%s) = %d, want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestExpandSlots(t *testing.T) {
	schedule := models.Schedule{
		DayOfWeek:    0,
		StartTime:    "09:00",
		EndTime:      "12:00",
		Price:        5000,
		SlotDuration: 60,
	}

	t.Run("day mismatch yields empty sequence", func(t *testing.T) {
		if slots := ExpandSlots(schedule, sunday); len(slots) != 0 {
			t.Fatalf("expected no slots, got %d", len(slots))
		}
	})

	t.Run("exact window yields one slot per duration", func(t *testing.T) {
		slots := ExpandSlots(schedule, monday)
		want := []string{"09:00", "10:00", "11:00"}
		if len(slots) != len(want) {
			t.Fatalf("expected %d slots, got %d", len(want), len(slots))
		}
		for i, slot := range slots {
			if slot.StartTime != want[i] {
				t.Errorf("slot %d starts at %s, want %s", i, slot.StartTime, want[i])
			}
			if slot.Price != 5000 {
				t.Errorf("slot %d priced %.2f, want 5000", i, slot.Price)
			}
			if !slot.Available {
				t.Errorf("slot %d should start out available", i)
			}
		}
	})

	t.Run("window not divisible by duration yields final short slot", func(t *testing.T) {
		short := schedule
		short.EndTime = "10:30"
		slots := ExpandSlots(short, monday)
		want := []string{"09:00", "10:00"}
		if len(slots) != len(want) {
			t.Fatalf("expected %d slots, got %d", len(want), len(slots))
		}
		for i, slot := range slots {
			if slot.StartTime != want[i] {
				t.Errorf("slot %d starts at %s, want %s", i, slot.StartTime, want[i])
			}
		}
	})

	t.Run("pure function yields identical results on repeat calls", func(t *testing.T) {
		first := ExpandSlots(schedule, monday)
		second := ExpandSlots(schedule, monday)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("repeat expansion differs: %v vs %v", first, second)
		}
	})

	t.Run("malformed times yield empty sequence", func(t *testing.T) {
		broken := schedule
		broken.StartTime = "morning"
		if slots := ExpandSlots(broken, monday); len(slots) != 0 {
			t.Fatalf("expected no slots, got %d", len(slots))
		}
	})
}

func TestMarkAvailability(t *testing.T) {
	slots := []Slot{
		{StartTime: "09:00", Price: 5000, Available: true},
		{StartTime: "10:00", Price: 5000, Available: true},
		{StartTime: "11:00", Price: 5000, Available: true},
	}

	t.Run("exact start match flags slot unavailable", func(t *testing.T) {
		marked := MarkAvailability(slots, []string{"10:00"})
		if marked[0].Available != true || marked[1].Available != false || marked[2].Available != true {
			t.Fatalf("unexpected availability: %+v", marked)
		}
	})

	t.Run("non-matching occupied time leaves slots untouched", func(t *testing.T) {
		// an occupied interval recorded at 10:15 does not affect the 10:00 slot
		marked := MarkAvailability(slots, []string{"10:15"})
		for i, slot := range marked {
			if !slot.Available {
				t.Errorf("slot %d flagged unavailable by non-matching start time", i)
			}
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		MarkAvailability(slots, []string{"09:00", "10:00", "11:00"})
		for i, slot := range slots {
			if !slot.Available {
				t.Errorf("input slot %d was mutated", i)
			}
		}
	})
}

func TestBuildDaySlots(t *testing.T) {
	morning := models.Schedule{
		DayOfWeek: 0, StartTime: "09:00", EndTime: "11:00", Price: 4000, SlotDuration: 60,
	}
	evening := models.Schedule{
		DayOfWeek: 0, StartTime: "18:00", EndTime: "20:00", Price: 6000, SlotDuration: 60,
	}

	t.Run("multiple schedules concatenate ordered by start time", func(t *testing.T) {
		slots := BuildDaySlots([]models.Schedule{evening, morning}, monday, nil)
		want := []string{"09:00", "10:00", "18:00", "19:00"}
		if len(slots) != len(want) {
			t.Fatalf("expected %d slots, got %d", len(want), len(slots))
		}
		for i, slot := range slots {
			if slot.StartTime != want[i] {
				t.Errorf("slot %d starts at %s, want %s", i, slot.StartTime, want[i])
			}
		}
		if slots[0].Price != 4000 || slots[2].Price != 6000 {
			t.Errorf("price tiers lost in concatenation: %+v", slots)
		}
	})

	t.Run("occupied starts are marked across schedules", func(t *testing.T) {
		slots := BuildDaySlots([]models.Schedule{morning, evening}, monday, []string{"10:00", "19:00"})
		for _, slot := range slots {
			wantAvailable := slot.StartTime != "10:00" && slot.StartTime != "19:00"
			if slot.Available != wantAvailable {
				t.Errorf("slot %s availability = %v, want %v", slot.StartTime, slot.Available, wantAvailable)
			}
		}
	})

	t.Run("no schedule for the day yields empty sequence", func(t *testing.T) {
		if slots := BuildDaySlots([]models.Schedule{morning, evening}, sunday, nil); len(slots) != 0 {
			t.Fatalf("expected no slots, got %d", len(slots))
		}
	})
}

func TestSlotAligned(t *testing.T) {
	schedule := models.Schedule{
		DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00", Price: 5000, SlotDuration: 60,
	}

	tests := []struct {
		name  string
		clock string
		want  bool
	}{
		{"window start", "09:00", true},
		{"later grid point", "11:00", true},
		{"off-grid inside window", "09:17", false},
		{"before window start", "08:00", false},
		{"malformed clock", "morning", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotAligned(schedule, tt.clock); got != tt.want {
				t.Errorf("SlotAligned(%q) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}

	t.Run("half-hour grid from offset start", func(t *testing.T) {
		s := models.Schedule{DayOfWeek: 0, StartTime: "09:30", EndTime: "12:00", SlotDuration: 30}
		if !SlotAligned(s, "10:30") {
			t.Error("10:30 should align with a 30-minute grid starting 09:30")
		}
		if SlotAligned(s, "10:15") {
			t.Error("10:15 should not align with a 30-minute grid starting 09:30")
		}
	})

	t.Run("zero duration never aligns", func(t *testing.T) {
		s := models.Schedule{StartTime: "09:00", EndTime: "12:00", SlotDuration: 0}
		if SlotAligned(s, "09:00") {
			t.Error("schedule with zero duration should align nothing")
		}
	})
}
