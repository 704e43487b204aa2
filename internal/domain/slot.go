package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkPeriod represents a single weekday's working window in the
// facility's local civil time. Hours are whole numbers 0-23; the upstream
// service does not validate them, so degenerate ranges are possible and
// simply produce no slots.
type WorkPeriod struct {
	StartHour      int
	EndHour        int
	LunchStartHour int
	LunchEndHour   int
}

// BusyInterval marks an already taken reservation. Instants are absolute
// and may be irregular with respect to the slot grid.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is one fixed-duration unit of a working day, UTC-normalized.
type Slot struct {
	Start time.Time
	End   time.Time
	Busy  bool
	Empty bool
}

// IsBookable returns true if the slot is a real working slot, not a
// padding placeholder.
func (s *Slot) IsBookable() bool {
	return !s.Empty
}

// Overlaps reports half-open interval overlap with [start, end).
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End.After(start)
}

// Facility identifies the clinic whose schedule is being served.
type Facility struct {
	ID      uuid.UUID
	Name    string
	Address string
}

// DailySlots is one business day of the weekly grid. A nil WorkPeriod
// means the facility is closed that day; closed days carry no slots and
// are never padded.
type DailySlots struct {
	Date       time.Time
	DayOfWeek  string
	WorkPeriod *WorkPeriod
	Slots      []Slot
}

// IsClosed returns true if the facility does not open on this day.
func (d *DailySlots) IsClosed() bool {
	return d.WorkPeriod == nil
}

// HasSlots returns true if the day carries at least one slot.
func (d *DailySlots) HasSlots() bool {
	return len(d.Slots) > 0
}

// WeeklySlots is the dense weekly availability grid: exactly the five
// business days of one week, Monday first.
type WeeklySlots struct {
	Facility            Facility
	SlotDurationMinutes int
	Days                [BusinessDaysPerWeek]DailySlots
}

// SlotDuration returns the slot length as a time.Duration.
func (w *WeeklySlots) SlotDuration() time.Duration {
	return time.Duration(w.SlotDurationMinutes) * time.Minute
}

// FindSlotByStart locates the bookable slot starting exactly at the given
// instant. Padding slots never match: they do not correspond to any real
// upstream working period.
func (w *WeeklySlots) FindSlotByStart(start time.Time) *Slot {
	for d := range w.Days {
		for i := range w.Days[d].Slots {
			slot := &w.Days[d].Slots[i]
			if slot.IsBookable() && slot.Start.Equal(start) {
				return slot
			}
		}
	}
	return nil
}
