package domain

// Week boundaries accepted from callers
const (
	MinWeekNumber = 1
	MaxWeekNumber = 53
)

// BusinessDaysPerWeek is the number of days the upstream service
// describes; weekends are never supplied.
const BusinessDaysPerWeek = 5

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	MondayKeyFormat = "20060102"   // upstream week key, yyyyMMdd
)

// businessDayNames is indexed by the offset from the week's Monday.
var businessDayNames = [BusinessDaysPerWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
}

// BusinessDayName returns the weekday name for the given offset from
// Monday (0-4). Out-of-range offsets return an empty string.
func BusinessDayName(offset int) string {
	if offset < 0 || offset >= BusinessDaysPerWeek {
		return ""
	}
	return businessDayNames[offset]
}
