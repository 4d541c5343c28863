package extract

import (
	"fmt"
	"time"

	"datehound/oops"
)

var ErrNotCalendarDate = oops.Sentinel("fields do not form a calendar date")

// DateFields holds the extracted date parts. Parts the input didn't
// resolve keep their IsSet flag false; a part that is set once is never
// overwritten within one parse.
type DateFields struct {
	Year       int
	YearIsSet  bool
	Month      int
	MonthIsSet bool
	Day        int
	DayIsSet   bool
}

func (f DateFields) IsComplete() bool {
	return f.YearIsSet && f.MonthIsSet && f.DayIsSet
}

// StructuredMap returns {"year": int|nil, "month": int|nil, "day": int|nil}.
func (f DateFields) StructuredMap() map[string]any {
	fields := map[string]any{"year": nil, "month": nil, "day": nil}
	if f.YearIsSet {
		fields["year"] = f.Year
	}
	if f.MonthIsSet {
		fields["month"] = f.Month
	}
	if f.DayIsSet {
		fields["day"] = f.Day
	}
	return fields
}

func (f *DateFields) setYear(year int) {
	if !f.YearIsSet {
		f.Year = year
		f.YearIsSet = true
	}
}

func (f *DateFields) setMonth(month int) {
	if !f.MonthIsSet {
		f.Month = month
		f.MonthIsSet = true
	}
}

func (f *DateFields) setDay(day int) {
	if !f.DayIsSet {
		f.Day = day
		f.DayIsSet = true
	}
}

// CalendarDate is a resolved year-month-day triple.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// CalendarDate converts the fields to a calendar date. This is the only
// place real calendar validation happens: incomplete fields and complete
// but impossible triples (day 31 in a 30-day month) fail with
// ErrNotCalendarDate.
func (f DateFields) CalendarDate() (CalendarDate, error) {
	if !f.IsComplete() {
		return CalendarDate{}, oops.Wrapf(ErrNotCalendarDate, "incomplete fields %v", f.StructuredMap())
	}
	if f.Month < 1 || f.Month > 12 {
		return CalendarDate{}, oops.Wrapf(ErrNotCalendarDate, "month %d", f.Month)
	}
	maxDay := daysInMonth[f.Month]
	if time.Month(f.Month) == time.February && isLeap(f.Year) {
		maxDay = 29
	}
	if f.Day < 1 || f.Day > maxDay {
		return CalendarDate{}, oops.Wrapf(ErrNotCalendarDate, "day %d of month %d", f.Day, f.Month)
	}
	return CalendarDate{
		Year:  f.Year,
		Month: time.Month(f.Month),
		Day:   f.Day,
	}, nil
}
