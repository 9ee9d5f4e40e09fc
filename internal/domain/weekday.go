package domain

import (
	"strings"
)

// Weekday is a slot of the recurring weekly route template. It carries no
// calendar date.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the template slots in route order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayAliases = map[string]Weekday{
	"monday": Monday, "mon": Monday, "lunes": Monday, "lu": Monday,
	"tuesday": Tuesday, "tue": Tuesday, "martes": Tuesday, "ma": Tuesday,
	"wednesday": Wednesday, "wed": Wednesday, "miercoles": Wednesday, "miércoles": Wednesday, "mi": Wednesday,
	"thursday": Thursday, "thu": Thursday, "jueves": Thursday, "ju": Thursday,
	"friday": Friday, "fri": Friday, "viernes": Friday, "vi": Friday,
	"saturday": Saturday, "sat": Saturday, "sabado": Saturday, "sábado": Saturday, "sa": Saturday,
	"sunday": Sunday, "sun": Sunday, "domingo": Sunday, "do": Sunday,
}

// ParseWeekday resolves English or Spanish day names and their short forms.
// Unknown names are reported as NOT_FOUND, matching unknown vendors and clients.
func ParseWeekday(s string) (Weekday, error) {
	if w, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return w, nil
	}
	return "", NotFound("weekday", "unknown weekday %q", s)
}

// Index returns the 0-based slot of w (monday = 0), or -1 for invalid values.
func (w Weekday) Index() int {
	for i, d := range Weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

func (w Weekday) Valid() bool {
	return w.Index() >= 0
}

func (w Weekday) String() string {
	return string(w)
}

// DaySet is a set of weekday flags indexed by Weekday.Index.
type DaySet [7]bool

// NewDaySet builds a set from the given weekdays, ignoring invalid values.
func NewDaySet(days ...Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		if i := d.Index(); i >= 0 {
			s[i] = true
		}
	}
	return s
}

func (s DaySet) Has(w Weekday) bool {
	i := w.Index()
	return i >= 0 && s[i]
}

// Union ORs the flags of other into a copy of s. No flag set in either
// operand is ever cleared.
func (s DaySet) Union(other DaySet) DaySet {
	for i := range s {
		s[i] = s[i] || other[i]
	}
	return s
}

// Days returns the set members in route order.
func (s DaySet) Days() []Weekday {
	var out []Weekday
	for i, set := range s {
		if set {
			out = append(out, Weekdays[i])
		}
	}
	return out
}

func (s DaySet) Empty() bool {
	return s == DaySet{}
}
