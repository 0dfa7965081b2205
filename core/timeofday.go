package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const timeOfDayLayout = "15:04:05"

// TimeOfDay is a wall-clock time with no date component.
// It maps to a Postgres TIME column and serializes as "15:04:05";
// "15:04" is accepted on input.
type TimeOfDay struct{ time.Time }

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	return tod, tod.parse(s)
}

func (t *TimeOfDay) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "15:04"
		s += ":00"
	}
	tt, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

func (t *TimeOfDay) Scan(v interface{}) error {
	switch x := v.(type) {
	case time.Time:
		*t = TimeOfDayOf(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("timeofday: unsupported Scan type %T", v)
	}
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Format(timeOfDayLayout), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(timeOfDayLayout))
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}

func (t TimeOfDay) String() string { return t.Format(timeOfDayLayout) }
