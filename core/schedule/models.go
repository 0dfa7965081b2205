package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/studyline/studyline/core"
)

// Slot is one stored timetable row: a weekly-repeating pair for a group.
// (group_id, weekday, pair_number) is deliberately not unique: callers may
// create overlapping slots and no time-conflict validation is performed.
type Slot struct {
	ID         int64          `json:"id" db:"id"`
	PairNumber int            `json:"pair_number" db:"pair_number"`
	GroupID    int64          `json:"group_id" db:"group_id"`
	SubjectID  int64          `json:"subject_id" db:"subject_id"`
	TeacherID  int64          `json:"teacher_id" db:"teacher_id"`
	Weekday    int            `json:"weekday" db:"weekday"`
	StartTime  core.TimeOfDay `json:"start_time" db:"start_time"`
	EndTime    core.TimeOfDay `json:"end_time" db:"end_time"`
	Cabinet    string         `json:"cabinet" db:"cabinet"`
}

// Pair is a slot as it appears inside a Day (no group/weekday repetition).
type Pair struct {
	ID         int64          `json:"id" validate:"required"`
	PairNumber int            `json:"pair_number" validate:"required,min=1"`
	TeacherID  int64          `json:"teacher_id" validate:"required"`
	SubjectID  int64          `json:"subject_id" validate:"required"`
	StartTime  core.TimeOfDay `json:"start_time"`
	EndTime    core.TimeOfDay `json:"end_time"`
	Cabinet    string         `json:"cabinet"`
}

// Day is one weekday of a group's weekly schedule. It doubles as the
// bulk-edit payload: every pair implicitly shares the day's weekday.
type Day struct {
	GroupID int64  `json:"group_id" validate:"required"`
	Weekday int    `json:"weekday" validate:"weekday"`
	Pairs   []Pair `json:"pairs" validate:"required,min=1,dive"`
}

func (d *Day) Validate(validate *validator.Validate) error {
	return validate.Struct(d)
}

// NewPair is a pair to be inserted; the id is assigned by the store.
type NewPair struct {
	PairNumber int            `json:"pair_number" validate:"required,min=1"`
	TeacherID  int64          `json:"teacher_id" validate:"required"`
	SubjectID  int64          `json:"subject_id" validate:"required"`
	StartTime  core.TimeOfDay `json:"start_time"`
	EndTime    core.TimeOfDay `json:"end_time"`
	Cabinet    string         `json:"cabinet"`
}

// NewDay is the bulk-add payload: pairs to insert for one group+weekday.
type NewDay struct {
	GroupID int64     `json:"group_id" validate:"required"`
	Weekday int       `json:"weekday" validate:"weekday"`
	Pairs   []NewPair `json:"pairs" validate:"required,min=1,dive"`
}

func (nd *NewDay) Validate(validate *validator.Validate) error {
	return validate.Struct(nd)
}
