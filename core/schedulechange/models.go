package schedulechange

import (
	"github.com/go-playground/validator/v10"

	"github.com/studyline/studyline/core"
)

// Change is a one-off override of a recurring schedule slot on a concrete
// date. The slot id (ScheduleID) is the natural key for edits and deletes.
type Change struct {
	ScheduleID   int64          `json:"schedule_id" db:"schedule_id" validate:"required"`
	GroupID      int64          `json:"group_id" db:"group_id" validate:"required"`
	NewSubjectID int64          `json:"new_subject_id" db:"new_subject_id" validate:"required"`
	NewTeacherID int64          `json:"new_teacher_id" db:"new_teacher_id" validate:"required"`
	Date         core.Date      `json:"date" db:"date"`
	NewStartTime core.TimeOfDay `json:"new_start_time" db:"new_start_time"`
	NewEndTime   core.TimeOfDay `json:"new_end_time" db:"new_end_time"`
	Cabinet      string         `json:"cabinet" db:"cabinet"`
	IsCanceled   bool           `json:"is_canceled" db:"is_canceled"`
}

func (c *Change) Validate(validate *validator.Validate) error {
	return validate.Struct(c)
}

