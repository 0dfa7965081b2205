package inmemdb

import (
	"sync"

	"github.com/studyline/studyline/core/group"
	"github.com/studyline/studyline/core/schedule"
	"github.com/studyline/studyline/core/schedulechange"
	"github.com/studyline/studyline/core/subject"
	"github.com/studyline/studyline/core/teacher"
	"github.com/studyline/studyline/core/teacherlink"
)

// DB is an in-memory stand-in for the SQL store, used by tests.
type DB struct {
	teacher        *teacherTable
	group          *groupTable
	subject        *subjectTable
	schedule       *scheduleTable
	scheduleChange *scheduleChangeTable
	teacherLink    *teacherLinkTable
}

func NewDB() *DB {
	return &DB{
		teacher:        &teacherTable{table: make(map[int64]*teacher.Teacher)},
		group:          &groupTable{table: make(map[int64]*group.Group)},
		subject:        &subjectTable{table: make(map[int64]*subject.Subject)},
		schedule:       &scheduleTable{table: make(map[int64]*schedule.Slot)},
		scheduleChange: &scheduleChangeTable{},
		teacherLink:    &teacherLinkTable{},
	}
}

type teacherTable struct {
	mutex   sync.RWMutex
	pkCount int64
	table   map[int64]*teacher.Teacher
}

type groupTable struct {
	mutex   sync.RWMutex
	pkCount int64
	table   map[int64]*group.Group
}

type subjectTable struct {
	mutex   sync.RWMutex
	pkCount int64
	table   map[int64]*subject.Subject
}

type scheduleTable struct {
	mutex   sync.RWMutex
	pkCount int64
	table   map[int64]*schedule.Slot
}

type scheduleChangeTable struct {
	mutex sync.RWMutex
	rows  []schedulechange.Change
}

type teacherLinkTable struct {
	mutex sync.RWMutex
	rows  []teacherlink.TeacherLink
}
