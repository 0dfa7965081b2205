package schedule_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/schedule"
	"github.com/studyline/studyline/storage/database/inmemdb"
)

func newSvc() (*schedule.Service, schedule.Repository) {
	repo := inmemdb.NewScheduleRepository(inmemdb.NewDB())
	return schedule.NewService(repo), repo
}

func tod(t *testing.T, s string) core.TimeOfDay {
	v, err := core.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) failed: %v", s, err)
	}
	return v
}

func addSlot(t *testing.T, repo schedule.Repository, groupID int64, weekday, pairNumber int) {
	err := repo.CreateSlot(context.Background(), schedule.Slot{
		PairNumber: pairNumber,
		GroupID:    groupID,
		SubjectID:  1,
		TeacherID:  1,
		Weekday:    weekday,
		StartTime:  tod(t, "08:30"),
		EndTime:    tod(t, "09:50"),
	})
	if err != nil {
		t.Fatalf("CreateSlot() failed: %v", err)
	}
}

func Test_Service_Week_ordering(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	// insertion order deliberately scrambled
	addSlot(t, repo, 7, 3, 2)
	addSlot(t, repo, 7, 1, 2)
	addSlot(t, repo, 7, 3, 1)
	addSlot(t, repo, 7, 1, 1)
	addSlot(t, repo, 7, 5, 1)
	addSlot(t, repo, 9, 2, 1) // other group

	week, err := svc.Week(ctx, 7)
	assert.NoError(t, err)

	weekdays := make([]int, 0, len(week))
	for _, day := range week {
		weekdays = append(weekdays, day.Weekday)
		assert.Equal(t, int64(7), day.GroupID)
		for i := 1; i < len(day.Pairs); i++ {
			assert.LessOrEqual(t, day.Pairs[i-1].PairNumber, day.Pairs[i].PairNumber)
		}
	}
	// sparse: weekdays 2, 4, 6, 7 absent; ascending since rows come back ordered
	assert.Equal(t, []int{1, 3, 5}, weekdays)
	assert.Len(t, week[0].Pairs, 2)
	assert.Len(t, week[1].Pairs, 2)
	assert.Len(t, week[2].Pairs, 1)
}

func Test_Service_Week_empty(t *testing.T) {
	svc, _ := newSvc()
	week, err := svc.Week(context.Background(), 404)
	assert.NoError(t, err)
	assert.Empty(t, week)
}

func Test_Service_AddPairs(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	week, err := svc.AddPairs(ctx, schedule.NewDay{
		GroupID: 7,
		Weekday: 2,
		Pairs: []schedule.NewPair{
			{PairNumber: 1, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "08:30"), EndTime: tod(t, "09:50")},
			{PairNumber: 2, TeacherID: 2, SubjectID: 2, StartTime: tod(t, "10:00"), EndTime: tod(t, "11:20"), Cabinet: "214"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, week, 1)
	assert.Equal(t, 2, week[0].Weekday)
	assert.Len(t, week[0].Pairs, 2)
	assert.NotZero(t, week[0].Pairs[0].ID)
	assert.Equal(t, "214", week[0].Pairs[1].Cabinet)

	// duplicates are not rejected
	week, err = svc.AddPairs(ctx, schedule.NewDay{
		GroupID: 7,
		Weekday: 2,
		Pairs: []schedule.NewPair{
			{PairNumber: 1, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "08:30"), EndTime: tod(t, "09:50")},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, week[0].Pairs, 3)
}

func Test_Service_EditDay_partialFailure(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	week, err := svc.AddPairs(ctx, schedule.NewDay{
		GroupID: 7,
		Weekday: 2,
		Pairs: []schedule.NewPair{
			{PairNumber: 1, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "08:30"), EndTime: tod(t, "09:50")},
			{PairNumber: 2, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "10:00"), EndTime: tod(t, "11:20")},
		},
	})
	assert.NoError(t, err)
	first, second := week[0].Pairs[0], week[0].Pairs[1]

	_, err = svc.EditDay(ctx, schedule.Day{
		GroupID: 7,
		Weekday: 2,
		Pairs: []schedule.Pair{
			{ID: first.ID, PairNumber: 1, TeacherID: 9, SubjectID: 9, StartTime: first.StartTime, EndTime: first.EndTime},
			{ID: 99999, PairNumber: 2, TeacherID: 9, SubjectID: 9, StartTime: second.StartTime, EndTime: second.EndTime},
			{ID: second.ID, PairNumber: 3, TeacherID: 9, SubjectID: 9, StartTime: second.StartTime, EndTime: second.EndTime},
		},
	})
	assert.Equal(t, schedule.ErrNotFound, errors.Cause(err))

	// first update stuck, third never ran
	slots, err := repo.QuerySlotsByGroup(ctx, 7)
	assert.NoError(t, err)
	for _, s := range slots {
		switch s.ID {
		case first.ID:
			assert.Equal(t, int64(9), s.TeacherID)
		case second.ID:
			assert.Equal(t, int64(1), s.TeacherID)
		}
	}
}

func Test_Service_EditDay_movesWeekday(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	week, err := svc.AddPairs(ctx, schedule.NewDay{
		GroupID: 7,
		Weekday: 2,
		Pairs: []schedule.NewPair{
			{PairNumber: 1, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "08:30"), EndTime: tod(t, "09:50")},
		},
	})
	assert.NoError(t, err)
	pair := week[0].Pairs[0]

	week, err = svc.EditDay(ctx, schedule.Day{
		GroupID: 7,
		Weekday: 4,
		Pairs:   []schedule.Pair{{ID: pair.ID, PairNumber: 1, TeacherID: 1, SubjectID: 1, StartTime: pair.StartTime, EndTime: pair.EndTime}},
	})
	assert.NoError(t, err)
	assert.Len(t, week, 1)
	assert.Equal(t, 4, week[0].Weekday)
}

func Test_Service_DeleteDayAndSlot(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	week, err := svc.AddPairs(ctx, schedule.NewDay{
		GroupID: 7,
		Weekday: 2,
		Pairs: []schedule.NewPair{
			{PairNumber: 1, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "08:30"), EndTime: tod(t, "09:50")},
			{PairNumber: 2, TeacherID: 1, SubjectID: 1, StartTime: tod(t, "10:00"), EndTime: tod(t, "11:20")},
		},
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteSlot(ctx, week[0].Pairs[0].ID))
	assert.Equal(t, schedule.ErrNotFound, errors.Cause(svc.DeleteSlot(ctx, week[0].Pairs[0].ID)))

	assert.NoError(t, svc.DeleteDay(ctx, 7, 2))
	assert.Equal(t, schedule.ErrNotFound, errors.Cause(svc.DeleteDay(ctx, 7, 2)))

	week, err = svc.Week(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, week)
}
