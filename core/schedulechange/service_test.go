package schedulechange_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/schedulechange"
	"github.com/studyline/studyline/storage/database/inmemdb"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) clock() time.Time { return c.now }

func (c *fakeClock) advanceDays(n int) { c.now = c.now.AddDate(0, 0, n) }

func newSvc() (*schedulechange.Service, schedulechange.Repository, *fakeClock) {
	clk := &fakeClock{now: time.Date(2021, 9, 1, 15, 0, 0, 0, time.UTC)}
	repo := inmemdb.NewScheduleChangeRepository(inmemdb.NewDB())
	return schedulechange.NewService(repo, clk.clock), repo, clk
}

func date(t *testing.T, s string) core.Date {
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func change(t *testing.T, scheduleID, groupID int64, day string) schedulechange.Change {
	return schedulechange.Change{
		ScheduleID:   scheduleID,
		GroupID:      groupID,
		NewSubjectID: 1,
		NewTeacherID: 1,
		Date:         date(t, day),
	}
}

func Test_Service_BulkAdd_echoesInput(t *testing.T) {
	svc, _, _ := newSvc()
	ctx := context.Background()

	changes := []schedulechange.Change{
		change(t, 42, 7, "2021-09-01"),
		change(t, 42, 7, "2021-09-01"), // duplicate, allowed
		change(t, 43, 7, "2021-09-02"),
	}
	out, err := svc.BulkAdd(ctx, changes)
	assert.NoError(t, err)
	assert.Equal(t, changes, out)

	listed, err := svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, listed, 3)
}

func Test_Service_BulkAdd_keepsEachChangesGroup(t *testing.T) {
	svc, _, _ := newSvc()
	ctx := context.Background()

	// one batch spanning two groups; no group is stamped over another
	changes := []schedulechange.Change{
		change(t, 42, 5, "2021-09-01"),
		change(t, 43, 9, "2021-09-01"),
	}
	out, err := svc.BulkAdd(ctx, changes)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out[0].GroupID)
	assert.Equal(t, int64(9), out[1].GroupID)

	listed, err := svc.List(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, int64(42), listed[0].ScheduleID)

	listed, err = svc.List(ctx, 9)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, int64(43), listed[0].ScheduleID)
}

func Test_Service_List_sameDayIdempotent(t *testing.T) {
	svc, _, _ := newSvc()
	ctx := context.Background()

	_, err := svc.BulkAdd(ctx, []schedulechange.Change{change(t, 42, 7, "2021-09-01")})
	assert.NoError(t, err)

	// a change dated today survives any number of reads that day
	for i := 0; i < 3; i++ {
		listed, err := svc.List(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, listed, 1)
	}
}

func Test_Service_List_evictsDayAfter(t *testing.T) {
	svc, repo, clk := newSvc()
	ctx := context.Background()

	_, err := svc.BulkAdd(ctx, []schedulechange.Change{
		change(t, 42, 7, "2021-09-01"),
		change(t, 43, 7, "2021-09-03"),
	})
	assert.NoError(t, err)

	clk.advanceDays(1)

	listed, err := svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, int64(43), listed[0].ScheduleID)

	// the expired row is gone from the store, not just filtered
	_, err = repo.GetChangeByScheduleID(ctx, 42)
	assert.Equal(t, schedulechange.ErrNotFound, errors.Cause(err))
}

func Test_Service_EvictExpired_idempotent(t *testing.T) {
	svc, _, _ := newSvc()
	ctx := context.Background()

	_, err := svc.BulkAdd(ctx, []schedulechange.Change{change(t, 42, 7, "2021-09-01")})
	assert.NoError(t, err)

	asOf := date(t, "2021-09-02")
	assert.NoError(t, svc.EvictExpired(ctx, 7, asOf))
	assert.NoError(t, svc.EvictExpired(ctx, 7, asOf))

	listed, err := svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, listed)
}

func Test_Service_Edit_byScheduleID(t *testing.T) {
	svc, repo, _ := newSvc()
	ctx := context.Background()

	_, err := svc.BulkAdd(ctx, []schedulechange.Change{change(t, 42, 7, "2021-09-01")})
	assert.NoError(t, err)

	edited := change(t, 42, 7, "2021-09-02")
	edited.Cabinet = "edited"
	out, err := svc.Edit(ctx, edited)
	assert.NoError(t, err)
	assert.Equal(t, edited, out)

	got, err := repo.GetChangeByScheduleID(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, "edited", got.Cabinet)

	// unknown slot id
	_, err = svc.Edit(ctx, change(t, 43, 7, "2021-09-02"))
	assert.Equal(t, schedulechange.ErrNotFound, errors.Cause(err))
}

func Test_Service_BulkDelete_failFast(t *testing.T) {
	svc, repo, _ := newSvc()
	ctx := context.Background()

	_, err := svc.BulkAdd(ctx, []schedulechange.Change{
		change(t, 42, 7, "2021-09-01"),
		change(t, 44, 7, "2021-09-01"),
	})
	assert.NoError(t, err)

	err = svc.BulkDelete(ctx, []int64{42, 43, 44})
	assert.Equal(t, schedulechange.ErrNotFound, errors.Cause(err))

	// 42 deleted before the failure; 44 untouched
	_, err = repo.GetChangeByScheduleID(ctx, 42)
	assert.Equal(t, schedulechange.ErrNotFound, errors.Cause(err))
	_, err = repo.GetChangeByScheduleID(ctx, 44)
	assert.NoError(t, err)
}

func Test_Service_BulkDelete_keyedBySlotIDAlone(t *testing.T) {
	svc, repo, _ := newSvc()
	ctx := context.Background()

	// the override lives in group 7; the delete names only the slot id
	_, err := svc.BulkAdd(ctx, []schedulechange.Change{change(t, 42, 7, "2021-09-01")})
	assert.NoError(t, err)

	assert.NoError(t, svc.BulkDelete(ctx, []int64{42}))

	_, err = repo.GetChangeByScheduleID(ctx, 42)
	assert.Equal(t, schedulechange.ErrNotFound, errors.Cause(err))
}

func Test_Service_endToEnd(t *testing.T) {
	svc, _, clk := newSvc()
	ctx := context.Background()

	today := core.DateOf(clk.now)
	_, err := svc.BulkAdd(ctx, []schedulechange.Change{{
		ScheduleID:   42,
		GroupID:      7,
		NewSubjectID: 3,
		NewTeacherID: 5,
		Date:         today,
		Cabinet:      "109",
		IsCanceled:   true,
	}})
	assert.NoError(t, err)

	listed, err := svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.True(t, listed[0].IsCanceled)

	clk.advanceDays(1)

	listed, err = svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, listed)

	_, err = svc.GetByScheduleID(ctx, 42)
	assert.Equal(t, schedulechange.ErrNotFound, errors.Cause(err))
}
