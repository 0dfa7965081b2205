package schedule

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("schedule slot not found")

type (
	Repository interface {
		// QuerySlotsByGroup returns the group's slots ordered by weekday
		// ascending, then pair number ascending.
		QuerySlotsByGroup(ctx context.Context, groupID int64) ([]Slot, error)
		CreateSlot(ctx context.Context, s Slot) error
		// UpdateSlot updates the row matching s.ID; ErrNotFound when no row matches.
		UpdateSlot(ctx context.Context, s Slot) error
		// DeleteDay removes every slot of a (group, weekday); ErrNotFound when none existed.
		DeleteDay(ctx context.Context, groupID int64, weekday int) error
		DeleteSlotByID(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Week returns the group's full weekly schedule folded per weekday.
// Weekdays appear in first-seen order of the underlying ordered rows and
// days without slots are omitted.
func (svc *Service) Week(ctx context.Context, groupID int64) ([]Day, error) {
	slots, err := svc.repo.QuerySlotsByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "querying slots")
	}
	return foldWeek(groupID, slots), nil
}

func foldWeek(groupID int64, slots []Slot) []Day {
	days := make([]Day, 0, 7)
	for _, s := range slots {
		pair := Pair{
			ID:         s.ID,
			PairNumber: s.PairNumber,
			TeacherID:  s.TeacherID,
			SubjectID:  s.SubjectID,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Cabinet:    s.Cabinet,
		}
		var found bool
		for i := range days {
			if days[i].Weekday == s.Weekday {
				days[i].Pairs = append(days[i].Pairs, pair)
				found = true
				break
			}
		}
		if !found {
			days = append(days, Day{GroupID: groupID, Weekday: s.Weekday, Pairs: []Pair{pair}})
		}
	}
	return days
}

// AddPairs inserts every pair tagged with the payload's group and weekday,
// then returns the group's whole updated week. Inserts run one statement at
// a time; there is no duplicate or overlap check.
func (svc *Service) AddPairs(ctx context.Context, nd NewDay) ([]Day, error) {
	for _, p := range nd.Pairs {
		s := Slot{
			PairNumber: p.PairNumber,
			GroupID:    nd.GroupID,
			SubjectID:  p.SubjectID,
			TeacherID:  p.TeacherID,
			Weekday:    nd.Weekday,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
			Cabinet:    p.Cabinet,
		}
		if err := svc.repo.CreateSlot(ctx, s); err != nil {
			return nil, errors.Wrap(err, "creating slot")
		}
	}
	return svc.Week(ctx, nd.GroupID)
}

// EditDay applies the payload as a per-slot update of one weekday.
// Updates run one statement at a time: the first slot id that matches no row
// aborts the call with ErrNotFound, and updates already applied to earlier
// slots are not rolled back.
func (svc *Service) EditDay(ctx context.Context, d Day) ([]Day, error) {
	for _, p := range d.Pairs {
		s := Slot{
			ID:         p.ID,
			PairNumber: p.PairNumber,
			SubjectID:  p.SubjectID,
			TeacherID:  p.TeacherID,
			Weekday:    d.Weekday,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
			Cabinet:    p.Cabinet,
		}
		if err := svc.repo.UpdateSlot(ctx, s); err != nil {
			return nil, err
		}
	}
	return svc.Week(ctx, d.GroupID)
}

func (svc *Service) DeleteDay(ctx context.Context, groupID int64, weekday int) error {
	return svc.repo.DeleteDay(ctx, groupID, weekday)
}

func (svc *Service) DeleteSlot(ctx context.Context, id int64) error {
	return svc.repo.DeleteSlotByID(ctx, id)
}
