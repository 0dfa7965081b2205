package schedulechange

import (
	"context"

	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
)

var ErrNotFound = errors.New("schedule change not found")

type (
	Repository interface {
		// QueryChangesByGroup returns every stored change for the group,
		// expired ones included, ordered by date ascending.
		QueryChangesByGroup(ctx context.Context, groupID int64) ([]Change, error)
		CreateChange(ctx context.Context, c Change) error
		// UpdateChangeByScheduleID rewrites the change keyed by the slot id
		// alone; ErrNotFound when no row matches.
		UpdateChangeByScheduleID(ctx context.Context, c Change) error
		DeleteChangeByScheduleID(ctx context.Context, scheduleID int64) error
		GetChangeByScheduleID(ctx context.Context, scheduleID int64) (Change, error)
	}

	Service struct {
		repo  Repository
		clock core.Clock
	}
)

func NewService(repo Repository, clock core.Clock) *Service {
	if clock == nil {
		clock = core.SystemClock
	}
	return &Service{repo: repo, clock: clock}
}

// List returns the group's pending changes: everything dated today or later.
// Changes that have fallen behind today are deleted on the way; an eviction
// failure fails the whole read so a stale row is never silently served.
func (svc *Service) List(ctx context.Context, groupID int64) ([]Change, error) {
	if err := svc.EvictExpired(ctx, groupID, svc.clock.Today()); err != nil {
		return nil, err
	}
	all, err := svc.repo.QueryChangesByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "querying changes")
	}
	today := svc.clock.Today()
	pending := make([]Change, 0, len(all))
	for _, c := range all {
		if !c.Date.Before(today) {
			pending = append(pending, c)
		}
	}
	return pending, nil
}

// EvictExpired deletes the group's changes dated strictly before asOf.
// It is idempotent; running it with nothing to evict is a no-op.
func (svc *Service) EvictExpired(ctx context.Context, groupID int64, asOf core.Date) error {
	all, err := svc.repo.QueryChangesByGroup(ctx, groupID)
	if err != nil {
		return errors.Wrap(err, "querying changes for eviction")
	}
	for _, c := range all {
		if !c.Date.Before(asOf) {
			continue
		}
		if err := svc.repo.DeleteChangeByScheduleID(ctx, c.ScheduleID); err != nil {
			return errors.Wrapf(err, "evicting change for slot %d", c.ScheduleID)
		}
	}
	return nil
}

// BulkAdd inserts every change verbatim, each under its own group, and
// echoes the input back. Inserts run one statement at a time with no
// rollback, and nothing stops a second change from being stored for the
// same slot and date.
func (svc *Service) BulkAdd(ctx context.Context, changes []Change) ([]Change, error) {
	for _, c := range changes {
		if err := svc.repo.CreateChange(ctx, c); err != nil {
			return nil, errors.Wrap(err, "creating change")
		}
	}
	return changes, nil
}

// Edit rewrites the change keyed by its slot id and echoes the input back.
// A slot id with no stored change is ErrNotFound.
func (svc *Service) Edit(ctx context.Context, c Change) (Change, error) {
	if err := svc.repo.UpdateChangeByScheduleID(ctx, c); err != nil {
		return Change{}, err
	}
	return c, nil
}

// BulkDelete removes the changes keyed by the given slot ids, aborting on
// the first id that has no stored change. Earlier deletes stay applied.
func (svc *Service) BulkDelete(ctx context.Context, scheduleIDs []int64) error {
	for _, sid := range scheduleIDs {
		if err := svc.repo.DeleteChangeByScheduleID(ctx, sid); err != nil {
			return err
		}
	}
	return nil
}

func (svc *Service) GetByScheduleID(ctx context.Context, scheduleID int64) (Change, error) {
	return svc.repo.GetChangeByScheduleID(ctx, scheduleID)
}
