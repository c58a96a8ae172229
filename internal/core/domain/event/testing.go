package event

import (
	"context"
	"sort"
	"sync"
)

type FakeRepository struct {
	CreateError error
	ReadError   error
	CountError  error
	Events      map[ID]ScheduledEvent
	nextID      ID
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Events: make(map[ID]ScheduledEvent)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (ev ScheduledEvent, err error) {
	if r.CreateError != nil {
		return ev, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	ev = ScheduledEvent{
		ID:        r.nextID,
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		StartsAt:  input.StartsAt,
		CreatedAt: input.CreatedAt,
	}
	r.Events[ev.ID] = ev
	return ev, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]ScheduledEvent, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	events := make([]ScheduledEvent, 0, len(r.Events))
	for _, ev := range r.Events {
		if matches(ev, options) {
			events = append(events, ev)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if options.OrderByStartAt {
			return events[i].StartsAt.AsUTC().Before(events[j].StartsAt.AsUTC())
		}
		return events[i].ID < events[j].ID
	})
	if options.Limit.IsPresent && uint(len(events)) > options.Limit.Value {
		events = events[:options.Limit.Value]
	}
	return events, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for _, ev := range r.Events {
		if matches(ev, options) {
			count++
		}
	}
	return count, nil
}

func matches(ev ScheduledEvent, options ReadOptions) bool {
	if options.UserIDEquals.IsPresent && ev.UserID != options.UserIDEquals.Value {
		return false
	}
	if options.StartsAfter.IsPresent && !options.StartsAfter.Value.AsUTC().Before(ev.StartsAt.AsUTC()) {
		return false
	}
	return true
}
