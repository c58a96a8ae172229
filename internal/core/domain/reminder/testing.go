package reminder

import (
	"context"
	"sort"
	"sync"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
)

type FakeRepository struct {
	CreateError             error
	GetByIDError            error
	ReadError               error
	CountError              error
	SetStatusError          error
	MarkRemindedError       error
	CompleteError           error
	Reminders               map[ID]Reminder
	ReadWith                []ReadOptions
	MarkRemindedCalls       []ID
	CompleteAfterFinalCalls []ID
	nextID                  ID
	lock                    sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Reminders: make(map[ID]Reminder)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	rem = Reminder{
		ID:          r.nextID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Priority:    input.Priority,
		Tags:        input.Tags,
		Status:      StatusPending,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	r.Reminders[rem.ID] = rem
	return rem, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (rem Reminder, err error) {
	if r.GetByIDError != nil {
		return rem, r.GetByIDError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[id]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	return rem, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if matches(rem, options) {
			reminders = append(reminders, rem)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		switch options.OrderBy {
		case OrderByDueAtAsc:
			return reminders[i].DueAt.AsUTC().Before(reminders[j].DueAt.AsUTC())
		case OrderByDueAtDesc:
			return reminders[j].DueAt.AsUTC().Before(reminders[i].DueAt.AsUTC())
		default:
			return reminders[i].ID < reminders[j].ID
		}
	})
	if options.Limit.IsPresent && uint(len(reminders)) > options.Limit.Value {
		reminders = reminders[:options.Limit.Value]
	}
	return reminders, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for _, rem := range r.Reminders {
		if matches(rem, options) {
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) SetStatus(ctx context.Context, input SetStatusInput) (rem Reminder, err error) {
	if r.SetStatusError != nil {
		return rem, r.SetStatusError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[input.ID]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	rem.Status = input.Status
	rem.UpdatedAt = input.At
	if input.Status == StatusCompleted {
		rem.CompletedAt = c.NewOptional(input.At, true)
	} else {
		rem.CompletedAt = c.Optional[dt.Naive]{}
	}
	r.Reminders[input.ID] = rem
	return rem, nil
}

func (r *FakeRepository) MarkReminded(ctx context.Context, id ID, at dt.Naive) (bool, error) {
	if r.MarkRemindedError != nil {
		return false, r.MarkRemindedError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.MarkRemindedCalls = append(r.MarkRemindedCalls, id)
	rem, ok := r.Reminders[id]
	if !ok || rem.LastReminded.IsPresent {
		return false, nil
	}
	rem.LastReminded = c.NewOptional(at, true)
	rem.UpdatedAt = at
	r.Reminders[id] = rem
	return true, nil
}

func (r *FakeRepository) CompleteAfterFinalNotice(ctx context.Context, id ID, at dt.Naive) (bool, error) {
	if r.CompleteError != nil {
		return false, r.CompleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CompleteAfterFinalCalls = append(r.CompleteAfterFinalCalls, id)
	rem, ok := r.Reminders[id]
	if !ok || rem.Status != StatusPending || rem.ImmediateNotified {
		return false, nil
	}
	rem.Status = StatusCompleted
	rem.CompletedAt = c.NewOptional(at, true)
	rem.LastReminded = c.NewOptional(at, true)
	rem.ImmediateNotified = true
	rem.UpdatedAt = at
	r.Reminders[id] = rem
	return true, nil
}

func matches(rem Reminder, options ReadOptions) bool {
	if options.UserIDEquals.IsPresent && rem.UserID != options.UserIDEquals.Value {
		return false
	}
	if options.StatusEquals.IsPresent && rem.Status != options.StatusEquals.Value {
		return false
	}
	if options.DueAfter.IsPresent && !options.DueAfter.Value.AsUTC().Before(rem.DueAt.AsUTC()) {
		return false
	}
	if options.DueAtOrBefore.IsPresent && options.DueAtOrBefore.Value.AsUTC().Before(rem.DueAt.AsUTC()) {
		return false
	}
	if options.LastRemindedIsNull && rem.LastReminded.IsPresent {
		return false
	}
	if options.ImmediateNotifiedEquals.IsPresent && rem.ImmediateNotified != options.ImmediateNotifiedEquals.Value {
		return false
	}
	return true
}

type FakeSender struct {
	SendError error
	Sent      []string
	lock      sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Send(ctx context.Context, text string) error {
	if s.SendError != nil {
		return s.SendError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, text)
	return nil
}

type FakeEventPublisher struct {
	PublishError error
	Published    []NotificationEvent
	lock         sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishNotification(ctx context.Context, event NotificationEvent) error {
	if p.PublishError != nil {
		return p.PublishError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}

type FakeResolver struct {
	Result          dt.Naive
	ResolveError    error
	ResolvedPhrases []string
}

func NewFakeResolver() *FakeResolver {
	return &FakeResolver{}
}

func (r *FakeResolver) Resolve(ctx context.Context, phrase string, now dt.Local) (dt.Naive, error) {
	r.ResolvedPhrases = append(r.ResolvedPhrases, phrase)
	if r.ResolveError != nil {
		return dt.Naive{}, r.ResolveError
	}
	return r.Result, nil
}

type FakeMessageParser struct {
	Parsed       ParsedMessage
	Meeting      string
	ParsedTexts  []string
	MeetingTexts []string
}

func NewFakeMessageParser() *FakeMessageParser {
	return &FakeMessageParser{Parsed: ParsedMessage{Priority: PriorityMedium}}
}

func (p *FakeMessageParser) Parse(ctx context.Context, text string) ParsedMessage {
	p.ParsedTexts = append(p.ParsedTexts, text)
	return p.Parsed
}

func (p *FakeMessageParser) MeetingTitle(ctx context.Context, text string) string {
	p.MeetingTexts = append(p.MeetingTexts, text)
	return p.Meeting
}
