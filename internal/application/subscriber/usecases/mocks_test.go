package usecases

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
)

type memorySubscriberRepository struct {
	subscribers map[string]*subscriber.Subscriber
	updates     int
}

func newMemorySubscriberRepository() *memorySubscriberRepository {
	return &memorySubscriberRepository{subscribers: make(map[string]*subscriber.Subscriber)}
}

func (r *memorySubscriberRepository) Create(ctx context.Context, s *subscriber.Subscriber) error {
	r.subscribers[s.ID()] = s
	return nil
}

func (r *memorySubscriberRepository) GetByID(ctx context.Context, id string) (*subscriber.Subscriber, error) {
	return r.subscribers[id], nil
}

func (r *memorySubscriberRepository) Update(ctx context.Context, s *subscriber.Subscriber) error {
	r.updates++
	r.subscribers[s.ID()] = s
	return nil
}

func (r *memorySubscriberRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.subscribers[id]
	return ok, nil
}

func (r *memorySubscriberRepository) List(ctx context.Context, filter subscriber.ListFilter) ([]*subscriber.Subscriber, int64, error) {
	var out []*subscriber.Subscriber
	for _, s := range r.sorted() {
		if filter.IsDeleted != nil && s.IsDeleted() != *filter.IsDeleted {
			continue
		}
		if filter.CategoryID != "" && s.CategoryID() != filter.CategoryID {
			continue
		}
		if filter.TypeID != "" && s.TypeID() != filter.TypeID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(s.Name()), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *memorySubscriberRepository) ListForReport(ctx context.Context) ([]*subscriber.Subscriber, error) {
	var out []*subscriber.Subscriber
	for _, s := range r.sorted() {
		if !s.IsDeleted() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memorySubscriberRepository) sorted() []*subscriber.Subscriber {
	out := make([]*subscriber.Subscriber, 0, len(r.subscribers))
	for _, s := range r.subscribers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

type subscriptionReaderStub struct {
	subs []*subscription.Subscription
}

func (s *subscriptionReaderStub) ListBySubscriber(ctx context.Context, subscriberID string) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range s.subs {
		if sub.Subscriber().ID() == subscriberID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *subscriptionReaderStub) ListBySubscribers(ctx context.Context, ids []string) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, id := range ids {
		own, _ := s.ListBySubscriber(ctx, id)
		out = append(out, own...)
	}
	return out, nil
}

type referenceRepositoryStub struct {
	reference.Repository
}

func (referenceRepositoryStub) GetByID(ctx context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	known := map[reference.Kind]string{reference.KindCategory: "GOLD", reference.KindType: "INDIVIDUAL"}
	if known[kind] != id {
		return nil, nil
	}
	now := time.Now().UTC()
	return reference.ReconstructEntity(kind, id, id, now, now), nil
}

type labelRendererStub struct {
	rows      []subscriber.ReportRow
	charLimit int
}

func (r *labelRendererStub) Render(rows []subscriber.ReportRow, charLimit int) ([]byte, error) {
	r.rows = rows
	r.charLimit = charLimit
	return []byte("%PDF-stub"), nil
}

type mailerStub struct {
	to       string
	fileName string
	pdf      []byte
	err      error
}

func (m *mailerStub) SendReport(ctx context.Context, to, fileName string, pdf []byte) error {
	m.to, m.fileName, m.pdf = to, fileName, pdf
	return m.err
}

type notesRendererStub struct{}

func (notesRendererStub) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	return "<p>" + markdown + "</p>", nil
}
