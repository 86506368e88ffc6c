package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
)

type memoryPlanRepository struct {
	plans map[string]*plan.Plan
}

func newMemoryPlanRepository() *memoryPlanRepository {
	return &memoryPlanRepository{plans: make(map[string]*plan.Plan)}
}

func (r *memoryPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	r.plans[p.ID()] = p
	return nil
}

func (r *memoryPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	return r.plans[id], nil
}

func (r *memoryPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	r.plans[p.ID()] = p
	return nil
}

func (r *memoryPlanRepository) Delete(ctx context.Context, id string) error {
	delete(r.plans, id)
	return nil
}

func (r *memoryPlanRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.plans[id]
	return ok, nil
}

func (r *memoryPlanRepository) List(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
	var out []*plan.Plan
	for _, p := range r.sorted() {
		if filter.LanguageID != "" && p.LanguageID() != filter.LanguageID {
			continue
		}
		if filter.ModeID != "" && p.ModeID() != filter.ModeID {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *memoryPlanRepository) ListByIdentity(ctx context.Context, languageID, modeID string) ([]*plan.Plan, error) {
	return plan.Siblings(r.sorted(), languageID, modeID, ""), nil
}

func (r *memoryPlanRepository) sorted() []*plan.Plan {
	out := make([]*plan.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// referenceRepositoryStub resolves a fixed set of language and mode ids.
type referenceRepositoryStub struct {
	reference.Repository
	ids map[reference.Kind][]string
}

func newReferenceRepositoryStub() *referenceRepositoryStub {
	return &referenceRepositoryStub{ids: map[reference.Kind][]string{
		reference.KindLanguage: {"TA", "EN"},
		reference.KindMode:     {"PRINT", "DIGITAL"},
	}}
}

func (s *referenceRepositoryStub) GetByID(ctx context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	for _, known := range s.ids[kind] {
		if known == id {
			now := time.Now().UTC()
			return reference.ReconstructEntity(kind, id, id, now, now), nil
		}
	}
	return nil, nil
}

type subscriptionCounterStub struct {
	counts map[string]int64
}

func (s subscriptionCounterStub) CountByPlanID(ctx context.Context, planID string) (int64, error) {
	return s.counts[planID], nil
}
