package usecases

import (
	"context"
	"sort"

	"github.com/tcworld/magadmin/internal/domain/reference"
)

type refKey struct {
	kind reference.Kind
	id   string
}

// memoryReferenceRepository keeps registries in a map.
type memoryReferenceRepository struct {
	entities  map[refKey]*reference.Entity
	createErr error
}

func newMemoryReferenceRepository(seed ...*reference.Entity) *memoryReferenceRepository {
	r := &memoryReferenceRepository{entities: make(map[refKey]*reference.Entity)}
	for _, e := range seed {
		r.entities[refKey{e.Kind(), e.ID()}] = e
	}
	return r
}

func (r *memoryReferenceRepository) Create(ctx context.Context, e *reference.Entity) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.entities[refKey{e.Kind(), e.ID()}] = e
	return nil
}

func (r *memoryReferenceRepository) GetByID(ctx context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	return r.entities[refKey{kind, id}], nil
}

func (r *memoryReferenceRepository) Update(ctx context.Context, e *reference.Entity) error {
	r.entities[refKey{e.Kind(), e.ID()}] = e
	return nil
}

func (r *memoryReferenceRepository) Delete(ctx context.Context, kind reference.Kind, id string) error {
	delete(r.entities, refKey{kind, id})
	return nil
}

func (r *memoryReferenceRepository) List(ctx context.Context, kind reference.Kind, filter reference.ListFilter) ([]*reference.Entity, int64, error) {
	var out []*reference.Entity
	for k, e := range r.entities {
		if k.kind == kind {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, int64(len(out)), nil
}

func (r *memoryReferenceRepository) Exists(ctx context.Context, kind reference.Kind, id string) (bool, error) {
	_, ok := r.entities[refKey{kind, id}]
	return ok, nil
}
