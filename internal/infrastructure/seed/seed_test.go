package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type memoryReferenceRepository struct {
	entities map[string]*reference.Entity
}

func newMemoryReferenceRepository() *memoryReferenceRepository {
	return &memoryReferenceRepository{entities: make(map[string]*reference.Entity)}
}

func key(kind reference.Kind, id string) string {
	return string(kind) + "/" + id
}

func (r *memoryReferenceRepository) Create(_ context.Context, e *reference.Entity) error {
	r.entities[key(e.Kind(), e.ID())] = e
	return nil
}

func (r *memoryReferenceRepository) GetByID(_ context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	return r.entities[key(kind, id)], nil
}

func (r *memoryReferenceRepository) Update(_ context.Context, e *reference.Entity) error {
	r.entities[key(e.Kind(), e.ID())] = e
	return nil
}

func (r *memoryReferenceRepository) Delete(_ context.Context, kind reference.Kind, id string) error {
	delete(r.entities, key(kind, id))
	return nil
}

func (r *memoryReferenceRepository) List(_ context.Context, kind reference.Kind, _ reference.ListFilter) ([]*reference.Entity, int64, error) {
	var out []*reference.Entity
	for _, e := range r.entities {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memoryReferenceRepository) Exists(_ context.Context, kind reference.Kind, id string) (bool, error) {
	_, ok := r.entities[key(kind, id)]
	return ok, nil
}

const sampleSeed = `
title_case_names: true
categories:
  - id: GEN
    name: general
  - id: INST
    name: institution
types:
  - id: PAID
    name: paid subscriber
languages:
  - id: KAN
    name: kannada
  - id: ENG
    name: english
modes:
  - id: POST
    name: by post
payment_modes:
  - id: UPI
    name: upi
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleSeed))
	require.NoError(t, err)
	assert.True(t, f.TitleCaseNames)
	assert.Len(t, f.Entries(reference.KindCategory), 2)
	assert.Len(t, f.Entries(reference.KindLanguage), 2)
	assert.Equal(t, "UPI", f.Entries(reference.KindPaymentMode)[0].ID)

	_, err = Parse(strings.NewReader("unknown_registry: []\n"))
	assert.Error(t, err)

	empty, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Categories)
}

func TestSeeder_Apply(t *testing.T) {
	repo := newMemoryReferenceRepository()
	seeder := NewSeeder(repo, logger.NewNop())
	ctx := context.Background()

	f, err := Parse(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	res, err := seeder.Apply(ctx, f)
	require.NoError(t, err)
	created, skipped := res.Total()
	assert.Equal(t, 7, created)
	assert.Equal(t, 0, skipped)

	lang, err := repo.GetByID(ctx, reference.KindLanguage, "KAN")
	require.NoError(t, err)
	require.NotNil(t, lang)
	assert.Equal(t, "Kannada", lang.Name())

	typ, _ := repo.GetByID(ctx, reference.KindType, "PAID")
	assert.Equal(t, "Paid Subscriber", typ.Name())

	res, err = seeder.Apply(ctx, f)
	require.NoError(t, err)
	created, skipped = res.Total()
	assert.Equal(t, 0, created)
	assert.Equal(t, 7, skipped)
}

func TestSeeder_Apply_InvalidEntry(t *testing.T) {
	seeder := NewSeeder(newMemoryReferenceRepository(), logger.NewNop())

	f := &File{Modes: []Entry{{ID: "POST", Name: "  "}}}
	_, err := seeder.Apply(context.Background(), f)
	require.Error(t, err)
	verrs := errors.GetValidationErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("name"))
}
