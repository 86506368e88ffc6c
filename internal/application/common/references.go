// Package common holds helpers shared by the application use cases.
package common

import (
	"context"
	"strings"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/shared/ref"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

// ReferenceLookup adapts a registry repository to a ref lookup for one kind.
func ReferenceLookup(repo reference.Repository, kind reference.Kind) ref.Lookup[reference.Entity] {
	return func(ctx context.Context, id string) (*reference.Entity, error) {
		return repo.GetByID(ctx, kind, id)
	}
}

// ResolveReference resolves a required registry id reported on field.
// A missing id and an id that does not resolve are recorded on verrs; err is
// only returned for storage failures.
func ResolveReference(
	ctx context.Context,
	verrs *errors.ValidationErrors,
	repo reference.Repository,
	kind reference.Kind,
	field string,
	id string,
) (ref.Ref[reference.Entity], error) {
	r := ref.ID[reference.Entity](id)
	if r.IsZero() {
		verrs.Add(field, errors.MsgRequired)
		return r, nil
	}
	return ResolveRef(ctx, verrs, r, ReferenceLookup(repo, kind), field, kind.NotFoundMessage())
}

// ResolveRef resolves r with lookup, recording notFound on field when nothing matches.
func ResolveRef[T any](
	ctx context.Context,
	verrs *errors.ValidationErrors,
	r ref.Ref[T],
	lookup ref.Lookup[T],
	field string,
	notFound string,
) (ref.Ref[T], error) {
	if r.IsZero() {
		verrs.Add(field, errors.MsgRequired)
		return r, nil
	}
	resolved, found, err := r.Resolve(ctx, lookup)
	if err != nil {
		return r, err
	}
	if !found {
		verrs.AddMissingReference(field, notFound)
	}
	return resolved, nil
}

// TrimmedPtr returns the trimmed value of s, or "" when s is nil.
func TrimmedPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
