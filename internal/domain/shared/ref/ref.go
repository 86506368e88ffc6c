// Package ref models a link to another record that is either a bare identifier
// or the already loaded record itself.
package ref

import (
	"context"
	"strings"
)

// Ref points at a T by id. A resolved Ref also carries the record.
type Ref[T any] struct {
	id     string
	record *T
}

// ID builds an unresolved reference.
func ID[T any](id string) Ref[T] {
	return Ref[T]{id: strings.TrimSpace(id)}
}

// Of builds a resolved reference. The id is kept alongside the record so that
// callers never need to know how T exposes its key.
func Of[T any](id string, record *T) Ref[T] {
	return Ref[T]{id: strings.TrimSpace(id), record: record}
}

func (r Ref[T]) ID() string {
	return r.id
}

// IsZero reports whether no id was given at all.
func (r Ref[T]) IsZero() bool {
	return r.id == ""
}

func (r Ref[T]) IsResolved() bool {
	return r.record != nil
}

// Record returns the loaded record, if any.
func (r Ref[T]) Record() (*T, bool) {
	return r.record, r.record != nil
}

// Lookup loads a record by id. It returns (nil, nil) when no such record exists.
type Lookup[T any] func(ctx context.Context, id string) (*T, error)

// Resolve loads the record behind an unresolved reference.
// found is false when the id is empty or the lookup had nothing; err is reserved
// for storage failures.
func (r Ref[T]) Resolve(ctx context.Context, lookup Lookup[T]) (resolved Ref[T], found bool, err error) {
	if r.record != nil {
		return r, true, nil
	}
	if r.id == "" {
		return r, false, nil
	}
	rec, err := lookup(ctx, r.id)
	if err != nil {
		return r, false, err
	}
	if rec == nil {
		return r, false, nil
	}
	return Of(r.id, rec), true, nil
}

// SameTarget reports whether both references point at the same id.
func (r Ref[T]) SameTarget(other Ref[T]) bool {
	return r.id == other.id
}
