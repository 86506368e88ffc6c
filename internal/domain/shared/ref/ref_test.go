package ref

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type magazine struct{ title string }

func lookupFrom(m map[string]*magazine) Lookup[magazine] {
	return func(_ context.Context, id string) (*magazine, error) {
		return m[id], nil
	}
}

func TestRef_Resolve(t *testing.T) {
	ctx := context.Background()
	store := map[string]*magazine{"M1": {title: "Tamil Monthly"}}

	t.Run("unresolved id that exists", func(t *testing.T) {
		r, found, err := ID[magazine]("M1").Resolve(ctx, lookupFrom(store))
		require.NoError(t, err)
		assert.True(t, found)
		rec, ok := r.Record()
		require.True(t, ok)
		assert.Equal(t, "Tamil Monthly", rec.title)
		assert.Equal(t, "M1", r.ID())
	})

	t.Run("unresolved id that does not exist", func(t *testing.T) {
		r, found, err := ID[magazine]("M9").Resolve(ctx, lookupFrom(store))
		require.NoError(t, err)
		assert.False(t, found)
		assert.False(t, r.IsResolved())
	})

	t.Run("empty id never hits storage", func(t *testing.T) {
		called := false
		_, found, err := ID[magazine]("  ").Resolve(ctx, func(context.Context, string) (*magazine, error) {
			called = true
			return nil, nil
		})
		require.NoError(t, err)
		assert.False(t, found)
		assert.False(t, called)
	})

	t.Run("already resolved is returned as is", func(t *testing.T) {
		m := &magazine{title: "Weekly"}
		r, found, err := Of("M2", m).Resolve(ctx, func(context.Context, string) (*magazine, error) {
			return nil, errors.New("must not be called")
		})
		require.NoError(t, err)
		assert.True(t, found)
		rec, _ := r.Record()
		assert.Same(t, m, rec)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		_, _, err := ID[magazine]("M1").Resolve(ctx, func(context.Context, string) (*magazine, error) {
			return nil, errors.New("connection reset")
		})
		assert.Error(t, err)
	})
}

func TestRef_SameTarget(t *testing.T) {
	assert.True(t, ID[magazine]("A").SameTarget(Of("A", &magazine{})))
	assert.False(t, ID[magazine]("A").SameTarget(ID[magazine]("B")))
	assert.True(t, ID[magazine]("").IsZero())
}
