package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Uid      string `json:"uid"`
	GroupUid string `json:"groupUid"`
	Name     string `json:"name"`
	InBasket bool   `json:"inBasket"`
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	want := testRecord{Uid: "i1", GroupUid: "g1", Name: "Milk"}
	require.NoError(t, m.Set(ctx, "items/i1", want))

	var got testRecord
	require.NoError(t, m.Get(ctx, "items/i1", &got))
	require.Equal(t, want, got)
}

func TestMemoryGetMissingLeavesDestZero(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var got testRecord
	require.NoError(t, m.Get(ctx, "items/nope", &got))
	require.Empty(t, got.Uid)
}

func TestMemoryDeletePrunesEmptyParents(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Update(ctx, map[string]interface{}{
		"user_groups/u1/g1": true,
		"user_groups/u1/g2": true,
	}))

	require.NoError(t, m.Delete(ctx, "user_groups/u1/g1"))
	var set map[string]bool
	require.NoError(t, m.Get(ctx, "user_groups/u1", &set))
	require.Len(t, set, 1)

	require.NoError(t, m.Delete(ctx, "user_groups/u1/g2"))
	set = nil
	require.NoError(t, m.Get(ctx, "user_groups/u1", &set))
	require.Empty(t, set)
}

func TestMemoryUpdateAppliesWritesAndNilDeletes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "group_users/g1/u1", true))
	require.NoError(t, m.Update(ctx, map[string]interface{}{
		"group_users/g1/u2": true,
		"group_users/g1/u1": nil,
	}))

	var set map[string]bool
	require.NoError(t, m.Get(ctx, "group_users/g1", &set))
	require.Equal(t, map[string]bool{"u2": true}, set)
}

func TestMemoryQueryFiltersByField(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "items/i1", testRecord{Uid: "i1", GroupUid: "g1", Name: "Milk"}))
	require.NoError(t, m.Set(ctx, "items/i2", testRecord{Uid: "i2", GroupUid: "g1", Name: "Eggs"}))
	require.NoError(t, m.Set(ctx, "items/i3", testRecord{Uid: "i3", GroupUid: "g2", Name: "Bread"}))

	var matches map[string]testRecord
	require.NoError(t, m.Query(ctx, "items", "groupUid", "g1", &matches))
	require.Len(t, matches, 2)
	require.Contains(t, matches, "i1")
	require.Contains(t, matches, "i2")

	matches = nil
	require.NoError(t, m.Query(ctx, "items", "groupUid", "g9", &matches))
	require.Empty(t, matches)
}

func TestNewKeyUniqueAndNonEmpty(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := NewKey()
		require.NoError(t, err)
		require.NotEmpty(t, key)
		require.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
