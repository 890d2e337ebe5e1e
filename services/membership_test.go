package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shopsync-backend/store"
)

func newIndex(t *testing.T) *MembershipIndex {
	t.Helper()
	return NewMembershipIndex(store.NewMemory())
}

func TestAddMembershipBothDirections(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))

	groups, err := idx.GroupsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"g1"}, groups)

	users, err := idx.UsersForGroup(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, users)
}

func TestAddMembershipIdempotent(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))
	require.NoError(t, idx.Add(ctx, "u1", "g1"))

	groups, err := idx.GroupsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, groups, 1)

	users, err := idx.UsersForGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestRemoveMembershipLeavesNoResidue(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))
	require.NoError(t, idx.Remove(ctx, "u1", "g1"))

	groups, err := idx.GroupsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, groups)

	users, err := idx.UsersForGroup(ctx, "g1")
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestRemoveMembershipNeverAddedIsNoop(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))
	require.NoError(t, idx.Remove(ctx, "u2", "g2"))

	groups, err := idx.GroupsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"g1"}, groups)
}

func TestContains(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))

	present, err := idx.Contains(ctx, "u1", "g1")
	require.NoError(t, err)
	require.True(t, present)

	present, err = idx.Contains(ctx, "u1", "g2")
	require.NoError(t, err)
	require.False(t, present)
}

func TestRemoveUserUnlinksEveryGroup(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))
	require.NoError(t, idx.Add(ctx, "u1", "g2"))
	require.NoError(t, idx.Add(ctx, "u2", "g1"))

	require.NoError(t, idx.RemoveUser(ctx, "u1"))

	groups, err := idx.GroupsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, groups)

	users, err := idx.UsersForGroup(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, users)

	users, err = idx.UsersForGroup(ctx, "g2")
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestRemoveGroupUnlinksEveryUser(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "u1", "g1"))
	require.NoError(t, idx.Add(ctx, "u2", "g1"))
	require.NoError(t, idx.Add(ctx, "u1", "g2"))

	require.NoError(t, idx.RemoveGroup(ctx, "g1"))

	users, err := idx.UsersForGroup(ctx, "g1")
	require.NoError(t, err)
	require.Empty(t, users)

	groups, err := idx.GroupsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"g2"}, groups)

	groups, err = idx.GroupsForUser(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, groups)
}
