package services

import (
	"context"

	"shopsync-backend/store"
)

const (
	userGroupsPath = "user_groups"
	groupUsersPath = "group_users"
)

// MembershipIndex keeps the bidirectional user↔group association so either
// direction reads in O(1). Invariant: g ∈ userToGroups[u] ⟺ u ∈
// groupToUsers[g]. Both directions of every mutation ride a single
// multi-path update, never two unilateral writes.
type MembershipIndex struct {
	store store.Store
}

func NewMembershipIndex(s store.Store) *MembershipIndex {
	return &MembershipIndex{store: s}
}

// Add inserts the pair in both directions. Re-adding an existing pair writes
// the same presence markers again — an error-free no-op.
func (m *MembershipIndex) Add(ctx context.Context, userUid, groupUid string) error {
	return m.store.Update(ctx, map[string]interface{}{
		userGroupsPath + "/" + userUid + "/" + groupUid: true,
		groupUsersPath + "/" + groupUid + "/" + userUid: true,
	})
}

// Remove deletes the pair in both directions. Removing a pair that was never
// added is a no-op, not an error.
func (m *MembershipIndex) Remove(ctx context.Context, userUid, groupUid string) error {
	return m.store.Update(ctx, map[string]interface{}{
		userGroupsPath + "/" + userUid + "/" + groupUid: nil,
		groupUsersPath + "/" + groupUid + "/" + userUid: nil,
	})
}

func (m *MembershipIndex) Contains(ctx context.Context, userUid, groupUid string) (bool, error) {
	var present bool
	if err := m.store.Get(ctx, userGroupsPath+"/"+userUid+"/"+groupUid, &present); err != nil {
		return false, err
	}
	return present, nil
}

// GroupsForUser returns the group uids the user belongs to; empty when none.
func (m *MembershipIndex) GroupsForUser(ctx context.Context, userUid string) ([]string, error) {
	return m.readSet(ctx, userGroupsPath+"/"+userUid)
}

// UsersForGroup returns the member uids of a group; empty when none.
func (m *MembershipIndex) UsersForGroup(ctx context.Context, groupUid string) ([]string, error) {
	return m.readSet(ctx, groupUsersPath+"/"+groupUid)
}

// RemoveUser unlinks the user from every group it belongs to, then clears the
// user's own index entry. The fetched group list is a snapshot — concurrent
// index changes are not re-validated, and a failed pair is left for an
// idempotent re-run rather than rolled back.
func (m *MembershipIndex) RemoveUser(ctx context.Context, userUid string) error {
	groups, err := m.GroupsForUser(ctx, userUid)
	if err != nil {
		return err
	}
	var firstErr error
	for _, groupUid := range groups {
		if err := m.Remove(ctx, userUid, groupUid); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := m.store.Delete(ctx, userGroupsPath+"/"+userUid); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// RemoveGroup is symmetric to RemoveUser.
func (m *MembershipIndex) RemoveGroup(ctx context.Context, groupUid string) error {
	users, err := m.UsersForGroup(ctx, groupUid)
	if err != nil {
		return err
	}
	var firstErr error
	for _, userUid := range users {
		if err := m.Remove(ctx, userUid, groupUid); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := m.store.Delete(ctx, groupUsersPath+"/"+groupUid); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (m *MembershipIndex) readSet(ctx context.Context, path string) ([]string, error) {
	var set map[string]bool
	if err := m.store.Get(ctx, path, &set); err != nil {
		return nil, err
	}
	uids := make([]string, 0, len(set))
	for uid, present := range set {
		if present {
			uids = append(uids, uid)
		}
	}
	return uids, nil
}
