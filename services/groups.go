package services

import (
	"context"

	"shopsync-backend/models"
	"shopsync-backend/repository"
)

// Groups owns the group lifecycle: membership changes touch the group
// document, the membership index, and the member's basket together. The
// writes are independent per-key operations — a partial failure is repaired
// by re-running the same call, every step here is idempotent.
type Groups struct {
	groups      *repository.Groups
	items       *repository.Items
	baskets     *repository.Baskets
	basketItems *repository.BasketItems
	purchases   *repository.Purchases
	membership  *MembershipIndex
}

func NewGroups(groups *repository.Groups, items *repository.Items, baskets *repository.Baskets,
	basketItems *repository.BasketItems, purchases *repository.Purchases, membership *MembershipIndex) *Groups {
	return &Groups{
		groups:      groups,
		items:       items,
		baskets:     baskets,
		basketItems: basketItems,
		purchases:   purchases,
		membership:  membership,
	}
}

// Create makes a new group with the creator as its first member.
func (s *Groups) Create(ctx context.Context, creator *models.UserProfile, name, description string) (*models.Group, error) {
	group := &models.Group{
		Name:           name,
		Description:    description,
		MemberUserUids: map[string]bool{},
	}
	group, err := s.groups.Add(ctx, group)
	if err != nil {
		return nil, err
	}
	if err := s.AddMember(ctx, group, creator); err != nil {
		return nil, err
	}
	return group, nil
}

// AddMember joins a user: group document, membership index, and a fresh
// basket. Adding an existing member is a no-op.
func (s *Groups) AddMember(ctx context.Context, group *models.Group, user *models.UserProfile) error {
	if group.MemberUserUids == nil {
		group.MemberUserUids = map[string]bool{}
	}
	if group.MemberUserUids[user.Uid] {
		return nil
	}
	group.MemberUserUids[user.Uid] = true
	if err := s.groups.Update(ctx, group); err != nil {
		return err
	}
	if err := s.membership.Add(ctx, user.Uid, group.Uid); err != nil {
		return err
	}
	return s.baskets.Save(ctx, &models.ShoppingBasket{UserUid: user.Uid, GroupUid: group.Uid})
}

// RemoveMember unlinks a user and deletes their basket and basket items for
// this group. Removing a non-member is a no-op.
func (s *Groups) RemoveMember(ctx context.Context, group *models.Group, userUid string) error {
	if group.MemberUserUids[userUid] {
		delete(group.MemberUserUids, userUid)
		if err := s.groups.Update(ctx, group); err != nil {
			return err
		}
	}
	if err := s.membership.Remove(ctx, userUid, group.Uid); err != nil {
		return err
	}
	basketUid := models.BasketKey(userUid, group.Uid)
	claimed, err := s.basketItems.ByBasket(ctx, basketUid)
	if err != nil {
		return err
	}
	for _, item := range claimed {
		if err := s.basketItems.Delete(ctx, item.Uid); err != nil {
			return err
		}
	}
	return s.baskets.Delete(ctx, userUid, group.Uid)
}

// Delete cascades: items, every member's basket, basket items, purchases,
// then the membership index, then the group document itself.
func (s *Groups) Delete(ctx context.Context, group *models.Group) error {
	items, err := s.items.ByGroup(ctx, group.Uid)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.items.Delete(ctx, item.Uid); err != nil {
			return err
		}
	}

	claimed, err := s.basketItems.ByGroup(ctx, group.Uid)
	if err != nil {
		return err
	}
	for _, item := range claimed {
		if err := s.basketItems.Delete(ctx, item.Uid); err != nil {
			return err
		}
	}

	purchases, err := s.purchases.ByGroup(ctx, group.Uid)
	if err != nil {
		return err
	}
	for _, purchase := range purchases {
		if err := s.purchases.Delete(ctx, purchase.Uid); err != nil {
			return err
		}
	}

	for userUid := range group.MemberUserUids {
		if err := s.baskets.Delete(ctx, userUid, group.Uid); err != nil {
			return err
		}
	}

	if err := s.membership.RemoveGroup(ctx, group.Uid); err != nil {
		return err
	}
	return s.groups.Delete(ctx, group.Uid)
}

// DetachUser removes a departing user from every group it belongs to and
// purges its membership-index entries. Baskets are deliberately left behind —
// they are unreachable without the membership and get reaped when their group
// is deleted (see DESIGN.md).
func (s *Groups) DetachUser(ctx context.Context, userUid string) error {
	groupUids, err := s.membership.GroupsForUser(ctx, userUid)
	if err != nil {
		return err
	}
	for _, groupUid := range groupUids {
		group, err := s.groups.GetByUid(ctx, groupUid)
		if err != nil {
			return err
		}
		if group != nil && group.MemberUserUids[userUid] {
			delete(group.MemberUserUids, userUid)
			if err := s.groups.Update(ctx, group); err != nil {
				return err
			}
		}
	}
	return s.membership.RemoveUser(ctx, userUid)
}
