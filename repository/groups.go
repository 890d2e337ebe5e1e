package repository

import (
	"context"
	"fmt"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

type Groups struct {
	store store.Store
}

func NewGroups(s store.Store) *Groups {
	return &Groups{store: s}
}

func (r *Groups) Add(ctx context.Context, group *models.Group) (*models.Group, error) {
	if group == nil {
		return nil, store.ErrNilRecord
	}
	key, err := store.NewKey()
	if err != nil {
		return nil, fmt.Errorf("%w: group key: %v", store.ErrTaskFailed, err)
	}
	group.Uid = key
	if err := r.store.Set(ctx, models.GroupsCollection+"/"+key, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (r *Groups) GetByUid(ctx context.Context, uid string) (*models.Group, error) {
	var group models.Group
	if err := r.store.Get(ctx, models.GroupsCollection+"/"+uid, &group); err != nil {
		return nil, err
	}
	if group.Uid == "" {
		return nil, nil
	}
	return &group, nil
}

func (r *Groups) Update(ctx context.Context, group *models.Group) error {
	if group == nil || group.Uid == "" {
		return store.ErrNilRecord
	}
	return r.store.Set(ctx, models.GroupsCollection+"/"+group.Uid, group)
}

func (r *Groups) Delete(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, models.GroupsCollection+"/"+uid)
}
