package repository

import (
	"context"
	"fmt"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

type Users struct {
	store store.Store
}

func NewUsers(s store.Store) *Users {
	return &Users{store: s}
}

// Add assigns a generated uid and persists the profile. Emails are unique:
// adding a profile under an already-registered email fails with
// store.ErrAlreadyExists.
func (r *Users) Add(ctx context.Context, user *models.UserProfile) (*models.UserProfile, error) {
	if user == nil {
		return nil, store.ErrNilRecord
	}
	existing, err := r.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s", store.ErrAlreadyExists, user.Email)
	}
	key, err := store.NewKey()
	if err != nil {
		return nil, fmt.Errorf("%w: user key: %v", store.ErrTaskFailed, err)
	}
	user.Uid = key
	if err := r.store.Set(ctx, models.UsersCollection+"/"+key, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUid returns nil when no such user exists — absence is not an error.
func (r *Users) GetByUid(ctx context.Context, uid string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := r.store.Get(ctx, models.UsersCollection+"/"+uid, &user); err != nil {
		return nil, err
	}
	if user.Uid == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var matches map[string]models.UserProfile
	if err := r.store.Query(ctx, models.UsersCollection, "email", email, &matches); err != nil {
		return nil, err
	}
	for _, user := range matches {
		user := user
		return &user, nil
	}
	return nil, nil
}

func (r *Users) Update(ctx context.Context, user *models.UserProfile) error {
	if user == nil || user.Uid == "" {
		return store.ErrNilRecord
	}
	return r.store.Set(ctx, models.UsersCollection+"/"+user.Uid, user)
}

func (r *Users) Delete(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, models.UsersCollection+"/"+uid)
}
