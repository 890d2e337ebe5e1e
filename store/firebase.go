package store

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// Firebase backs the Store contract with the Realtime Database. Multi-path
// updates through the root ref are atomic, which is what keeps the paired
// membership-index writes consistent.
type Firebase struct {
	client *db.Client
}

func NewFirebase(ctx context.Context, credFile, databaseURL string) (*Firebase, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, option.WithCredentialsFile(credFile))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase database: %w", err)
	}
	return &Firebase{client: client}, nil
}

func (f *Firebase) Get(ctx context.Context, path string, dest interface{}) error {
	if err := f.client.NewRef(path).Get(ctx, dest); err != nil {
		return fmt.Errorf("%w: get %s: %v", ErrTaskFailed, path, err)
	}
	return nil
}

func (f *Firebase) Set(ctx context.Context, path string, value interface{}) error {
	if err := f.client.NewRef(path).Set(ctx, value); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrTaskFailed, path, err)
	}
	return nil
}

func (f *Firebase) Delete(ctx context.Context, path string) error {
	if err := f.client.NewRef(path).Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrTaskFailed, path, err)
	}
	return nil
}

func (f *Firebase) Update(ctx context.Context, values map[string]interface{}) error {
	if err := f.client.NewRef("").Update(ctx, values); err != nil {
		return fmt.Errorf("%w: update: %v", ErrTaskFailed, err)
	}
	return nil
}

func (f *Firebase) Query(ctx context.Context, path, field string, value interface{}, dest interface{}) error {
	q := f.client.NewRef(path).OrderByChild(field).EqualTo(value)
	if err := q.Get(ctx, dest); err != nil {
		return fmt.Errorf("%w: query %s by %s: %v", ErrTaskFailed, path, field, err)
	}
	return nil
}
