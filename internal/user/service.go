package user

import (
	"context"
	"errors"
	"strings"
)

// StoreError wraps a persistence failure that is neither a missing row nor a
// uniqueness violation. Its message never includes the underlying cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "user store: " + e.Op + " failed"
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Resolution is the outcome of Resolve. Created is false when the user
// already existed.
type Resolution struct {
	User    User
	Created bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the user registered under email, creating it on first
// sight.
//
// An existing user is returned as stored and prefs are ignored. Otherwise a
// single atomic upsert creates the user with its name taken from the email's
// local part. Two concurrent first submissions therefore end in one row: the
// loser either lands on the upsert's update branch or gets ErrEmailExists.
func (s *Service) Resolve(ctx context.Context, email string, prefs Preferences) (Resolution, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Resolution{}, ErrEmailRequired
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return Resolution{User: existing}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Resolution{}, &StoreError{Op: "lookup", Err: err}
	}

	create := User{Email: email, Name: NameFromEmail(email)}
	create.apply(prefs)

	user, inserted, err := s.repo.Upsert(ctx, create, prefs)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return Resolution{}, ErrEmailExists
		}
		return Resolution{}, &StoreError{Op: "upsert", Err: err}
	}

	return Resolution{User: user, Created: inserted}, nil
}

// GetByEmail loads a user without creating one.
func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrEmailRequired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, &StoreError{Op: "lookup", Err: err}
	}
	return user, nil
}
