package usecase

import (
	"context"
	"fmt"

	"jitter_backend/internal/feature/directory/domain/entity"
)

// UserRepository abstracts read access to the user store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// ListAll returns every user in insertion order.
	ListAll(ctx context.Context) ([]entity.User, error)

	// FindByHandle returns up to limit users whose handle equals handle exactly.
	// A limit of zero or less means no limit.
	FindByHandle(ctx context.Context, handle string, limit int) ([]entity.User, error)

	// CountByHandle returns the number of users whose handle equals handle exactly.
	CountByHandle(ctx context.Context, handle string) (int64, error)

	// SearchByHandle returns users whose handle contains sub, ordered by handle.
	SearchByHandle(ctx context.Context, sub string) ([]entity.User, error)

	// SearchByFirstName returns users whose first name contains sub, ordered by first name.
	SearchByFirstName(ctx context.Context, sub string) ([]entity.User, error)

	// SearchByLastName returns users whose last name contains sub, ordered by last name.
	SearchByLastName(ctx context.Context, sub string) ([]entity.User, error)

	// SearchByFirstOrLastName returns users whose first or last name contains sub,
	// each user at most once, ordered by last name then first name.
	SearchByFirstOrLastName(ctx context.Context, sub string) ([]entity.User, error)
}

// SearchField names the field a substring search runs against.
type SearchField string

const (
	SearchFieldHandle    SearchField = "handle"
	SearchFieldFirstName SearchField = "first_name"
	SearchFieldLastName  SearchField = "last_name"
	// SearchFieldName matches either the first or the last name.
	SearchFieldName SearchField = "name"
)

// UserDirectory answers lookups and searches over the user store.
// It never writes to the store.
type UserDirectory struct {
	repo UserRepository
}

// NewUserDirectory creates a new UserDirectory with the given repository.
func NewUserDirectory(r UserRepository) *UserDirectory {
	return &UserDirectory{repo: r}
}

// GetAllUsers returns every user exactly as stored.
func (d *UserDirectory) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	return d.repo.ListAll(ctx)
}

// GetUserByHandle returns the user whose handle equals handle.
// A nil user with a nil error means no user has that handle.
// If the handle is shared by several users it returns ErrAmbiguousResult.
func (d *UserDirectory) GetUserByHandle(ctx context.Context, handle string) (*entity.User, error) {
	// Two rows are enough to tell "one" from "many".
	users, err := d.repo.FindByHandle(ctx, handle, 2)
	if err != nil {
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, nil
	case 1:
		return &users[0], nil
	default:
		return nil, fmt.Errorf("%w: handle %q", ErrAmbiguousResult, handle)
	}
}

// IsHandleAvailable reports whether no user has the given handle.
// Unlike GetUserByHandle, duplicates are not an error here: any match means taken.
func (d *UserDirectory) IsHandleAvailable(ctx context.Context, handle string) (bool, error) {
	n, err := d.repo.CountByHandle(ctx, handle)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// SearchByHandle returns users whose handle contains sub, sorted by handle.
func (d *UserDirectory) SearchByHandle(ctx context.Context, sub string) ([]entity.User, error) {
	return d.repo.SearchByHandle(ctx, sub)
}

// SearchByFirstName returns users whose first name contains sub, sorted by first name.
func (d *UserDirectory) SearchByFirstName(ctx context.Context, sub string) ([]entity.User, error) {
	return d.repo.SearchByFirstName(ctx, sub)
}

// SearchByLastName returns users whose last name contains sub, sorted by last name.
func (d *UserDirectory) SearchByLastName(ctx context.Context, sub string) ([]entity.User, error) {
	return d.repo.SearchByLastName(ctx, sub)
}

// SearchByFirstOrLastName returns users whose first or last name contains sub,
// without duplicates, sorted by last name then first name.
func (d *UserDirectory) SearchByFirstOrLastName(ctx context.Context, sub string) ([]entity.User, error) {
	return d.repo.SearchByFirstOrLastName(ctx, sub)
}

// Search dispatches a substring search on the named field.
func (d *UserDirectory) Search(ctx context.Context, field SearchField, sub string) ([]entity.User, error) {
	switch field {
	case SearchFieldHandle:
		return d.SearchByHandle(ctx, sub)
	case SearchFieldFirstName:
		return d.SearchByFirstName(ctx, sub)
	case SearchFieldLastName:
		return d.SearchByLastName(ctx, sub)
	case SearchFieldName:
		return d.SearchByFirstOrLastName(ctx, sub)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSearchField, field)
	}
}
