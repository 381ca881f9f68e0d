package adapters

import (
	"cmp"
	"context"
	"slices"

	"jitter_backend/internal/feature/directory/domain/entity"
	"jitter_backend/internal/feature/directory/usecase"
)

// userMemory はスライスを保持するUserRepositoryのインメモリ実装です。
// DB_DRIVER=memory での起動と、リポジトリ契約テストに使用します。
type userMemory struct {
	users []entity.User
	mode  MatchMode
}

var _ usecase.UserRepository = (*userMemory)(nil)

// NewUserMemory はusersのコピーを保持するuserMemoryを生成します。
// スライスの順序が挿入順として扱われます。
func NewUserMemory(users []entity.User, mode MatchMode) *userMemory {
	return &userMemory{users: slices.Clone(users), mode: mode}
}

func (r *userMemory) ListAll(ctx context.Context) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.users), nil
}

func (r *userMemory) FindByHandle(ctx context.Context, handle string, limit int) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []entity.User{}
	for _, u := range r.users {
		if u.Handle != handle {
			continue
		}
		out = append(out, u)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *userMemory) CountByHandle(ctx context.Context, handle string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int64
	for _, u := range r.users {
		if u.Handle == handle {
			n++
		}
	}
	return n, nil
}

func (r *userMemory) SearchByHandle(ctx context.Context, sub string) ([]entity.User, error) {
	return r.search(ctx, func(u entity.User) bool {
		return r.mode.contains(u.Handle, sub)
	}, func(a, b entity.User) int {
		return cmp.Compare(a.Handle, b.Handle)
	})
}

func (r *userMemory) SearchByFirstName(ctx context.Context, sub string) ([]entity.User, error) {
	return r.search(ctx, func(u entity.User) bool {
		return r.mode.contains(u.FirstName, sub)
	}, func(a, b entity.User) int {
		return cmp.Or(
			cmp.Compare(a.FirstName, b.FirstName),
			cmp.Compare(a.Handle, b.Handle),
		)
	})
}

func (r *userMemory) SearchByLastName(ctx context.Context, sub string) ([]entity.User, error) {
	return r.search(ctx, func(u entity.User) bool {
		return r.mode.contains(u.LastName, sub)
	}, func(a, b entity.User) int {
		return cmp.Or(
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.Handle, b.Handle),
		)
	})
}

func (r *userMemory) SearchByFirstOrLastName(ctx context.Context, sub string) ([]entity.User, error) {
	return r.search(ctx, func(u entity.User) bool {
		return r.mode.contains(u.FirstName, sub) || r.mode.contains(u.LastName, sub)
	}, func(a, b entity.User) int {
		return cmp.Or(
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.FirstName, b.FirstName),
			cmp.Compare(a.Handle, b.Handle),
		)
	})
}

// search filters in insertion order, then stable-sorts so equal keys keep insertion order.
func (r *userMemory) search(ctx context.Context, match func(entity.User) bool, order func(a, b entity.User) int) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []entity.User{}
	for _, u := range r.users {
		if match(u) {
			out = append(out, u)
		}
	}
	slices.SortStableFunc(out, order)
	return out, nil
}
