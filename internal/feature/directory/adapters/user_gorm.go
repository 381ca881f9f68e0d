package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jitter_backend/internal/feature/directory/domain/entity"
	"jitter_backend/internal/feature/directory/usecase"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
// 部分一致はLIKEではなくINSTR/STRPOSで評価するため、ワイルドカード文字のエスケープは不要です。
type userGorm struct {
	db   *gorm.DB
	mode MatchMode
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserGorm(db *gorm.DB, mode MatchMode) *userGorm {
	return &userGorm{db: db, mode: mode}
}

// ListAll は挿入順（ID昇順）ですべてのユーザーを返します。
func (r *userGorm) ListAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByHandle はハンドルが完全一致するユーザーを最大limit件返します。
func (r *userGorm) FindByHandle(ctx context.Context, handle string, limit int) ([]entity.User, error) {
	q := r.db.WithContext(ctx).
		Where("handle = ?", handle).
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var users []entity.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountByHandle はハンドルが完全一致するユーザー数を返します。
func (r *userGorm) CountByHandle(ctx context.Context, handle string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("handle = ?", handle).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// SearchByHandle はハンドルにsubを含むユーザーをハンドル順で返します。
func (r *userGorm) SearchByHandle(ctx context.Context, sub string) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where(r.containsExpr("handle"), sub).
		Order(r.orderBy("handle", "id")).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SearchByFirstName は名にsubを含むユーザーを名順（同名はハンドル順）で返します。
func (r *userGorm) SearchByFirstName(ctx context.Context, sub string) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where(r.containsExpr("first_name"), sub).
		Order(r.orderBy("first_name", "handle", "id")).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SearchByLastName は姓にsubを含むユーザーを姓順（同姓はハンドル順）で返します。
func (r *userGorm) SearchByLastName(ctx context.Context, sub string) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where(r.containsExpr("last_name"), sub).
		Order(r.orderBy("last_name", "handle", "id")).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SearchByFirstOrLastName は名または姓にsubを含むユーザーを姓→名の順で返します。
// 1行につき1件なので、両方に一致しても重複しません。
func (r *userGorm) SearchByFirstOrLastName(ctx context.Context, sub string) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where(r.containsExpr("first_name"), sub).
		Or(r.containsExpr("last_name"), sub).
		Order(r.orderBy("last_name", "first_name", "handle", "id")).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// containsExpr はcolumnが1つのプレースホルダー値を含むかを判定するSQL式を返します。
// 空文字列はすべての値に含まれます。
func (r *userGorm) containsExpr(column string) string {
	col, arg := column, "?"
	if r.mode == CaseInsensitive {
		col, arg = "LOWER("+column+")", "LOWER(?)"
	}
	if r.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("STRPOS(%s, %s) > 0", col, arg)
	}
	return fmt.Sprintf("INSTR(%s, %s) > 0", col, arg)
}

// orderBy は昇順のORDER BY句を組み立てます。
// Postgresではバイト順になるようCOLLATE "C"を付与し、SQLite(BINARY)やGoの文字列比較と揃えます。
func (r *userGorm) orderBy(columns ...string) string {
	postgres := r.db.Dialector.Name() == "postgres"
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		if postgres && c != "id" {
			c += ` COLLATE "C"`
		}
		out += c + " ASC"
	}
	return out
}
