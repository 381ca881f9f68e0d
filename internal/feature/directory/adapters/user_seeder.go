package adapters

import (
	"context"

	"gorm.io/gorm"

	"jitter_backend/internal/feature/directory/domain/entity"
)

const seedBatchSize = 200

// userSeeder はシードデータをストアに書き込みます。
// ディレクトリ自体は読み取り専用のため、書き込みはこの型に限定します。
type userSeeder struct {
	db *gorm.DB
}

// NewUserSeeder は指定されたgorm.DB接続でuserSeederを生成します。
func NewUserSeeder(db *gorm.DB) *userSeeder {
	return &userSeeder{db: db}
}

// Seed はusersを順序どおりにバッチ挿入し、挿入件数を返します。
func (s *userSeeder) Seed(ctx context.Context, users []entity.User) (int64, error) {
	if len(users) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).CreateInBatches(users, seedBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
