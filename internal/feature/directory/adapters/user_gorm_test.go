package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jitter_backend/internal/feature/directory/domain/entity"
)

// TestNewUserGorm はNewUserGormコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewUserGorm(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserGorm(db, CaseSensitive)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
	assert.Equal(t, CaseSensitive, repo.mode)
}

// TestUserGorm_ContainsExpr はダイアレクトと大文字・小文字の設定ごとに生成されるSQL式を検証します。
func TestUserGorm_ContainsExpr(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	assert.Equal(t, "INSTR(handle, ?) > 0", NewUserGorm(db, CaseSensitive).containsExpr("handle"))
	assert.Equal(t, "INSTR(LOWER(handle), LOWER(?)) > 0", NewUserGorm(db, CaseInsensitive).containsExpr("handle"))
	assert.Equal(t, "last_name ASC, first_name ASC, id ASC", NewUserGorm(db, CaseSensitive).orderBy("last_name", "first_name", "id"))
}

// TestUserGorm_ListAll_FieldValues はListAllが返すユーザーの全フィールド値が正しいことを検証します。
func TestUserGorm_ListAll_FieldValues(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserGorm(db, CaseSensitive)

	expected := entity.User{Handle: "adam1", FirstName: "Adam", LastName: "Rice"}
	seedUsers(t, db, expected)

	users, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotZero(t, users[0].ID)
	assert.Equal(t, "adam1", users[0].Handle)
	assert.Equal(t, "Adam", users[0].FirstName)
	assert.Equal(t, "Rice", users[0].LastName)
	assert.False(t, users[0].CreatedAt.IsZero(), "CreatedAt should be set")
}

// TestUserGorm_OptionalNamesStoredEmpty は名前を省略したユーザーが空文字列として保存され、空文字検索に一致することを検証します。
func TestUserGorm_OptionalNamesStoredEmpty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserGorm(db, CaseSensitive)
	seedUsers(t, db, entity.User{Handle: "nameless"})

	var nulls int64
	require.NoError(t, db.Model(&entity.User{}).Where("first_name IS NULL OR last_name IS NULL").Count(&nulls).Error)
	assert.Zero(t, nulls)

	found, err := repo.SearchByFirstOrLastName(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

// TestUserGorm_StoreError はストアのエラーが変換されずにそのまま返されることを検証します。
func TestUserGorm_StoreError(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserGorm(db, CaseSensitive)
	require.NoError(t, db.Migrator().DropTable(&entity.User{}))

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)

	_, err = repo.CountByHandle(context.Background(), "adam1")
	assert.Error(t, err)

	_, err = repo.SearchByHandle(context.Background(), "a")
	assert.Error(t, err)
}

// TestUserGorm_ContextCancellation はコンテキストがキャンセルされた場合の動作を検証します。
func TestUserGorm_ContextCancellation(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserGorm(db, CaseSensitive)
	seedUsers(t, db, entity.User{Handle: "adam1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// SQLiteはキャンセル済みコンテキストで常にエラーを返すとは限らない
	_, err := repo.SearchByHandle(ctx, "adam")
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// TestUserSeeder_Seed はシードデータが順序どおりに挿入されることを検証します。
func TestUserSeeder_Seed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		users     []entity.User
		wantCount int64
	}{
		{
			name:      "success: inserts in order",
			users:     []entity.User{u("treehugger", "Samuel", "Olson"), u("adam1", "Adam", "Rice")},
			wantCount: 2,
		},
		{
			name:      "success: duplicates are accepted",
			users:     []entity.User{u("adam1", "", ""), u("adam1", "", "")},
			wantCount: 2,
		},
		{
			name:      "success: empty input is a no-op",
			users:     nil,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			n, err := NewUserSeeder(db).Seed(context.Background(), tt.users)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, n)

			all, err := NewUserGorm(db, CaseSensitive).ListAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, handles(tt.users), handles(all))
		})
	}
}

// TestUserSeeder_Seed_Error はテーブルが存在しない場合にエラーが返されることを検証します。
func TestUserSeeder_Seed_Error(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&entity.User{}))

	_, err := NewUserSeeder(db).Seed(context.Background(), []entity.User{u("adam1", "", "")})

	assert.Error(t, err)
}
