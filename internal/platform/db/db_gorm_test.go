package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jitter_backend/internal/feature/directory/domain/entity"
)

// TestBuildDSN はPostgres用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
		SSLMode:  "require",
	}

	dsn := BuildDSN(cfg)

	assert.Equal(t, "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require", dsn)
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		assert.Equal(t, "test-dsn", dsn)
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel because this test takes time due to retry sleeps

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 10*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後に最後のエラーをラップして返すことを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, refused
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	assert.ErrorIs(t, err, refused)
	assert.Equal(t, 1, attempts)
}

// TestOpen_SQLite はSQLiteドライバーで接続しマイグレーションできることを検証します。
func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	db, err := Open(Config{
		Driver:        DriverSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "jitter.db"),
		RunMigrations: true,
	})

	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&entity.User{}))
}

// TestOpen_UnsupportedDriver は未対応のドライバー名でエラーが返されることを検証します。
func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{"mysql", "", DriverMemory} {
		_, err := Open(Config{Driver: driver})
		assert.Error(t, err, driver)
	}
}

// TestConfig_FromEnv は環境変数からデータベース設定が正しく読み込まれることを検証します。
func TestConfig_FromEnv(t *testing.T) {
	// Not parallel: modifies environment variables
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("DB_CONNECT_TIMEOUT", "5s")

	cfg, err := env.ParseAs[Config]()

	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "envuser", cfg.User)
	assert.Equal(t, "envpass", cfg.Password)
	assert.Equal(t, "envdb", cfg.Name)
	assert.Equal(t, "envhost", cfg.Host)
	assert.Equal(t, "5433", cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
}
