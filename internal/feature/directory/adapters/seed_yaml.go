package adapters

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jitter_backend/internal/feature/directory/domain/entity"
)

// seedDocument はシードファイルのトップレベル構造です。
type seedDocument struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Handle    string `yaml:"handle"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// ErrEmptyHandle はシード内にハンドルが空のエントリがある場合に返されます。
var ErrEmptyHandle = errors.New("seed entry has empty handle")

// LoadSeedFile はYAMLシードファイルを読み込み、ファイル内の順序でユーザーを返します。
// 重複ハンドルはそのまま受け入れます（ストアは一意性を強制しません）。
func LoadSeedFile(path string) ([]entity.User, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(b)
}

// ParseSeed はYAMLバイト列をユーザーのスライスに変換します。
func ParseSeed(b []byte) ([]entity.User, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	users := make([]entity.User, 0, len(doc.Users))
	for i, su := range doc.Users {
		if su.Handle == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyHandle, i)
		}
		users = append(users, entity.User{
			Handle:    su.Handle,
			FirstName: su.FirstName,
			LastName:  su.LastName,
		})
	}
	return users, nil
}
