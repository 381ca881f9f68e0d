// Package adapters はdirectoryフィーチャーのリポジトリ実装を提供します。
package adapters

import "strings"

// MatchMode は部分一致検索の大文字・小文字の扱いを表します。
// ハンドルの完全一致は常に大文字・小文字を区別します。
type MatchMode int

const (
	// CaseSensitive は大文字・小文字を区別して比較します（デフォルト）。
	CaseSensitive MatchMode = iota
	// CaseInsensitive は大文字・小文字を区別せずに比較します。
	CaseInsensitive
)

// contains reports whether sub is within s under the mode.
func (m MatchMode) contains(s, sub string) bool {
	if m == CaseInsensitive {
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}
	return strings.Contains(s, sub)
}
