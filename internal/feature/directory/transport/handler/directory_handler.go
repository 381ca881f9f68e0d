// Package handler はdirectoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jitter_backend/internal/feature/directory/domain/entity"
	"jitter_backend/internal/feature/directory/transport/http/dto"
	"jitter_backend/internal/feature/directory/usecase"
)

// DirectoryUsecase はユーザーディレクトリのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DirectoryUsecase interface {
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*entity.User, error)
	IsHandleAvailable(ctx context.Context, handle string) (bool, error)
	Search(ctx context.Context, field usecase.SearchField, sub string) ([]entity.User, error)
}

// DirectoryHandler はユーザーディレクトリのHTTPリクエストを処理します。
type DirectoryHandler struct {
	uc DirectoryUsecase
}

// NewDirectoryHandler は新しい DirectoryHandler を作成します。
func NewDirectoryHandler(uc DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// List は全ユーザーを登録順で返します。
//
// エンドポイント例:
// GET /users
func (h *DirectoryHandler) List(c *gin.Context) {
	users, err := h.uc.GetAllUsers(c.Request.Context())
	if err != nil {
		internalError(c, "list users failed", err)
		return
	}
	c.JSON(http.StatusOK, toItems(users))
}

// Get はハンドルが完全一致するユーザーを返します。
// - 該当なしは404
// - ハンドル重複（データ不整合）は409
//
// エンドポイント例:
// GET /users/:handle
func (h *DirectoryHandler) Get(c *gin.Context) {
	handle := c.Param("handle")
	user, err := h.uc.GetUserByHandle(c.Request.Context(), handle)
	if err != nil {
		if errors.Is(err, usecase.ErrAmbiguousResult) {
			slog.Warn("duplicate handle detected", "handle", handle, "error", err)
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "handle is ambiguous"})
			return
		}
		internalError(c, "get user failed", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, toItem(*user))
}

// Availability はハンドルが未使用かどうかを返します。
//
// エンドポイント例:
// GET /users/:handle/availability
func (h *DirectoryHandler) Availability(c *gin.Context) {
	handle := c.Param("handle")
	ok, err := h.uc.IsHandleAvailable(c.Request.Context(), handle)
	if err != nil {
		internalError(c, "availability check failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.AvailabilityResponse{Handle: handle, Available: ok})
}

// Search は指定フィールドの部分一致でユーザーを検索します。
// byを省略した場合は名または姓で検索します。qは必須ですが空文字列は全件一致として扱います。
//
// エンドポイント例:
// GET /search/users?by=handle&q=tree
func (h *DirectoryHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if _, ok := c.GetQuery("q"); !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing query parameter q"})
		return
	}
	field := usecase.SearchFieldName
	if q.By != "" {
		field = usecase.SearchField(q.By)
	}

	users, err := h.uc.Search(c.Request.Context(), field, q.Q)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSearchField) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, "search failed", err)
		return
	}
	c.JSON(http.StatusOK, toItems(users))
}

// internalError はストアのエラー詳細を公開せずに500を返します。
func internalError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
}

func toItem(u entity.User) dto.UserItem {
	return dto.UserItem{Handle: u.Handle, FirstName: u.FirstName, LastName: u.LastName}
}

func toItems(users []entity.User) []dto.UserItem {
	out := make([]dto.UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, toItem(u))
	}
	return out
}
