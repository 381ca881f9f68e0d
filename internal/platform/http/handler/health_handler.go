// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout はストア疎通確認の上限時間です。
const pingTimeout = 2 * time.Second

// Pinger はストアの疎通確認を行います。*sql.DB が満たします。
// memoryドライバーではnilを渡し、疎通確認を省略します。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler は新しい HealthHandler を作成します。
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health はストアへの疎通を確認し、結果を返します。
// HEADは本文なし、OPTIONSは204、ストアに到達できない場合は503を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	status := http.StatusOK
	body := gin.H{"status": "ok"}
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := h.store.PingContext(ctx); err != nil {
			slog.Error("store ping failed", "error", err)
			status = http.StatusServiceUnavailable
			body = gin.H{"status": "unavailable"}
		}
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}
