package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	directoryhandler "jitter_backend/internal/feature/directory/transport/handler"
	healthhandler "jitter_backend/internal/platform/http/handler"
	jwtmw "jitter_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine. When jwtSecret is empty the directory
// routes are served without authentication.
func NewRouter(health *healthhandler.HealthHandler, directory *directoryhandler.DirectoryHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	api := r.Group("/")
	if jwtSecret != "" {
		api.Use(jwtmw.AuthRequired(jwtSecret))
	} else {
		slog.Warn("JWT_SECRET is not set; directory routes are unauthenticated")
	}
	{
		api.GET("/users", directory.List)
		api.GET("/users/:handle", directory.Get)
		api.GET("/users/:handle/availability", directory.Availability)
		api.GET("/search/users", directory.Search)
	}

	return r
}
