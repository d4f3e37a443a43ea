package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	assethandler "twala_backend/internal/feature/assets/transport/handler"
	notificationhandler "twala_backend/internal/feature/notifications/transport/handler"
	onboardinghandler "twala_backend/internal/feature/onboarding/transport/handler"
	platformhandler "twala_backend/internal/platform/http/handler"
	jwtmw "twala_backend/internal/platform/jwt"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health        *platformhandler.HealthHandler
	Assets        *assethandler.AssetHandler
	Onboarding    *onboardinghandler.GateHandler
	Notifications *notificationhandler.NotificationHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	JWTSecret   string
	CORSOrigins []string
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Webクライアントからのアクセスを許可
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", onboardinghandler.ViewportWidthHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.GET("/assets", h.Assets.Search)
		auth.GET("/assets/:id", h.Assets.Get)
		auth.GET("/sectors", h.Assets.Sectors)
		auth.GET("/sectors/:sector/assets", h.Assets.BySector)

		auth.GET("/onboarding", h.Onboarding.Evaluate)
		auth.POST("/onboarding/prerequisites/:kind/dismiss", h.Onboarding.Dismiss)
		auth.POST("/onboarding/prerequisites/:kind/action", h.Onboarding.Act)
		auth.POST("/onboarding/reset", h.Onboarding.Reset)
		auth.DELETE("/onboarding/session", h.Onboarding.End)

		auth.GET("/notifications", h.Notifications.List)
		auth.DELETE("/notifications/:id", h.Notifications.Dismiss)
	}

	return r
}
