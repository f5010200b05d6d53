package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/auth"
	"github.com/alphamugerwa/authorshaven/internal/config"
	"github.com/alphamugerwa/authorshaven/internal/http/handlers"
	"github.com/alphamugerwa/authorshaven/internal/http/middlewares"
	"github.com/alphamugerwa/authorshaven/internal/observability"
	"github.com/alphamugerwa/authorshaven/internal/ratelimit"
	"github.com/alphamugerwa/authorshaven/internal/repo/postgres"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(log *slog.Logger, pool *pgxpool.Pool, cfg config.Config, prom *observability.Prom, limitStore ratelimit.Store) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(otelgin.Middleware("authorshaven-api"))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// wire up the user store, metered when metrics are on

	usersRepo := postgres.NewUsersRepo(pool)

	var profileStore handlers.ProfileStore = usersRepo
	var userCreator handlers.UserCreator = usersRepo

	if prom != nil {
		metered := postgres.NewMeteredUsersRepo(usersRepo, prom)
		profileStore = metered
		userCreator = metered
	}

	profilesHandler := handlers.NewProfilesHandler(profileStore)
	usersHandler := handlers.NewUsersHandler(userCreator)

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL)
	authMiddleware := middlewares.NewAuthMiddleware(jwtManager)

	limiter := middlewares.NewRateLimiter(limitStore, cfg.RateLimit, cfg.RateWindow)

	r.GET("/profiles/:username",
		limiter.RateLimiterMiddleware(middlewares.KeyByIP),
		profilesHandler.GetProfile,
	)

	r.PUT("/profile",
		middlewares.RequireJSON(),
		authMiddleware.RequireAuth(),
		limiter.RateLimiterMiddleware(middlewares.KeyByUserOrIP),
		profilesHandler.UpdateProfile,
	)

	r.GET("/users",
		limiter.RateLimiterMiddleware(middlewares.KeyByIP),
		profilesHandler.ListUsers,
	)

	r.POST("/users",
		middlewares.RequireJSON(),
		limiter.RateLimiterMiddleware(middlewares.KeyByIP),
		middlewares.ValidateCreateUser(),
		usersHandler.CreateUser,
	)

	return r
}
