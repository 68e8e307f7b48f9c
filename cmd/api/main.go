package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mediavault/internal/cache"
	"mediavault/internal/config"
	"mediavault/internal/db"
	"mediavault/internal/handler/api"
	"mediavault/internal/logger"
	"mediavault/internal/mailer"
	cMiddleware "mediavault/internal/middleware"
	"mediavault/internal/oauth"
	"mediavault/internal/port"
	"mediavault/internal/renderer"
	"mediavault/internal/repository/mariadb"
	"mediavault/internal/session"
	"mediavault/internal/storage"
	"mediavault/internal/task"
	authSvc "mediavault/internal/usecase/auth"
	mediaSvc "mediavault/internal/usecase/media"
	msuuid "mediavault/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "❌  REDIS_ADDR is required, sessions live in redis")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(cfg.Bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.Bucket, err)
		os.Exit(1)
	}

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	userRepo := mariadb.NewUserRepository(database.DB)

	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	sessions := initSessions(ctx, cfg)

	r := initRouter(ctx)
	jwtSecret := []byte(cfg.JWTSecret)

	// --- auth routes ---

	magicLinkSvc := authSvc.NewMagicLink(userRepo, sessions, initMailer(ctx, cfg), msuuid.NewUUID, cfg.JWTSecret, cfg.SessionTTL, cfg.AppBaseURL)
	r.Post("/auth/magic_link", api.RequestMagicLinkHandler(magicLinkSvc))
	r.Get("/auth/magic_link/verify", api.VerifyMagicLinkHandler(magicLinkSvc, cfg.AppBaseURL))

	oauthSvc := authSvc.NewOAuth(initProviders(ctx, cfg), userRepo, sessions, msuuid.NewUUID, cfg.JWTSecret, cfg.SessionTTL)
	r.Get("/auth/oauth/{provider}", api.StartOAuthHandler(oauthSvc))
	r.Get("/auth/oauth/{provider}/callback", api.OAuthCallbackHandler(oauthSvc, cfg.AppBaseURL))

	sessionSvc := authSvc.NewSession(userRepo, sessions)
	withAuth := cMiddleware.WithSessionAuth(jwtSecret, sessions)
	r.With(withAuth).Get("/auth/session", api.GetSessionHandler(sessionSvc))
	r.With(withAuth).Post("/auth/sign_out", api.SignOutHandler(sessionSvc))
	r.With(withAuth).Get("/auth/session/events", api.SessionEventsHandler(sessions))

	// --- media routes ---

	uploaderSvc := mediaSvc.NewMediaUploader(mediaRepo, strg, ca, dispatcher, msuuid.NewUUID, cfg.Bucket)
	r.With(withAuth).Post("/medias", api.UploadMediaHandler(uploaderSvc))

	rendererSvc := renderer.NewHTTPRenderer(ca)
	listerSvc := mediaSvc.NewMediaLister(mediaRepo, strg, cfg.Bucket)
	r.With(withAuth).Get("/medias", api.ListMediasHandler(rendererSvc, listerSvc))

	getterSvc := mediaSvc.NewMediaGetter(mediaRepo, strg, cfg.Bucket)
	r.With(withAuth, cMiddleware.WithMediaID()).
		Get("/medias/{id}", api.GetMediaHandler(rendererSvc, getterSvc))

	updaterSvc := mediaSvc.NewMediaUpdater(mediaRepo, ca, strg, cfg.Bucket)
	r.With(withAuth, cMiddleware.WithMediaID()).
		Patch("/medias/{id}", api.UpdateMediaHandler(updaterSvc))

	deleterSvc := mediaSvc.NewMediaDeleter(mediaRepo, ca, strg, cfg.Bucket)
	r.With(withAuth, cMiddleware.WithMediaID()).
		Delete("/medias/{id}", api.DeleteMediaHandler(deleterSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.PublicBaseURL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initSessions(ctx context.Context, cfg *config.Settings) *session.Store {
	sessions := session.NewStore(cfg.RedisAddr, cfg.RedisPassword)
	if err := sessions.Ping(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to redis: %v", err)
		os.Exit(1)
	}

	return sessions
}

func initMailer(ctx context.Context, cfg *config.Settings) port.Mailer {
	if cfg.BrevoAPIKey == "" {
		logger.Warn(ctx, "⚠️  Mail API not configured, sign-in links are printed to the log")
		return mailer.NewLogMailer()
	}
	return mailer.NewBrevoMailer(cfg.BrevoAPIKey, cfg.BrevoFromEmail, cfg.BrevoFromName)
}

func initProviders(ctx context.Context, cfg *config.Settings) []port.OAuthProvider {
	var providers []port.OAuthProvider
	if cfg.GithubClientID != "" && cfg.GithubClientSecret != "" {
		providers = append(providers, oauth.NewGithubProvider(cfg.GithubClientID, cfg.GithubClientSecret, cfg.GithubCallbackURL))
	} else {
		logger.Warn(ctx, "⚠️  GitHub OAuth not configured")
	}
	return providers
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
