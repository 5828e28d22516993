package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/newspulse/api/admin"
	adminhandlers "github.com/newspulse/api/admin/handlers"
	adminservices "github.com/newspulse/api/admin/services"
	"github.com/newspulse/api/auth"
	authhandlers "github.com/newspulse/api/auth/handlers"
	"github.com/newspulse/api/auth/oauth"
	authrepo "github.com/newspulse/api/auth/repository"
	authservices "github.com/newspulse/api/auth/services"
	"github.com/newspulse/api/banners"
	bannerhandlers "github.com/newspulse/api/banners/handlers"
	bannerrepo "github.com/newspulse/api/banners/repository"
	bannerservices "github.com/newspulse/api/banners/services"
	"github.com/newspulse/api/bookmarks"
	bookmarkhandlers "github.com/newspulse/api/bookmarks/handlers"
	bookmarkrepo "github.com/newspulse/api/bookmarks/repository"
	bookmarkservices "github.com/newspulse/api/bookmarks/services"
	"github.com/newspulse/api/categories"
	categoryhandlers "github.com/newspulse/api/categories/handlers"
	categoryrepo "github.com/newspulse/api/categories/repository"
	categoryservices "github.com/newspulse/api/categories/services"
	engrepo "github.com/newspulse/api/engagement/repository"
	engservices "github.com/newspulse/api/engagement/services"
	"github.com/newspulse/api/internal/cache"
	"github.com/newspulse/api/internal/database/postgres"
	"github.com/newspulse/api/internal/pkg/log"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	platformemail "github.com/newspulse/api/internal/platform/email"
	"github.com/newspulse/api/news"
	newshandlers "github.com/newspulse/api/news/handlers"
	newsrepo "github.com/newspulse/api/news/repository"
	newsservices "github.com/newspulse/api/news/services"
	"github.com/newspulse/api/profile"
	profilehandlers "github.com/newspulse/api/profile/handlers"
	profileservices "github.com/newspulse/api/profile/services"
	"github.com/newspulse/api/storage"
	storagehandlers "github.com/newspulse/api/storage/handlers"
	storageprovider "github.com/newspulse/api/storage/provider"
	storageservices "github.com/newspulse/api/storage/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Error("Failed to connect to postgres: %v", err)
		os.Exit(1)
	}
	defer pgClient.Close()

	if !cfg.Redis.Enabled {
		log.Error("Redis is required: refresh sessions and OTP codes live there. Set REDIS_ENABLED=true.")
		os.Exit(1)
	}
	store, err := cache.NewStore(&cfg.Redis)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	var sender platformemail.Sender
	if cfg.Email.SMTPHost != "" {
		sender, err = platformemail.NewSMTPSender(cfg.Email.SMTPHost, strconv.Itoa(cfg.Email.SMTPPort), cfg.Email.SMTPUser, cfg.Email.SMTPPass)
		if err != nil {
			log.Error("Failed to configure SMTP: %v", err)
			os.Exit(1)
		}
	} else {
		log.Warn("SMTP not configured; reset codes are logged instead of mailed")
		sender = logSender{}
	}

	// Repositories
	userRepo := authrepo.NewPostgresRepository(pgClient)
	newsRepo := newsrepo.NewPostgresRepository(pgClient)
	categoryRepo := categoryrepo.NewPostgresRepository(pgClient)
	bannerRepo := bannerrepo.NewPostgresRepository(pgClient)
	bookmarkRepo := bookmarkrepo.NewPostgresRepository(pgClient)
	engagementRepo := engrepo.NewPostgresRepository(pgClient)

	// Services
	engagementService := engservices.NewService(engagementRepo, newsRepo, bookmarkRepo)
	newsService := newsservices.NewService(newsRepo, engagementService, categoryRepo)
	bookmarkService := bookmarkservices.NewService(bookmarkRepo, newsService)
	categoryService := categoryservices.NewService(categoryRepo)
	bannerService := bannerservices.NewService(bannerRepo, newsRepo)
	profileService := profileservices.NewService(userRepo)
	adminService := adminservices.NewService(userRepo, newsService, categoryRepo, engagementRepo, bookmarkRepo)

	tokenService := authservices.NewTokenService(cfg.JWT)
	authService := authservices.NewService(userRepo, tokenService, store)
	verificationService := authservices.NewVerificationService(userRepo, store, store, sender, cfg.Email, cfg.App.Name)

	var oauthHandler *oauth.Handler
	if cfg.OAuth.GoogleClientID != "" {
		oauthService := oauth.NewService(oauth.NewGoogleConfig(cfg.OAuth), userRepo, tokenService, store)
		oauthHandler = oauth.NewHandler(oauthService)
	} else {
		log.Warn("Google sign-in disabled: GOOGLE_CLIENT_ID is not set")
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Guest-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.RegisterRoutes(app, &auth.Handlers{
		AuthHandler:  authhandlers.NewAuthHandler(authService, verificationService),
		OAuthHandler: oauthHandler,
	}, cfg)
	news.RegisterRoutes(app, &news.Handlers{
		NewsHandler:      newshandlers.NewNewsHandler(newsService, engagementService),
		AdminNewsHandler: newshandlers.NewAdminNewsHandler(newsService),
	}, cfg)
	bookmarks.RegisterRoutes(app, &bookmarks.Handlers{
		BookmarkHandler: bookmarkhandlers.NewBookmarkHandler(bookmarkService),
	}, cfg)
	categories.RegisterRoutes(app, &categories.Handlers{
		CategoryHandler: categoryhandlers.NewCategoryHandler(categoryService),
	}, cfg)
	banners.RegisterRoutes(app, &banners.Handlers{
		BannerHandler: bannerhandlers.NewBannerHandler(bannerService),
	}, cfg)
	profile.RegisterRoutes(app, &profile.Handlers{
		ProfileHandler: profilehandlers.NewProfileHandler(profileService),
	}, cfg)
	admin.RegisterRoutes(app, &admin.Handlers{
		AdminHandler: adminhandlers.NewAdminHandler(adminService),
	}, cfg)

	if cfg.Storage.AccessKeyID != "" {
		blobs, err := storageprovider.NewS3Provider(&cfg.Storage)
		if err != nil {
			log.Error("Failed to configure object storage: %v", err)
			os.Exit(1)
		}
		storage.RegisterRoutes(app, &storage.Handlers{
			StorageHandler: storagehandlers.NewStorageHandler(storageservices.NewService(blobs, cfg.Storage.PublicBaseURL)),
		}, cfg)
	} else {
		log.Warn("Object storage disabled: STORAGE_ACCESS_KEY_ID is not set")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Info("Listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("Forced shutdown: %v", err)
	}
}

// logSender stands in for SMTP in development. It logs reset codes instead
// of mailing them.
type logSender struct{}

func (logSender) Send(_ context.Context, msg platformemail.Message) error {
	log.Info("Email to %v: %s / %s", msg.To, msg.Subject, msg.Body)
	return nil
}
