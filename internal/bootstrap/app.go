package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/drafts"
	"resume-builder/internal/exports"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/web"
	"resume-builder/resume/model"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	Predefined    model.PredefinedData
	DraftsRepo    drafts.Repo
	ExportsRepo   exports.Repo
	DraftsService *drafts.Service
	ExportService *exports.Service
	Health        *health.Service
	DraftHandler  *drafts.Handler
	ExportHandler *exports.Handler
	WebHandler    *web.Handler
	RateLimiter   *middleware.RateLimiter
}

// Build prepares dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	predefined, err := model.LoadPredefined(cfg.PredefinedPath)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		DB:          sqlDB,
		Store:       store,
		Predefined:  predefined,
		RateLimiter: middleware.NewRateLimiter(nil),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		DraftHandler:  app.DraftHandler,
		ExportHandler: app.ExportHandler,
		WebHandler:    app.WebHandler,
		Health:        app.Health,
		Limiter:       app.RateLimiter,
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.db", map[string]any{"mode": "memory", "reason": "DATABASE_URL empty"})
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db", map[string]any{"mode": "memory", "err": err})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.migrate", map[string]any{"mode": "memory", "err": err})
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	var exportRepo exports.Repo
	if app.DB != nil {
		exportRepo = &exports.PGRepo{DB: app.DB}
	} else {
		exportRepo = exports.NewMemoryRepo()
	}
	draftRepo := drafts.NewMemoryRepo()

	draftSvc := drafts.NewService(draftRepo, app.Config.DraftTTL)
	exportSvc := &exports.Service{
		Repo:       exportRepo,
		Store:      app.Store,
		Archive:    app.Config.ArchiveExports,
		Predefined: app.Predefined,
	}

	app.DraftsRepo = draftRepo
	app.ExportsRepo = exportRepo
	app.DraftsService = draftSvc
	app.ExportService = exportSvc
	app.Health = health.NewService(draftSvc, app.DB, app.Config.ObjectStoreType, app.Config.ArchiveExports)
	app.DraftHandler = drafts.NewHandler(draftSvc, app.Predefined)
	app.ExportHandler = exports.NewHandler(exportSvc, draftSvc, app.Config.OperatorToken)
	app.WebHandler = web.NewHandler(draftSvc, app.Predefined, server.APIBase)
}
