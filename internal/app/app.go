// Package app connects the stores and assembles the services shared by the
// server and the seed tool.
package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"certpoints/internal/cache"
	"certpoints/internal/config"
	"certpoints/internal/dedupe"
	"certpoints/internal/docs"
	"certpoints/internal/logger"
	"certpoints/internal/model"
	"certpoints/internal/points"
	"certpoints/internal/repository"
	"certpoints/internal/service"
	"certpoints/internal/transport/rest"
	"certpoints/internal/transport/ws"
)

const pingTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Log    logger.Logger

	Mongo *mongo.Client
	Redis *redis.Client
	DB    *mongo.Database

	Catalog *service.CatalogService
	Hub     *ws.Hub
}

// Open connects to MongoDB and Redis and builds the rule catalog
func Open(ctx context.Context, conf *config.Config, lg logger.Logger) (*App, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.MongoURI))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		mongoClient.Disconnect(ctx)
		return nil, errors.Wrap(err, "pinging MongoDB")
	}
	log.Println("Connected to MongoDB")

	rdb := redis.NewClient(&redis.Options{
		Addr: conf.RedisAddr(),
	})
	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		rdb.Close()
		mongoClient.Disconnect(ctx)
		return nil, errors.Wrap(err, "pinging Redis")
	}
	log.Println("Connected to Redis")

	db := mongoClient.Database(conf.MongoDB)
	return &App{
		Config: conf,
		Log:    lg,
		Mongo:  mongoClient,
		Redis:  rdb,
		DB:     db,
		Catalog: service.NewCatalogService(
			repository.NewActivityRepo(db),
			cache.NewCatalogCache(rdb, conf.CatalogCacheTTL),
			lg,
		),
	}, nil
}

// Handler wires the upload pipeline, review feed and HTTP routes
func (a *App) Handler() (http.Handler, error) {
	conf := a.Config

	files, err := service.NewFileStore(conf.UploadDir, conf.MaxUploadBytes())
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(a.DB)
	certRepo := repository.NewCertificateRepo(a.DB)

	// OCR and NLP services are optional
	ocrClient := service.NewOCRClient(conf.OCR)
	var ocr service.OCRProcessor
	if conf.OCR.OCREnabled() {
		ocr = ocrClient
	}
	var remote service.EntityExtractor
	if conf.OCR.NLPEnabled() {
		remote = ocrClient
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, conf.JWTSecret, conf.JWTTTL)
	certSvc := service.NewCertificateService(
		certRepo,
		userRepo,
		cache.NewLeaderboardCache(a.Redis),
		ocr,
		service.NewEntityService(remote, model.StandardDefaults, a.Log),
		points.NewEngine(a.Catalog, points.DefaultPolicy(), a.Log),
		dedupe.NewMatcher(dedupe.DefaultWeights),
		files,
		a.Log,
	)

	docs.SwaggerInfo.Host = conf.Host + ":" + conf.Port

	// Inject broadcaster (the hub implements service.Broadcaster)
	a.Hub = ws.NewHub()
	certSvc.SetBroadcaster(a.Hub)

	return rest.NewRouter(&rest.Container{
		AuthService:        authSvc,
		CatalogService:     a.Catalog,
		CertificateService: certSvc,
		WSHub:              a.Hub,
		MaxUploadBytes:     conf.MaxUploadBytes(),
		CORSAllowedOrigins: conf.CORSAllowedOrigins,
	}), nil
}

// Close stops the review feed and disconnects the stores
func (a *App) Close(ctx context.Context) {
	if a.Hub != nil {
		a.Hub.Close()
	}
	if err := a.Redis.Close(); err != nil {
		a.Log.Warn("closing Redis", err)
	}
	if err := a.Mongo.Disconnect(ctx); err != nil {
		a.Log.Warn("disconnecting MongoDB", err)
	}
}
