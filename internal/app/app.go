package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/store-api/internal/cfg"
	v1Http "github.com/DRSN-tech/store-api/internal/delivery/v1/http"
	"github.com/DRSN-tech/store-api/internal/infrastructure/kafka"
	"github.com/DRSN-tech/store-api/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/store-api/internal/repository/pgdb/converter"
	redisRepo "github.com/DRSN-tech/store-api/internal/repository/redis"
	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/closer"
	"github.com/DRSN-tech/store-api/pkg/clients"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/DRSN-tech/store-api/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = time.Minute
	shutdownTimeout = 10 * time.Second
	topicTimeout    = 10 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

// NewApp поднимает все зависимости API. Ресурсы регистрируются в closer
// в порядке создания и закрываются в обратном.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	c := closer.NewCloser(0)

	db, err := initPGDB(ctx, logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.AddNamed("postgres", func(context.Context) error {
		db.Close()
		return nil
	})

	cache, err := initCache(ctx, logger, cfg, c)
	if err != nil {
		_ = c.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	publisher := initPublisher(logger, cfg, c)

	prConv := pgdbConv.NewProductConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl(prConv, userConv)

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)

	productUC := usecase.NewProductUC(productRepo, db.Pool, cache, logger)
	userUC := usecase.NewUserUC(userRepo, logger)
	orderUC := usecase.NewOrderUC(orderRepo, userRepo, productRepo, db.Pool, publisher, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(productUC, userUC, orderUC, db)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.AddNamed("http", httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  logger,
		closer:  c,
		httpSrv: httpSrv,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on %s", a.httpSrv.Addr())
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("Received %s, stopping gracefully...", sig)
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db, logger)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		db.Close()
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// initCache подключает Redis, если он настроен. Иначе кэш отключён.
func initCache(ctx context.Context, logger logger.Logger, cfg *config.Config, c *closer.Closer) (usecase.ProductCache, error) {
	if !cfg.Redis.Enabled {
		logger.Infof("REDIS_ADDR is not set, product cache disabled")
		return redisRepo.NopCache{}, nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	if err := redisClient.Ping(ctx); err != nil {
		_ = redisClient.Close()
		logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.AddNamed("redis", func(context.Context) error {
		return redisClient.Close()
	})

	return redisRepo.NewCacheRepo(redisClient, cfg.Redis, logger), nil
}

// initPublisher создаёт продюсера Kafka, если брокеры заданы.
// Недоступный брокер не мешает старту: события просто не доставляются.
func initPublisher(logger logger.Logger, cfg *config.Config, c *closer.Closer) usecase.OrderEventPublisher {
	if !cfg.Kafka.Enabled {
		logger.Infof("KAFKA_BROKERS is not set, order events disabled")
		return kafka.NopPublisher{}
	}

	producer := kafka.NewProducer(logger, cfg.Kafka)
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		logger.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
	}
	c.AddNamed("kafka", func(context.Context) error {
		return producer.Close()
	})

	return producer
}
