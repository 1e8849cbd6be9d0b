package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/groph-points/internal/cache/rediscache"
	"github.com/fsdevblog/groph-points/internal/config"
	"github.com/fsdevblog/groph-points/internal/logger"
	"github.com/fsdevblog/groph-points/internal/metrics"
	"github.com/fsdevblog/groph-points/internal/repository/memrepo"
	"github.com/fsdevblog/groph-points/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-points/internal/service"
	"github.com/fsdevblog/groph-points/internal/transport/api"
	"github.com/fsdevblog/groph-points/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logger.Component(a.Logger, "app")
	l.WithFields(logrus.Fields{
		"address":   a.Config.RunAddress,
		"inMemory":  a.Config.InMemory(),
		"withCache": a.Config.RedisAddress != "",
	}).Info("starting app")

	unitOfWork, closeStore, uowErr := a.initUOW(notifyCtx)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}
	defer closeStore()

	cache, closeCache, cacheErr := a.initCache(notifyCtx)
	if cacheErr != nil {
		return fmt.Errorf("app run: %s", cacheErr.Error())
	}
	defer closeCache()

	metrics.Init()

	services, sErr := service.Factory(unitOfWork, cache, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:       a.Logger,
		PointService: services.PointService,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		l.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// initUOW выбирает хранилище: postgres, если задан DSN, иначе in-memory.
func (a *App) initUOW(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.InMemory() {
		unitOfWork := uow.NewMemoryUnitOfWork()
		if err := memrepo.Register(unitOfWork, a.Config.StoreLatency); err != nil {
			return nil, nil, fmt.Errorf("init UOW: %s", err.Error())
		}
		return unitOfWork, func() {}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("init UOW: %s", connErr.Error())
	}

	unitOfWork := uow.NewPgUnitOfWork(conn)
	if err := pgrepo.Register(unitOfWork); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init UOW: %s", err.Error())
	}
	return unitOfWork, conn.Close, nil
}

func (a *App) initCache(ctx context.Context) (service.PointCache, func(), error) {
	if a.Config.RedisAddress == "" {
		return nil, func() {}, nil
	}

	rdb, err := rediscache.Connect(ctx, a.Config.RedisAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("init cache: %s", err.Error())
	}
	closeFn := func() {
		if cErr := rdb.Close(); cErr != nil {
			a.Logger.WithError(cErr).Warn("close redis client")
		}
	}
	return rediscache.New(rdb, a.Config.CacheTTL), closeFn, nil
}
