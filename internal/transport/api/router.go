package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-points/internal/metrics"
	"github.com/fsdevblog/groph-points/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	PointRoute          = "/point/:id"
	PointHistoriesRoute = "/point/:id/histories"
	PointChargeRoute    = "/point/:id/charge"
	PointUseRoute       = "/point/:id/use"
	MetricsRoute        = "/metrics"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	PointService PointServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Errors())

	pointHandler := NewPointHandler(args.PointService)

	r.GET(PointRoute, pointHandler.Show)
	r.GET(PointHistoriesRoute, pointHandler.Histories)
	r.PATCH(PointChargeRoute, pointHandler.Charge)
	r.PATCH(PointUseRoute, pointHandler.Use)

	r.GET(MetricsRoute, gin.WrapH(metrics.Handler()))
	return r, nil
}
