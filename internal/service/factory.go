package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-points/pkg/uow"
)

type AppServices struct {
	PointService *PointService
}

func Factory(unitOfWork uow.UOW, cache PointCache, l *logrus.Logger) (*AppServices, error) {
	pointService, pointServiceErr := NewPointService(unitOfWork, l)
	if pointServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", pointServiceErr.Error())
	}

	return &AppServices{
		PointService: pointService.SetCache(cache),
	}, nil
}
