package service

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-points/internal/domain"
	repomocks "github.com/fsdevblog/groph-points/internal/domain/mocks"
	"github.com/fsdevblog/groph-points/internal/service/mocks"
	"github.com/fsdevblog/groph-points/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-points/pkg/uow/mocks"
)

const (
	testUserID       int64 = 13
	testInitialPoint int64 = 100
)

type PointServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockPointRepo   *repomocks.MockUserPointRepository
	mockHistoryRepo *repomocks.MockPointHistoryRepository
	mockCache       *mocks.MockPointCache
	service         *PointService
	updateMillis    int64
}

func TestPointServiceSuite(t *testing.T) {
	suite.Run(t, new(PointServiceTestSuite))
}

func (s *PointServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockPointRepo = repomocks.NewMockUserPointRepository(s.mockCtrl)
	s.mockHistoryRepo = repomocks.NewMockPointHistoryRepository(s.mockCtrl)
	s.mockCache = mocks.NewMockPointCache(s.mockCtrl)
	s.updateMillis = time.Now().UnixMilli()

	// Репозитории вне транзакции запрашиваются при инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.UserPointRepoName)).
		Return(s.mockPointRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.PointHistoryRepoName)).
		Return(s.mockHistoryRepo, nil).AnyTimes()

	// Репозитории внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.UserPointRepoName)).
		Return(s.mockPointRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.PointHistoryRepoName)).
		Return(s.mockHistoryRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	service, err := NewPointService(s.mockUOW, l)
	s.Require().NoError(err)
	s.service = service.SetCache(s.mockCache)
}

func (s *PointServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo настраивает мок UOW обертку, выполняющую fn с мок транзакцией.
func (s *PointServiceTestSuite) expectDo(times int) {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(times)
}

func (s *PointServiceTestSuite) initialPoint() *domain.UserPoint {
	return &domain.UserPoint{ID: testUserID, Point: testInitialPoint, UpdateMillis: s.updateMillis - 1000}
}

func (s *PointServiceTestSuite) TestCharge() {
	var chargeAmount int64 = 100
	expected := &domain.UserPoint{ID: testUserID, Point: testInitialPoint + chargeAmount, UpdateMillis: s.updateMillis}

	s.expectDo(1)
	gomock.InOrder(
		s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(s.initialPoint(), nil),
		s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), testUserID, testInitialPoint+chargeAmount).
			Return(expected, nil),
		s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), domain.PointHistoryCreate{
			UserID:       testUserID,
			Amount:       chargeAmount,
			Type:         domain.TransactionCharge,
			UpdateMillis: expected.UpdateMillis,
		}).Return(&domain.PointHistory{ID: 1}, nil),
		s.mockCache.EXPECT().Set(gomock.Any(), expected).Return(nil),
	)

	point, err := s.service.Charge(s.T().Context(), testUserID, chargeAmount)
	s.Require().NoError(err)

	s.Equal(testUserID, point.ID)
	s.Equal(testInitialPoint+chargeAmount, point.Point)
	s.Equal(s.updateMillis, point.UpdateMillis)
}

func (s *PointServiceTestSuite) TestCharge_Overflow() {
	s.expectDo(1)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).
		Return(&domain.UserPoint{ID: testUserID, Point: math.MaxInt64 - 10}, nil)
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Charge(s.T().Context(), testUserID, 11)
	s.Require().ErrorIs(err, domain.ErrPointOverflow)
}

func (s *PointServiceTestSuite) TestUse() {
	var useAmount int64 = 50
	expected := &domain.UserPoint{ID: testUserID, Point: testInitialPoint - useAmount, UpdateMillis: s.updateMillis}

	s.expectDo(1)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(s.initialPoint(), nil)
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), testUserID, testInitialPoint-useAmount).
		Return(expected, nil)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), domain.PointHistoryCreate{
		UserID:       testUserID,
		Amount:       useAmount,
		Type:         domain.TransactionUse,
		UpdateMillis: s.updateMillis,
	}).Return(&domain.PointHistory{ID: 2}, nil)
	s.mockCache.EXPECT().Set(gomock.Any(), expected).Return(nil)

	point, err := s.service.Use(s.T().Context(), testUserID, useAmount)
	s.Require().NoError(err)
	s.Equal(testInitialPoint-useAmount, point.Point)
}

func (s *PointServiceTestSuite) TestUse_InsufficientPoints() {
	s.expectDo(2)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(s.initialPoint(), nil).Times(2)
	// ни баланс, ни история не должны меняться.
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name   string
		amount int64
	}{
		{name: "more than balance", amount: 150},
		{name: "one point over", amount: testInitialPoint + 1},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Use(s.T().Context(), testUserID, tc.amount)
			s.Require().ErrorIs(err, domain.ErrInsufficientPoints)

			var insufficientErr *domain.InsufficientPointsError
			s.Require().ErrorAs(err, &insufficientErr)
			s.Equal(testInitialPoint, insufficientErr.Current)
			s.Equal(tc.amount, insufficientErr.Requested)
			s.Contains(err.Error(), "insufficient points")
		})
	}
}

func (s *PointServiceTestSuite) TestInvalidAmount() {
	// до хранилища дело доходить не должно.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	for _, amount := range []int64{0, -1, math.MinInt64} {
		_, chargeErr := s.service.Charge(s.T().Context(), testUserID, amount)
		s.Require().ErrorIs(chargeErr, domain.ErrInvalidAmount)

		_, useErr := s.service.Use(s.T().Context(), testUserID, amount)
		s.Require().ErrorIs(useErr, domain.ErrInvalidAmount)
	}
}

func (s *PointServiceTestSuite) TestRepositoryErrorPropagates() {
	repoErr := errors.New("db update failed")

	s.expectDo(2)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(s.initialPoint(), nil)
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), testUserID, gomock.Any()).Return(nil, repoErr)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Charge(s.T().Context(), testUserID, 10)
	s.Require().ErrorIs(err, repoErr)

	// после ошибки мьютекс юзера должен быть свободен.
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(nil, repoErr)
	_, err = s.service.Use(s.T().Context(), testUserID, 10)
	s.Require().ErrorIs(err, repoErr)
}

func (s *PointServiceTestSuite) TestCacheRefreshFailure() {
	expected := &domain.UserPoint{ID: testUserID, Point: testInitialPoint + 1, UpdateMillis: s.updateMillis}

	s.expectDo(1)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(s.initialPoint(), nil)
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), testUserID, expected.Point).Return(expected, nil)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&domain.PointHistory{}, nil)
	s.mockCache.EXPECT().Set(gomock.Any(), expected).Return(errors.New("redis down"))
	s.mockCache.EXPECT().Delete(gomock.Any(), testUserID).Return(nil)

	point, err := s.service.Charge(s.T().Context(), testUserID, 1)
	s.Require().NoError(err)
	s.Equal(expected, point)

	// чтение, начатое до изменения, не должно вернуть старый баланс в кэш.
	s.mockCache.EXPECT().Get(gomock.Any(), testUserID).Return(nil, false, nil).Times(2)
	s.mockPointRepo.EXPECT().SelectByID(gomock.Any(), testUserID).Return(s.initialPoint(), nil)
	s.mockCache.EXPECT().Add(gomock.Any(), s.initialPoint()).Times(0)

	stale, err := s.service.GetPoint(s.T().Context(), testUserID)
	s.Require().NoError(err)
	s.Equal(testInitialPoint, stale.Point)

	// актуальное значение кэшируется как обычно.
	s.mockPointRepo.EXPECT().SelectByID(gomock.Any(), testUserID).Return(expected, nil)
	s.mockCache.EXPECT().Add(gomock.Any(), expected).Return(nil)

	point, err = s.service.GetPoint(s.T().Context(), testUserID)
	s.Require().NoError(err)
	s.Equal(expected, point)
}

func (s *PointServiceTestSuite) TestCancelledBeforeWrite() {
	ctx, cancel := context.WithCancel(s.T().Context())

	s.expectDo(1)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).
		DoAndReturn(func(context.Context, int64) (*domain.UserPoint, error) {
			cancel()
			return s.initialPoint(), nil
		})
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Charge(ctx, testUserID, 10)
	s.Require().ErrorIs(err, context.Canceled)
}

func (s *PointServiceTestSuite) TestHistoryInsertError() {
	historyErr := errors.New("history insert failed")
	saved := &domain.UserPoint{ID: testUserID, Point: testInitialPoint + 5, UpdateMillis: s.updateMillis}

	s.expectDo(1)
	s.mockPointRepo.EXPECT().SelectForUpdate(gomock.Any(), testUserID).Return(s.initialPoint(), nil)
	s.mockPointRepo.EXPECT().InsertOrUpdate(gomock.Any(), testUserID, saved.Point).Return(saved, nil)
	s.mockHistoryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, historyErr)
	s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Charge(s.T().Context(), testUserID, 5)
	s.Require().ErrorIs(err, historyErr)
}

func (s *PointServiceTestSuite) TestGetPoint() {
	stored := s.initialPoint()

	s.Run("cache hit", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), testUserID).Return(stored, true, nil)

		point, err := s.service.GetPoint(s.T().Context(), testUserID)
		s.Require().NoError(err)
		s.Equal(stored, point)
	})

	s.Run("cache miss", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), testUserID).Return(nil, false, nil)
		s.mockPointRepo.EXPECT().SelectByID(gomock.Any(), testUserID).Return(stored, nil)
		s.mockCache.EXPECT().Add(gomock.Any(), stored).Return(nil)

		point, err := s.service.GetPoint(s.T().Context(), testUserID)
		s.Require().NoError(err)
		s.Equal(stored, point)
	})

	s.Run("cache error", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), testUserID).Return(nil, false, errors.New("redis down"))
		s.mockPointRepo.EXPECT().SelectByID(gomock.Any(), testUserID).Return(stored, nil)
		s.mockCache.EXPECT().Add(gomock.Any(), stored).Return(errors.New("redis down"))

		point, err := s.service.GetPoint(s.T().Context(), testUserID)
		s.Require().NoError(err)
		s.Equal(stored, point)
	})

	s.Run("unknown user is not cached", func() {
		var unknownID int64 = 999
		s.mockCache.EXPECT().Get(gomock.Any(), unknownID).Return(nil, false, nil)
		s.mockPointRepo.EXPECT().SelectByID(gomock.Any(), unknownID).Return(domain.EmptyUserPoint(unknownID), nil)

		point, err := s.service.GetPoint(s.T().Context(), unknownID)
		s.Require().NoError(err)
		s.Equal(int64(0), point.Point)
	})
}

func (s *PointServiceTestSuite) TestGetHistories() {
	expected := []domain.PointHistory{
		{ID: 1, UserID: testUserID, Amount: 500, Type: domain.TransactionCharge, UpdateMillis: s.updateMillis},
		{ID: 2, UserID: testUserID, Amount: 300, Type: domain.TransactionUse, UpdateMillis: s.updateMillis + 1},
	}
	s.mockHistoryRepo.EXPECT().SelectAllByUserID(gomock.Any(), testUserID).Return(expected, nil)

	histories, err := s.service.GetHistories(s.T().Context(), testUserID)
	s.Require().NoError(err)
	s.Equal(expected, histories)
}
