package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-points/internal/domain"
)

type PointHandler struct {
	svs PointServicer
}

func NewPointHandler(svs PointServicer) *PointHandler {
	return &PointHandler{
		svs: svs,
	}
}

type UserPointResponse struct {
	ID           int64 `json:"id"`
	Point        int64 `json:"point"`
	UpdateMillis int64 `json:"updateMillis"`
}

type PointHistoryResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	Amount       int64  `json:"amount"`
	Type         string `json:"type"`
	UpdateMillis int64  `json:"updateMillis"`
}

type UserURI struct {
	ID int64 `uri:"id" binding:"positive"`
}

type AmountParams struct {
	Amount int64 `json:"amount" binding:"positive"`
}

func (h *PointHandler) Show(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	point, err := h.svs.GetPoint(reqCtx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newUserPointResponse(point))
}

func (h *PointHandler) Histories(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	histories, err := h.svs.GetHistories(reqCtx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PointHistoryResponse, len(histories))
	for i, history := range histories {
		response[i] = PointHistoryResponse{
			ID:           history.ID,
			UserID:       history.UserID,
			Amount:       history.Amount,
			Type:         string(history.Type),
			UpdateMillis: history.UpdateMillis,
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *PointHandler) Charge(c *gin.Context) {
	h.mutate(c, h.svs.Charge)
}

func (h *PointHandler) Use(c *gin.Context) {
	h.mutate(c, h.svs.Use)
}

// mutate общая часть Charge и Use: разбирает запрос, вызывает операцию сервиса и переводит доменные ошибки
// в статусы ответа.
func (h *PointHandler) mutate(
	c *gin.Context,
	op func(ctx context.Context, userID int64, amount int64) (*domain.UserPoint, error),
) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	point, err := op(reqCtx, userID, params.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
		case errors.Is(err, domain.ErrInsufficientPoints):
			_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrPointOverflow):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePrivate)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newUserPointResponse(point))
}

// bindUserID достает ID юзера из пути. При ошибке прерывает запрос со статусом 400 и возвращает false.
func bindUserID(c *gin.Context) (int64, bool) {
	var uri UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return uri.ID, true
}

func newUserPointResponse(point *domain.UserPoint) UserPointResponse {
	return UserPointResponse{
		ID:           point.ID,
		Point:        point.Point,
		UpdateMillis: point.UpdateMillis,
	}
}
