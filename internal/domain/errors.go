package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnknown        = errors.New("unknown error")

	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrPointOverflow      = errors.New("point overflow")
)

// InsufficientPointsError возвращается при попытке списать больше баллов, чем есть на балансе.
// errors.Is(err, ErrInsufficientPoints) для нее истинно.
type InsufficientPointsError struct {
	UserID    int64
	Current   int64
	Requested int64
}

func NewInsufficientPointsError(userID, current, requested int64) error {
	return &InsufficientPointsError{UserID: userID, Current: current, Requested: requested}
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf(
		"user %d has %d points, %d requested: %s",
		e.UserID,
		e.Current,
		e.Requested,
		ErrInsufficientPoints.Error(),
	)
}

func (e *InsufficientPointsError) Unwrap() error {
	return ErrInsufficientPoints
}
