package domain

type TransactionType string

const (
	TransactionCharge TransactionType = "CHARGE"
	TransactionUse    TransactionType = "USE"
)

// UserPoint текущий баланс баллов юзера. ID совпадает с ID юзера, UpdateMillis - время последнего изменения
// в миллисекундах unix epoch.
type UserPoint struct {
	ID           int64
	Point        int64
	UpdateMillis int64
}

// EmptyUserPoint баланс юзера, у которого еще не было ни одного начисления.
func EmptyUserPoint(userID int64) *UserPoint {
	return &UserPoint{ID: userID}
}

// PointHistory неизменяемая запись об одном изменении баланса. Amount всегда положительный,
// направление определяется Type.
type PointHistory struct {
	ID           int64
	UserID       int64
	Amount       int64
	Type         TransactionType
	UpdateMillis int64
}

type PointHistoryCreate struct {
	UserID       int64
	Amount       int64
	Type         TransactionType
	UpdateMillis int64
}
