package domain

import "errors"

var (
	// ErrUnsupportedOperation 尚未開放的操作 (提款未啟用)
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceOverflow 存款後餘額超過上限
	ErrBalanceOverflow = errors.New("balance overflow")
)
