package domain

import "github.com/google/uuid"

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
)

// String 回傳交易類型名稱，供 log 與傳輸層使用
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// Transaction 一筆帳務紀錄，建立後不可變
type Transaction struct {
	// ID: 交易追蹤號 (UUID)
	ID uuid.UUID
	// Amount: 金額 (非負整數)
	Amount uint64
	// Date: 由 Calendar 提供的日期字串，原樣保存，不做解析
	Date string
	// Type: 交易類型
	Type TransactionType
}

// NewDeposit 建立一筆存款交易
func NewDeposit(amount uint64, date string) Transaction {
	return Transaction{
		ID:     uuid.New(),
		Amount: amount,
		Date:   date,
		Type:   TransactionTypeDeposit,
	}
}

// NewWithdraw 建立一筆提款交易
func NewWithdraw(amount uint64, date string) Transaction {
	return Transaction{
		ID:     uuid.New(),
		Amount: amount,
		Date:   date,
		Type:   TransactionTypeWithdraw,
	}
}
