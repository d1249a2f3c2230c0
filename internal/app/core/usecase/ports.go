package usecase

import (
	"github.com/JoeShih716/go-bank-kata/internal/app/core/domain"
)

// TransactionRepository 交易紀錄的儲存介面 (只可附加)
type TransactionRepository interface {
	// Add 將交易附加到歷史尾端
	Add(tran domain.Transaction)
	// All 依寫入順序回傳完整歷史的快照
	All() []domain.Transaction
}

// Calendar 提供新交易使用的日期字串
type Calendar interface {
	Today() string
}

// Printer 逐行接收對帳單輸出
type Printer interface {
	Print(line string)
}
