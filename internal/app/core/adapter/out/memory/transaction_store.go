package memory

import (
	"sync"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
)

// TransactionStore 是一個使用 RWMutex 保護的記憶體交易紀錄
//
// 結構:
//
//	transactions: 依寫入順序排列的交易歷史
//	mu: RWMutex 用於保護交易歷史
type TransactionStore struct {
	transactions []domain.Transaction
	mu           sync.RWMutex
}

// NewTransactionStore 建立一個空的 TransactionStore
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		transactions: make([]domain.Transaction, 0),
	}
}

// Add 將交易附加到歷史尾端
func (s *TransactionStore) Add(tran domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tran)
}

// All 回傳歷史快照
// 回傳的是複本，之後的 Add 不會影響已取得的快照
func (s *TransactionStore) All() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	return snapshot
}

var _ usecase.TransactionRepository = (*TransactionStore)(nil)
