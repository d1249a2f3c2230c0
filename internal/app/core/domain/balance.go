package domain

import "math"

// Balance 累計餘額，依交易順序由舊到新套用
type Balance struct {
	total uint64
}

// BalanceOf 從頭套用整份交易歷史
// 無法套用的交易 (餘額不足、溢位) 略過，與 RenderStatement 一致
func BalanceOf(history []Transaction) Balance {
	var b Balance
	for _, tran := range history {
		_ = b.Apply(tran)
	}
	return b
}

// Replay 從頭套用整份交易歷史，回傳最終餘額
func Replay(history []Transaction) uint64 {
	b := BalanceOf(history)
	return b.Total()
}

// Total 目前餘額
func (b *Balance) Total() uint64 {
	return b.total
}

// Apply 套用單筆交易，失敗時餘額保持不變
//
// 參數:
//
//	tran: 交易物件
//
// 回傳:
//
//	error: 存款使餘額超過 uint64 上限時回傳 ErrBalanceOverflow，
//	提款金額大於餘額時回傳 ErrInsufficientBalance
func (b *Balance) Apply(tran Transaction) error {
	switch tran.Type {
	case TransactionTypeDeposit:
		if b.total > math.MaxUint64-tran.Amount {
			return ErrBalanceOverflow
		}
		b.total += tran.Amount
	case TransactionTypeWithdraw:
		if b.total < tran.Amount {
			return ErrInsufficientBalance
		}
		b.total -= tran.Amount
	}
	return nil
}
