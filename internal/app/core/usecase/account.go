package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/domain"
)

// Account 帳戶門面，組合 Repository、Calendar 與 Printer
//
// 結構:
//
//	repo: 交易紀錄儲存
//	calendar: 日期來源
//	printer: 對帳單輸出
//	mu: 序列化所有操作，避免列印時讀到寫入中的歷史
type Account struct {
	repo     TransactionRepository
	calendar Calendar
	printer  Printer

	mu                 sync.Mutex
	withdrawalsEnabled bool
	logger             *zap.Logger
}

// AccountOption 定義了 Account 的配置選項函數
type AccountOption func(*Account)

// WithWithdrawals 開啟或關閉提款
// 關閉時 Withdraw 一律回傳 domain.ErrUnsupportedOperation
func WithWithdrawals(enabled bool) AccountOption {
	return func(a *Account) {
		a.withdrawalsEnabled = enabled
	}
}

// WithLogger 設定 Account 使用的 logger
func WithLogger(logger *zap.Logger) AccountOption {
	return func(a *Account) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAccount 建立一個新的 Account 實例
//
// 參數:
//
//	repo: 交易紀錄儲存
//	calendar: 日期來源
//	printer: 對帳單輸出
//	opts: 可選設定
//
// 回傳:
//
//	*Account: Account 實例
func NewAccount(repo TransactionRepository, calendar Calendar, printer Printer, opts ...AccountOption) *Account {
	a := &Account{
		repo:     repo,
		calendar: calendar,
		printer:  printer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Deposit 存款
//
// 參數:
//
//	amount: 存款金額
//
// 回傳:
//
//	uint64: 存款後的餘額 (與寫入在同一個臨界區內計算)
//	error: 餘額會超過上限時回傳 ErrBalanceOverflow，交易不會寫入
func (a *Account) Deposit(amount uint64) (uint64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	balance := domain.BalanceOf(a.repo.All())
	tran := domain.NewDeposit(amount, a.calendar.Today())
	if err := balance.Apply(tran); err != nil {
		a.logger.Info("deposit rejected",
			zap.Uint64("amount", amount),
			zap.Uint64("balance", balance.Total()),
			zap.Error(err),
		)
		return balance.Total(), err
	}

	a.repo.Add(tran)
	a.logger.Debug("deposit recorded",
		zap.Stringer("transaction_id", tran.ID),
		zap.Uint64("amount", amount),
		zap.String("date", tran.Date),
	)
	return balance.Total(), nil
}

// Withdraw 提款
//
// 參數:
//
//	amount: 提款金額
//
// 回傳:
//
//	uint64: 提款後的餘額 (失敗時為目前餘額)
//	error: 提款未啟用 (ErrUnsupportedOperation)、金額為 0 (ErrAmountMustBePositive)
//	或餘額不足 (ErrInsufficientBalance)
func (a *Account) Withdraw(amount uint64) (uint64, error) {
	if !a.withdrawalsEnabled {
		return 0, domain.ErrUnsupportedOperation
	}
	if amount == 0 {
		return 0, domain.ErrAmountMustBePositive
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	balance := domain.BalanceOf(a.repo.All())
	if balance.Total() < amount {
		a.logger.Info("withdraw rejected",
			zap.Uint64("amount", amount),
			zap.Uint64("balance", balance.Total()),
		)
		return balance.Total(), domain.ErrInsufficientBalance
	}

	tran := domain.NewWithdraw(amount, a.calendar.Today())
	if err := balance.Apply(tran); err != nil {
		return balance.Total(), err
	}
	a.repo.Add(tran)
	a.logger.Debug("withdraw recorded",
		zap.Stringer("transaction_id", tran.ID),
		zap.Uint64("amount", amount),
		zap.String("date", tran.Date),
	)
	return balance.Total(), nil
}

// PrintStatement 依目前歷史產生對帳單並逐行送往 Printer (標題在前)
// 回傳同一批輸出行，方便傳輸層回傳給遠端呼叫者
func (a *Account) PrintStatement() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines := domain.RenderStatement(a.repo.All())
	for _, line := range lines {
		a.printer.Print(line)
	}
	return lines
}

// Balance 目前餘額
func (a *Account) Balance() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.Replay(a.repo.All())
}
