package mysql

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-kata/pkg/mysql"
)

// sqlStatementLine 對應資料庫的 statement_lines 表
type sqlStatementLine struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RefID     []byte `gorm:"column:ref_id;type:binary(16);uniqueIndex"`
	Sequence  uint64 `gorm:"index"`
	Line      string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"` // 自動寫入時間
}

func (*sqlStatementLine) TableName() string {
	return "statement_lines"
}

// StatementArchive 將每一行對帳單輸出寫入 MySQL
// 只作為輸出紀錄，帳戶不會從這裡載回歷史
type StatementArchive struct {
	client   *mysql.Client
	logger   *zap.Logger
	timeout  time.Duration
	mu       sync.Mutex
	sequence uint64
}

// NewStatementArchive 建立 StatementArchive
//
// 參數:
//
//	client: MySQL 客戶端
//	logger: 寫入失敗時記錄錯誤
//
// 回傳:
//
//	*StatementArchive: StatementArchive 實例
func NewStatementArchive(client *mysql.Client, logger *zap.Logger) *StatementArchive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatementArchive{
		client:  client,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// Migrate 建立或更新 statement_lines 表
func (a *StatementArchive) Migrate(ctx context.Context) error {
	return a.client.DB().WithContext(ctx).AutoMigrate(&sqlStatementLine{})
}

// Print 寫入一行，失敗只記錄 log 不回傳
func (a *StatementArchive) Print(line string) {
	a.mu.Lock()
	a.sequence++
	row := newStatementLine(a.sequence, line)
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.client.DB().WithContext(ctx).Create(&row).Error; err != nil {
		a.logger.Error("archive statement line failed",
			zap.Uint64("sequence", row.Sequence),
			zap.Error(err),
		)
	}
}

func newStatementLine(sequence uint64, line string) sqlStatementLine {
	ref := uuid.New()
	return sqlStatementLine{
		RefID:    ref[:],
		Sequence: sequence,
		Line:     line,
	}
}

var _ usecase.Printer = (*StatementArchive)(nil)
