package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-kata/pkg/journal"
)

// Console 將每行寫到 io.Writer (通常是 os.Stdout)
type Console struct {
	w  io.Writer
	mu sync.Mutex
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Print(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}

// Log 將每行輸出為一筆 zap Info 紀錄
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Print(line string) {
	l.logger.Info("statement", zap.String("line", line))
}

// JournalRecord 寫入 journal 的單筆輸出紀錄
type JournalRecord struct {
	ID        uuid.UUID `json:"id"`
	Sequence  uint64    `json:"sequence"`
	Line      string    `json:"line"`
	PrintedAt int64     `json:"printed_at"`
}

// Journal 將每行附加到 JSON Lines 紀錄檔
type Journal struct {
	journal  *journal.Journal
	logger   *zap.Logger
	mu       sync.Mutex
	sequence uint64
}

// NewJournal 建立 Journal Printer，序號接續檔案中已有的紀錄
//
// 參數:
//
//	j: 已開啟的 journal
//	logger: 寫入失敗時記錄錯誤
//
// 回傳:
//
//	*Journal: Journal Printer
//	error: 讀取既有紀錄失敗
func NewJournal(j *journal.Journal, logger *zap.Logger) (*Journal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Journal{journal: j, logger: logger}

	err := j.ReadAll(func(raw json.RawMessage) error {
		var record JournalRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		if record.Sequence > p.sequence {
			p.sequence = record.Sequence
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resume statement journal: %w", err)
	}
	return p, nil
}

func (p *Journal) Print(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sequence++
	record := JournalRecord{
		ID:        uuid.New(),
		Sequence:  p.sequence,
		Line:      line,
		PrintedAt: time.Now().UnixMilli(),
	}
	if err := p.journal.Append(record); err != nil {
		p.logger.Error("append statement line to journal failed",
			zap.Uint64("sequence", record.Sequence),
			zap.Error(err),
		)
	}
}

// Multi 依序將同一行送往多個 Printer
type Multi []usecase.Printer

func (m Multi) Print(line string) {
	for _, p := range m {
		p.Print(line)
	}
}

var (
	_ usecase.Printer = (*Console)(nil)
	_ usecase.Printer = (*Log)(nil)
	_ usecase.Printer = (*Journal)(nil)
	_ usecase.Printer = Multi(nil)
)
