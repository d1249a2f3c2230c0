package printer

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
)

// Async 以單一背景 goroutine 轉送輸出行，讓慢速 Printer (例如資料庫) 不阻塞帳戶鎖
//
// Print(入列) -> Channel -> Run Loop -> next.Print
// 單一消費者保證輸出順序與 Print 呼叫順序相同
type Async struct {
	next  usecase.Printer
	lines chan string
	done  chan struct{}
	once  sync.Once
}

// NewAsync 建立 Async Printer，buffer 為輸送帶容量
func NewAsync(next usecase.Printer, buffer int) *Async {
	if buffer <= 0 {
		buffer = 1000
	}
	return &Async{
		next:  next,
		lines: make(chan string, buffer),
		done:  make(chan struct{}),
	}
}

// Start 啟動背景轉送 (非同步)
// ctx 結束時會把剩下的輸出行送完才結束
func (a *Async) Start(ctx context.Context) {
	a.once.Do(func() {
		go a.run(ctx)
	})
}

// Done 在背景 goroutine 結束 (含 drain) 後關閉
func (a *Async) Done() <-chan struct{} {
	return a.done
}

// Print 放入輸送帶，緩衝滿時會阻塞
// 背景 goroutine 結束後不再阻塞，輸出行直接丟棄
func (a *Async) Print(line string) {
	select {
	case a.lines <- line:
	case <-a.done:
	}
}

func (a *Async) run(ctx context.Context) {
	defer close(a.done)
	for {
		select {
		case <-ctx.Done():
			a.drain()
			return
		case line := <-a.lines:
			a.next.Print(line)
		}
	}
}

func (a *Async) drain() {
	for {
		select {
		case line := <-a.lines:
			a.next.Print(line)
		default:
			return
		}
	}
}

var _ usecase.Printer = (*Async)(nil)
