package calendar

import (
	"time"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
)

// DefaultLayout 日/月/年，例如 15/04/2025
const DefaultLayout = "02/01/2006"

// System 以系統時間提供日期
type System struct {
	layout string
	now    func() time.Time
}

// NewSystem 建立系統日曆，layout 為空時使用 DefaultLayout
func NewSystem(layout string) *System {
	if layout == "" {
		layout = DefaultLayout
	}
	return &System{
		layout: layout,
		now:    time.Now,
	}
}

// Today 回傳今天的日期字串
func (s *System) Today() string {
	return s.now().Format(s.layout)
}

// Fixed 永遠回傳同一個日期
type Fixed string

// Today 回傳固定日期
func (f Fixed) Today() string {
	return string(f)
}

var (
	_ usecase.Calendar = (*System)(nil)
	_ usecase.Calendar = Fixed("")
)
