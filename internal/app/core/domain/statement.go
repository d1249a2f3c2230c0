package domain

import (
	"strconv"
	"strings"
)

const (
	// StatementHeader 對帳單標題列，固定輸出
	StatementHeader = "Date       || Amount || Balance"

	// ColumnWidth 金額與餘額欄位寬度 (靠左對齊，右側補空白)
	// 超過寬度的數字保留一個空白，避免與分隔符黏在一起
	ColumnWidth = 7

	columnSeparator = " || "
)

// RenderStatement 將交易歷史 (由舊到新) 轉為對帳單
//
// 參數:
//
//	history: 依寫入順序排列的交易歷史
//
// 回傳:
//
//	[]string: 1+N 行，第一行為標題，其餘為最新在前的交易明細
func RenderStatement(history []Transaction) []string {
	lines := make([]string, 1, len(history)+1)
	lines[0] = StatementHeader

	// 由舊到新累計餘額
	body := make([]string, 0, len(history))
	var balance Balance
	for _, tran := range history {
		_ = balance.Apply(tran)
		body = append(body, formatLine(tran, balance.Total()))
	}

	// 反轉：最新的交易緊接在標題之後
	for i := len(body) - 1; i >= 0; i-- {
		lines = append(lines, body[i])
	}
	return lines
}

// formatLine 格式化單行明細
func formatLine(tran Transaction, balance uint64) string {
	amount := strconv.FormatUint(tran.Amount, 10)
	if tran.Type == TransactionTypeWithdraw {
		amount = "-" + amount
	}

	var sb strings.Builder
	sb.WriteString(tran.Date)
	sb.WriteString(columnSeparator)
	sb.WriteString(padColumn(amount))
	sb.WriteString("|| ")
	sb.WriteString(padColumn(strconv.FormatUint(balance, 10)))
	return sb.String()
}

func padColumn(value string) string {
	if len(value) >= ColumnWidth {
		return value + " "
	}
	return value + strings.Repeat(" ", ColumnWidth-len(value))
}
