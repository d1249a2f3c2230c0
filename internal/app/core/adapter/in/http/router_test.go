package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/out/calendar"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
)

type nopPrinter struct{}

func (nopPrinter) Print(string) {}

func newRouter(opts ...usecase.AccountOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	account := usecase.NewAccount(memory.NewTransactionStore(), calendar.Fixed("15/04/2025"), nopPrinter{}, opts...)
	return NewHandler(account, nil).Router()
}

// doJSON 送出請求並驗證狀態碼，out 非 nil 時解析回應
func doJSON(t *testing.T, r http.Handler, method, path, body string, wantCode int, out any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, wantCode, w.Code, w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
}

func TestHTTP_DepositAndStatement(t *testing.T) {
	r := newRouter()

	var stmt statementResponse
	doJSON(t, r, http.MethodGet, "/api/v1/statement", "", http.StatusOK, &stmt)
	assert.Equal(t, []string{domain.StatementHeader}, stmt.Lines)

	var bal balanceResponse
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":100}`, http.StatusOK, &bal)
	assert.Equal(t, uint64(100), bal.Balance)
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":200}`, http.StatusOK, &bal)
	assert.Equal(t, uint64(300), bal.Balance)

	doJSON(t, r, http.MethodGet, "/api/v1/statement", "", http.StatusOK, &stmt)
	assert.Equal(t, []string{
		domain.StatementHeader,
		"15/04/2025 || 200    || 300    ",
		"15/04/2025 || 100    || 100    ",
	}, stmt.Lines)

	doJSON(t, r, http.MethodGet, "/api/v1/balance", "", http.StatusOK, &bal)
	assert.Equal(t, uint64(300), bal.Balance)
}

func TestHTTP_DepositZeroIsAccepted(t *testing.T) {
	r := newRouter()
	var bal balanceResponse
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":0}`, http.StatusOK, &bal)
	assert.Zero(t, bal.Balance)
}

func TestHTTP_DepositOverflow(t *testing.T) {
	r := newRouter()
	var bal balanceResponse
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":18446744073709551615}`, http.StatusOK, &bal)
	assert.Equal(t, uint64(18446744073709551615), bal.Balance)

	var e errorResponse
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":1}`, http.StatusUnprocessableEntity, &e)
	assert.Equal(t, domain.ErrBalanceOverflow.Error(), e.Error)
}

func TestHTTP_BadRequests(t *testing.T) {
	r := newRouter()
	var e errorResponse

	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{`, http.StatusBadRequest, &e)
	assert.Equal(t, "invalid request body", e.Error)
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{}`, http.StatusBadRequest, nil)
	doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":-5}`, http.StatusBadRequest, nil)
}

func TestHTTP_Withdraw(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := newRouter()
		var e errorResponse
		doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", `{"amount":10}`, http.StatusNotImplemented, &e)
		assert.Equal(t, domain.ErrUnsupportedOperation.Error(), e.Error)
	})

	t.Run("enabled", func(t *testing.T) {
		r := newRouter(usecase.WithWithdrawals(true))
		var bal balanceResponse
		doJSON(t, r, http.MethodPost, "/api/v1/deposits", `{"amount":100}`, http.StatusOK, nil)
		doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", `{"amount":30}`, http.StatusOK, &bal)
		assert.Equal(t, uint64(70), bal.Balance)
		doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", `{"amount":71}`, http.StatusConflict, nil)
		doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", `{"amount":0}`, http.StatusBadRequest, nil)
	})
}
