package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
)

type amountRequest struct {
	Amount *uint64 `json:"amount" binding:"required"`
}

type balanceResponse struct {
	Balance uint64 `json:"balance"`
}

type statementResponse struct {
	Lines []string `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler 將 Account 暴露為 REST API
type Handler struct {
	account *usecase.Account
	logger  *zap.Logger
}

func NewHandler(account *usecase.Account, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{account: account, logger: logger}
}

// Router 建立 gin 路由
//
//	POST /api/v1/deposits     {"amount": N}
//	POST /api/v1/withdrawals  {"amount": N}
//	GET  /api/v1/statement
//	GET  /api/v1/balance
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests())

	v1 := r.Group("/api/v1")
	v1.POST("/deposits", h.deposit)
	v1.POST("/withdrawals", h.withdraw)
	v1.GET("/statement", h.statement)
	v1.GET("/balance", h.balance)
	return r
}

func (h *Handler) deposit(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	balance, err := h.account.Deposit(*req.Amount)
	if err != nil {
		c.JSON(statusCode(err), errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

func (h *Handler) withdraw(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	balance, err := h.account.Withdraw(*req.Amount)
	if err != nil {
		c.JSON(statusCode(err), errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

func (h *Handler) statement(c *gin.Context) {
	c.JSON(http.StatusOK, statementResponse{Lines: h.account.PrintStatement()})
}

func (h *Handler) balance(c *gin.Context) {
	c.JSON(http.StatusOK, balanceResponse{Balance: h.account.Balance()})
}

func (h *Handler) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// statusCode 將 domain 錯誤轉為 HTTP 狀態碼
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAmountMustBePositive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBalanceOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
