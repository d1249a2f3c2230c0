package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpc_adapter "github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-bank-kata/pkg/grpc"
	"github.com/JoeShih716/go-bank-kata/pkg/logger"
)

func main() {
	target := flag.String("target", "localhost:50051", "grpc server address")
	deposits := flag.Int("deposits", 10, "number of concurrent deposits")
	amount := flag.Uint64("amount", 100, "amount of each deposit")
	withdraw := flag.Uint64("withdraw", 0, "amount to withdraw after the deposits (0 = skip)")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := validateFlags(*deposits); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	zl, err := logger.New(*level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	pool := grpc.NewPool(grpc.WithInterceptor(grpc.LoggingInterceptor(zl)))
	defer pool.Close()

	conn, err := pool.GetConnection(*target)
	if err != nil {
		zl.Fatal("did not connect", zap.Error(err))
	}
	client := grpc_adapter.NewClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 同時送出多筆存款，server 端會序列化處理
	var wg sync.WaitGroup
	wg.Add(*deposits)
	startTime := time.Now()
	for i := 0; i < *deposits; i++ {
		go func(idx int) {
			defer wg.Done()
			if _, err := client.Deposit(ctx, *amount); err != nil {
				zl.Warn("deposit failed", zap.Int("index", idx), zap.Error(err))
			}
		}(i)
	}
	wg.Wait()
	zl.Info("deposits completed", zap.Int("count", *deposits), zap.Duration("elapsed", time.Since(startTime)))

	if *withdraw > 0 {
		balance, err := client.Withdraw(ctx, *withdraw)
		switch status.Code(err) {
		case codes.OK:
			zl.Info("withdraw accepted", zap.Uint64("balance", balance))
		case codes.Unimplemented:
			zl.Warn("withdrawals are disabled on the server")
		default:
			zl.Warn("withdraw rejected", zap.Error(err))
		}
	}

	lines, err := client.PrintStatement(ctx)
	if err != nil {
		zl.Fatal("print statement failed", zap.Error(err))
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// validateFlags 檢查命令列參數
func validateFlags(deposits int) error {
	if deposits < 0 {
		return errors.New("-deposits must not be negative")
	}
	return nil
}
