package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	grpc_adapter "github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/in/http"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/out/calendar"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/adapter/out/printer"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-kata/internal/config"
	"github.com/JoeShih716/go-bank-kata/pkg/journal"
	"github.com/JoeShih716/go-bank-kata/pkg/logger"
	"github.com/JoeShih716/go-bank-kata/pkg/mysql"
)

func main() {
	fmt.Println("Hello, world!")

	configPath := flag.String("config", "", "path to config.yaml (default "+config.DefaultPath+")")
	flag.Parse()

	// 1. 載入設定 (明確指定路徑時，檔案必須存在)
	path, required := config.DefaultPath, false
	if *configPath != "" {
		path, required = *configPath, true
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. 組裝對帳單輸出
	var sinks printer.Multi
	if cfg.Printer.Console {
		sinks = append(sinks, printer.NewConsole(os.Stdout))
	}
	if cfg.Printer.Log {
		sinks = append(sinks, printer.NewLog(log))
	}
	if cfg.Printer.JournalPath != "" {
		j, err := journal.Open(cfg.Printer.JournalPath)
		if err != nil {
			log.Fatal("failed to open statement journal", zap.Error(err))
		}
		defer j.Close()
		journalPrinter, err := printer.NewJournal(j, log)
		if err != nil {
			log.Fatal("failed to resume statement journal", zap.Error(err))
		}
		sinks = append(sinks, journalPrinter)
	}

	var archiveQueue *printer.Async
	if cfg.Printer.Archive {
		dbClient, err := mysql.NewClient(cfg.MySQL, log)
		if err != nil {
			log.Fatal("failed to connect to mysql", zap.Error(err))
		}
		defer dbClient.Close()

		archive := mysql_adapter.NewStatementArchive(dbClient, log)
		if err := archive.Migrate(ctx); err != nil {
			log.Fatal("failed to migrate statement archive", zap.Error(err))
		}
		// 資料庫寫入較慢，經由背景佇列轉送
		archiveQueue = printer.NewAsync(archive, cfg.Printer.ArchiveBuffer)
		archiveQueue.Start(ctx)
		sinks = append(sinks, archiveQueue)
		log.Info("statement archive enabled", zap.String("host", cfg.MySQL.Host))
	}

	// 3. 初始化 Account
	account := usecase.NewAccount(
		memory.NewTransactionStore(),
		calendar.NewSystem(cfg.Account.DateLayout),
		sinks,
		usecase.WithWithdrawals(cfg.Account.WithdrawalsEnabled),
		usecase.WithLogger(log),
	)

	// 4. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatal("failed to listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpc_adapter.UnaryLoggingInterceptor(log)))
	grpc_adapter.RegisterAccountServiceServer(grpcServer, grpc_adapter.NewGrpcServer(account))

	go func() {
		log.Info("starting grpc server", zap.String("addr", cfg.Server.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("grpc server stopped", zap.Error(err))
		}
	}()

	// 5. 啟動 HTTP Server
	gin.SetMode(cfg.Server.GinMode)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           http_adapter.NewHandler(account, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server stopped", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()

	// 停止佇列並等待剩下的輸出寫完
	cancel()
	if archiveQueue != nil {
		select {
		case <-archiveQueue.Done():
		case <-shutdownCtx.Done():
			log.Warn("statement archive queue not drained before timeout")
		}
	}
	log.Info("server exited")
}
