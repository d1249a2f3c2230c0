package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-bank-kata/pkg/mysql"
)

// DefaultPath 預設設定檔位置
const DefaultPath = "config/config.yaml"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Account AccountConfig `yaml:"account"`
	Printer PrinterConfig `yaml:"printer"`
	MySQL   mysql.Config  `yaml:"mysql"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
	HTTPAddr string `yaml:"http_addr"`
	// gin 模式: "debug", "release", "test"
	GinMode string `yaml:"gin_mode"`
}

type AccountConfig struct {
	// 關閉時 withdraw 回傳 unsupported operation
	WithdrawalsEnabled bool   `yaml:"withdrawals_enabled"`
	DateLayout         string `yaml:"date_layout"`
}

// PrinterConfig 對帳單輸出目的地，可同時開啟多個
type PrinterConfig struct {
	Console     bool   `yaml:"console"`
	Log         bool   `yaml:"log"`
	JournalPath string `yaml:"journal_path"`
	// 寫入 MySQL statement_lines，需要 mysql 區段
	Archive       bool `yaml:"archive"`
	ArchiveBuffer int  `yaml:"archive_buffer"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load 載入設定
//
// 參數:
//
//	path: YAML 設定檔路徑
//	required: 為 true 時設定檔不存在會回傳錯誤，否則使用預設值
//	envFiles: 要載入的 .env 檔，未指定時載入工作目錄下的 .env (不存在不算錯誤)
//
// 回傳:
//
//	Config: 套用檔案、環境變數與預設值後的設定
//	error: 讀取或解析錯誤
func Load(path string, required bool, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.GRPCAddr, "BANK_GRPC_ADDR")
	setString(&c.Server.HTTPAddr, "BANK_HTTP_ADDR")
	setString(&c.Server.GinMode, "BANK_GIN_MODE")
	setString(&c.Account.DateLayout, "BANK_DATE_LAYOUT")
	setString(&c.Printer.JournalPath, "BANK_JOURNAL_PATH")
	setString(&c.Log.Level, "BANK_LOG_LEVEL")
	setString(&c.MySQL.Host, "MYSQL_HOST")
	setString(&c.MySQL.User, "MYSQL_USER")
	setString(&c.MySQL.Password, "MYSQL_PASSWORD")
	setString(&c.MySQL.DBName, "MYSQL_DATABASE")

	if err := setBool(&c.Account.WithdrawalsEnabled, "BANK_WITHDRAWALS_ENABLED"); err != nil {
		return err
	}
	if err := setBool(&c.Printer.Archive, "BANK_ARCHIVE_ENABLED"); err != nil {
		return err
	}
	if v := os.Getenv("MYSQL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", v, err)
		}
		c.MySQL.Port = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.GRPCAddr == "" {
		c.Server.GRPCAddr = ":50051"
	}
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = ":8080"
	}
	if c.Server.GinMode == "" {
		c.Server.GinMode = "release"
	}
	if c.Account.DateLayout == "" {
		c.Account.DateLayout = "02/01/2006"
	}
	if c.Printer.ArchiveBuffer == 0 {
		c.Printer.ArchiveBuffer = 1000
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.MySQL.ApplyDefaults()
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = b
	return nil
}
