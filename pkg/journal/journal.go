package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// rw-r--r-- (擁有者讀寫，其他人唯讀)
const FileMode fs.FileMode = 0644

// Journal 以 JSON Lines 格式附加寫入的紀錄檔
// 每筆紀錄一行，只附加不修改
type Journal struct {
	file *os.File
	w    *bufio.Writer
	mu   sync.Mutex
}

// Open 開啟或建立一個 Journal 檔案
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func Open(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileMode)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return &Journal{
		file: file,
		w:    bufio.NewWriter(file),
	}, nil
}

// Append 寫入一筆紀錄並刷入硬碟
func (j *Journal) Append(v any) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := json.NewEncoder(j.w).Encode(v); err != nil {
		return fmt.Errorf("encode journal record: %w", err)
	}
	if err := j.w.Flush(); err != nil {
		return fmt.Errorf("flush journal: %w", err)
	}
	return j.file.Sync()
}

// ReadAll 從頭讀取所有紀錄
// callback 每次收到一筆原始 JSON，避免一次將所有資料載入記憶體
func (j *Journal) ReadAll(callback func(raw json.RawMessage) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(j.file)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode journal record: %w", err)
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
}

// Close 刷出緩衝並關閉檔案
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.w.Flush(); err != nil {
		_ = j.file.Close()
		return err
	}
	return j.file.Close()
}
