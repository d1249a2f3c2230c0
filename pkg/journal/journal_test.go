package journal

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Seq  int    `json:"seq"`
	Line string `json:"line"`
}

func TestJournal_AppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.jsonl")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(record{Seq: 1, Line: "a"}))
	require.NoError(t, j.Append(record{Seq: 2, Line: "b"}))

	var got []record
	err = j.ReadAll(func(raw json.RawMessage) error {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []record{{1, "a"}, {2, "b"}}, got)

	// 讀取後仍可繼續附加
	require.NoError(t, j.Append(record{Seq: 3, Line: "c"}))
	require.NoError(t, j.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	count := 0
	require.NoError(t, reopened.ReadAll(func(json.RawMessage) error {
		count++
		return nil
	}))
	assert.Equal(t, 3, count)
}

func TestJournal_ReadAllEmpty(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "empty.jsonl"))
	require.NoError(t, err)
	defer j.Close()

	called := false
	require.NoError(t, j.ReadAll(func(json.RawMessage) error {
		called = true
		return nil
	}))
	assert.False(t, called)
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "x.jsonl"))
	assert.Error(t, err)
}
