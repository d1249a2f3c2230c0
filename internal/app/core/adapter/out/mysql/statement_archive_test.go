package mysql

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestNewStatementLine(t *testing.T) {
	a := newStatementLine(1, "Date       || Amount || Balance")
	b := newStatementLine(2, "15/04/2025 || 100    || 100    ")

	assert.Len(t, a.RefID, 16)
	assert.NotEqual(t, a.RefID, b.RefID)
	assert.Equal(t, uint64(1), a.Sequence)
	assert.Equal(t, "15/04/2025 || 100    || 100    ", b.Line)
	assert.Zero(t, a.ID)
}

func TestSQLStatementLine_TableName(t *testing.T) {
	assert.Equal(t, "statement_lines", (&sqlStatementLine{}).TableName())
}

func TestSQLStatementLine_LineColumnIsUnbounded(t *testing.T) {
	s, err := schema.Parse(&sqlStatementLine{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Line")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("text"), field.DataType)

	long := strings.Repeat("x", 300) + " || 100    || 100    "
	assert.Equal(t, long, newStatementLine(1, long).Line)
}
