package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	t.Run("logs queries at debug when level allows", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info)

		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "SELECT * FROM invoices", 3
		}, nil)

		entries := logs.FilterMessage("SQL Query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "SELECT * FROM invoices", entries[0].ContextMap()["sql"])
		assert.Equal(t, int64(3), entries[0].ContextMap()["rows"])
	})

	t.Run("errors are logged, record-not-found is not", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "SELECT 1", 0
		}, gorm.ErrRecordNotFound)
		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "INSERT INTO receipts", 0
		}, assert.AnError)

		assert.Equal(t, 0, logs.FilterMessage("SQL Error").
			FilterField(zap.String("sql", "SELECT 1")).Len())
		assert.Equal(t, 1, logs.FilterMessage("SQL Error").
			FilterField(zap.String("sql", "INSERT INTO receipts")).Len())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn,
			WithSlowThreshold(time.Nanosecond))

		begin := time.Now().Add(-time.Second)
		gl.Trace(context.Background(), begin, func() (string, int64) {
			return "SELECT pg_sleep(1)", 0
		}, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)
	})

	t.Run("silent level suppresses everything", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "SELECT 1", 1
		}, nil)

		assert.Equal(t, 0, logs.Len())
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Silent)
	elevated := gl.LogMode(gormlogger.Info)
	assert.NotSame(t, gormlogger.Interface(gl), elevated)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("anything"))
}
