package infra_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"travelplanner/internal/infra"
)

func observedGormLogger() (gormlogger.Interface, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return infra.NewGormLogger(zap.New(core)), logs
}

func query() (string, int64) { return `SELECT * FROM "travel_plans"`, 1 }

func TestGormLogger_QueryErrorIsLogged(t *testing.T) {
	l, logs := observedGormLogger()

	l.Trace(context.Background(), time.Now(), query, errors.New("connection refused"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "gorm", entry.LoggerName)
	assert.Equal(t, `SELECT * FROM "travel_plans"`, entry.ContextMap()["sql"])
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	l, logs := observedGormLogger()

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)

	assert.Equal(t, 0, logs.Len())
}

func TestGormLogger_SlowQueryWarns(t *testing.T) {
	l, logs := observedGormLogger()

	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

	require.Equal(t, 1, logs.FilterMessage("slow query").Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestGormLogger_FastQueryBelowInfoIsQuiet(t *testing.T) {
	l, logs := observedGormLogger()

	l.Trace(context.Background(), time.Now(), query, nil)
	l.Info(context.Background(), "migrated %d tables", 2)

	assert.Equal(t, 0, logs.Len())
}

func TestGormLogger_SilentMode(t *testing.T) {
	l, logs := observedGormLogger()
	silent := l.LogMode(gormlogger.Silent)

	silent.Trace(context.Background(), time.Now().Add(-time.Second), query, errors.New("boom"))
	silent.Error(context.Background(), "boom")

	assert.Equal(t, 0, logs.Len())

	l.Warn(context.Background(), "pool at %d%%", 90)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "pool at 90%", logs.All()[0].Message)
}
