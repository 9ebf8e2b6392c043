package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return reader, provider
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumOf(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestBusinessMetrics(t *testing.T) {
	t.Run("nil meter", func(t *testing.T) {
		_, err := NewBusinessMetrics(nil)
		assert.ErrorIs(t, err, ErrMeterNil)
	})

	t.Run("counts handled events", func(t *testing.T) {
		reader, provider := newTestMeter(t)
		bm, err := NewBusinessMetrics(provider.Meter("test"))
		require.NoError(t, err)

		ctx := context.Background()
		orgID := uuid.New()

		lease := &leasing.Lease{OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID), MonthlyRent: decimal.NewFromInt(1200)}
		tx := &finance.Transaction{
			OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
			Type:             finance.TransactionTypeIncome,
			Category:         finance.CategoryRent,
			Amount:           decimal.NewFromInt(1200),
		}

		require.NoError(t, bm.Handle(ctx, leasing.NewLeaseActivatedEvent(lease)))
		require.NoError(t, bm.Handle(ctx, finance.NewTransactionRecordedEvent(tx)))
		require.NoError(t, bm.Handle(ctx, finance.NewTransactionRecordedEvent(tx)))

		metrics := collect(t, reader)
		assert.Equal(t, int64(1), sumOf(t, metrics["lease_activated_total"]))
		assert.Equal(t, int64(2), sumOf(t, metrics["transaction_recorded_total"]))
		assert.Len(t, bm.EventTypes(), 4)
	})
}

func TestRegisterDBMetrics(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	reader, provider := newTestMeter(t)
	m, err := RegisterDBMetrics(db, provider.Meter("db"), time.Nanosecond, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Stop() })

	type sample struct {
		ID   int
		Name string
	}
	require.NoError(t, db.AutoMigrate(&sample{}))
	require.NoError(t, db.Create(&sample{ID: 1, Name: "a"}).Error)
	var got sample
	require.NoError(t, db.First(&got, 1).Error)

	metrics := collect(t, reader)
	assert.GreaterOrEqual(t, sumOf(t, metrics["db_query_total"]), int64(2))
	assert.GreaterOrEqual(t, sumOf(t, metrics["db_slow_query_total"]), int64(2))
	assert.Contains(t, metrics, "db_pool_connections")
	assert.Contains(t, metrics, "db_query_duration_seconds")
}
