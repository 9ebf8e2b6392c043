package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockIdempotencyStore struct {
	mock.Mock
}

func (m *mockIdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, eventID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) Release(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *mockIdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func TestIdempotentHandler_Handle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		claimed     bool
		storeErr    error
		handlerErr  error
		wantHandled int
		wantRelease bool
		wantErr     bool
	}{
		{name: "new event is processed", claimed: true, wantHandled: 1},
		{name: "duplicate is skipped", claimed: false, wantHandled: 0},
		{name: "store failure still processes", storeErr: errors.New("redis down"), wantHandled: 1},
		{name: "handler failure releases claim", claimed: true, handlerErr: errors.New("boom"), wantHandled: 1, wantRelease: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockIdempotencyStore)
			event := newTestEvent("MaintenanceCompleted")
			id := event.EventID().String()

			store.On("MarkProcessed", ctx, id, shared.DefaultIdempotencyTTL).Return(tt.claimed, tt.storeErr)
			if tt.wantRelease {
				store.On("Release", ctx, id).Return(nil)
			}

			inner := newRecordingHandler("MaintenanceCompleted")
			inner.err = tt.handlerErr
			h := NewIdempotentHandler(inner, store, 0, zap.NewNop())

			err := h.Handle(ctx, event)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantHandled, inner.count())
			assert.Equal(t, []string{"MaintenanceCompleted"}, h.EventTypes())
			store.AssertExpectations(t)
		})
	}
}
