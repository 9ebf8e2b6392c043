package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/document"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type docFixture struct {
	orgID   uuid.UUID
	userID  uuid.UUID
	docs    *MockDocumentRepository
	storage *MockObjectStorage
	leases  *MockLeaseRepository
	bus     *recordingBus
	svc     *DocumentService
	now     time.Time
}

func newDocFixture() *docFixture {
	f := &docFixture{
		orgID:   uuid.New(),
		userID:  uuid.New(),
		docs:    new(MockDocumentRepository),
		storage: new(MockObjectStorage),
		leases:  new(MockLeaseRepository),
		bus:     &recordingBus{},
		now:     time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewDocumentService(f.docs, f.storage, EntityRepositories{Leases: f.leases},
		URLExpiry{Upload: 10 * time.Minute, Download: time.Minute},
		appevent.NewPublisher(f.bus, nil), zap.NewNop())
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *docFixture) pending(t *testing.T) *document.Document {
	t.Helper()
	d, err := document.NewPendingDocument(f.orgID, f.userID, document.UploadParams{
		FileName:    "inspection photo.jpg",
		ContentType: "image/jpeg",
		FileSize:    2048,
		Category:    document.CategoryPhoto,
	})
	require.NoError(t, err)
	return d
}

func (f *docFixture) active(t *testing.T) *document.Document {
	t.Helper()
	d := f.pending(t)
	require.NoError(t, d.Confirm())
	d.ClearDomainEvents()
	return d
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	de, ok := shared.AsDomainError(err)
	require.True(t, ok, "expected domain error, got %v", err)
	return de.Code
}

func TestDocumentService_InitiateUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("presigns the org scoped key", func(t *testing.T) {
		f := newDocFixture()
		leaseID := uuid.New()
		f.leases.On("FindByIDForOrg", ctx, f.orgID, leaseID).Return(nil, nil)
		f.storage.On("PresignPut", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "orgs/"+f.orgID.String()+"/lease/"+leaseID.String()+"/") &&
				strings.HasSuffix(key, "/signed%20lease.pdf")
		}), "application/pdf", int64(1200), 10*time.Minute).Return("https://s3.example/put", nil)
		f.docs.On("Save", ctx, mock.AnythingOfType("*document.Document")).Return(nil)

		resp, err := f.svc.InitiateUpload(ctx, f.orgID, f.userID, InitiateUploadRequest{
			EntityType:  "lease",
			EntityID:    &leaseID,
			FileName:    "C:\\scans\\signed lease.pdf",
			ContentType: "application/pdf",
			FileSize:    1200,
		})
		require.NoError(t, err)

		assert.Equal(t, "https://s3.example/put", resp.UploadURL)
		assert.Equal(t, "PUT", resp.Method)
		assert.Equal(t, "application/pdf", resp.Headers["Content-Type"])
		assert.Equal(t, f.now.Add(10*time.Minute), resp.ExpiresAt)
		assert.Equal(t, "pending", resp.Document.Status)
		assert.Equal(t, "signed lease.pdf", resp.Document.FileName)
		f.docs.AssertExpectations(t)
	})

	t.Run("unknown entity", func(t *testing.T) {
		f := newDocFixture()
		leaseID := uuid.New()
		f.leases.On("FindByIDForOrg", ctx, f.orgID, leaseID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.InitiateUpload(ctx, f.orgID, f.userID, InitiateUploadRequest{
			EntityType:  "lease",
			EntityID:    &leaseID,
			FileName:    "a.pdf",
			ContentType: "application/pdf",
			FileSize:    10,
		})

		assert.Equal(t, "INVALID_ENTITY", errorCode(t, err))
		f.storage.AssertNotCalled(t, "PresignPut", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	tests := []struct {
		name string
		req  InitiateUploadRequest
		code string
	}{
		{"executable", InitiateUploadRequest{FileName: "x.exe", ContentType: "application/x-msdownload", FileSize: 10}, "UNSUPPORTED_CONTENT_TYPE"},
		{"too large", InitiateUploadRequest{FileName: "x.pdf", ContentType: "application/pdf", FileSize: document.MaxFileSize + 1}, "FILE_TOO_LARGE"},
		{"entity id missing", InitiateUploadRequest{EntityType: "unit", FileName: "x.pdf", ContentType: "application/pdf", FileSize: 10}, "INVALID_ENTITY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDocFixture()
			_, err := f.svc.InitiateUpload(ctx, f.orgID, f.userID, tt.req)
			assert.Equal(t, tt.code, errorCode(t, err))
			f.docs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestDocumentService_ConfirmUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("activates when object exists", func(t *testing.T) {
		f := newDocFixture()
		d := f.pending(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)
		f.storage.On("ObjectExists", ctx, d.StorageKey).Return(true, int64(2100), nil)
		f.docs.On("Save", ctx, d).Return(nil)

		resp, err := f.svc.ConfirmUpload(ctx, f.orgID, d.ID)
		require.NoError(t, err)

		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, int64(2100), resp.FileSize)
		assert.NotNil(t, resp.UploadedAt)
		assert.Equal(t, []string{document.EventTypeDocumentUploaded}, f.bus.types())
	})

	t.Run("object missing", func(t *testing.T) {
		f := newDocFixture()
		d := f.pending(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)
		f.storage.On("ObjectExists", ctx, d.StorageKey).Return(false, int64(0), nil)

		_, err := f.svc.ConfirmUpload(ctx, f.orgID, d.ID)

		assert.Equal(t, "UPLOAD_NOT_FOUND", errorCode(t, err))
		assert.Equal(t, document.StatusPending, d.Status)
	})

	t.Run("oversized object is removed", func(t *testing.T) {
		f := newDocFixture()
		d := f.pending(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)
		f.storage.On("ObjectExists", ctx, d.StorageKey).Return(true, document.MaxFileSize+1, nil)
		f.storage.On("DeleteObject", ctx, d.StorageKey).Return(nil)

		_, err := f.svc.ConfirmUpload(ctx, f.orgID, d.ID)

		assert.Equal(t, "FILE_TOO_LARGE", errorCode(t, err))
		f.storage.AssertExpectations(t)
	})

	t.Run("already active", func(t *testing.T) {
		f := newDocFixture()
		d := f.active(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)

		_, err := f.svc.ConfirmUpload(ctx, f.orgID, d.ID)

		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestDocumentService_GetDownloadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("active document", func(t *testing.T) {
		f := newDocFixture()
		d := f.active(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)
		f.storage.On("PresignGet", ctx, d.StorageKey, "inspection photo.jpg", time.Minute).Return("https://s3.example/get", nil)

		resp, err := f.svc.GetDownloadURL(ctx, f.orgID, d.ID)
		require.NoError(t, err)

		assert.Equal(t, "https://s3.example/get", resp.URL)
		assert.Equal(t, f.now.Add(time.Minute), resp.ExpiresAt)
	})

	t.Run("pending document", func(t *testing.T) {
		f := newDocFixture()
		d := f.pending(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)

		_, err := f.svc.GetDownloadURL(ctx, f.orgID, d.ID)

		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("storage failure does not fail delete", func(t *testing.T) {
		f := newDocFixture()
		d := f.active(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)
		f.docs.On("Save", ctx, d).Return(nil)
		f.storage.On("DeleteObject", ctx, d.StorageKey).Return(errors.New("access denied"))

		require.NoError(t, f.svc.Delete(ctx, f.orgID, d.ID))

		assert.Equal(t, document.StatusDeleted, d.Status)
		assert.Equal(t, []string{document.EventTypeDocumentDeleted}, f.bus.types())
	})

	t.Run("save failure keeps object", func(t *testing.T) {
		f := newDocFixture()
		d := f.active(t)
		f.docs.On("FindByIDForOrg", ctx, f.orgID, d.ID).Return(d, nil)
		f.docs.On("Save", ctx, d).Return(shared.ErrConcurrencyConflict)

		err := f.svc.Delete(ctx, f.orgID, d.ID)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		f.storage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})
}

func TestDocumentService_PurgeStaleUploads(t *testing.T) {
	ctx := context.Background()

	t.Run("pages through stale uploads", func(t *testing.T) {
		f := newDocFixture()
		cutoff := f.now.Add(-document.StaleUploadAge)

		first := make([]document.Document, purgeBatchSize)
		for i := range first {
			first[i] = *f.pending(t)
		}
		second := []document.Document{*f.pending(t)}

		f.docs.On("FindStalePending", ctx, f.orgID, cutoff, purgeBatchSize).Return(first, nil).Once()
		f.docs.On("FindStalePending", ctx, f.orgID, cutoff, purgeBatchSize).Return(second, nil).Once()
		f.storage.On("DeleteObject", ctx, mock.Anything).Return(nil)
		f.docs.On("HardDelete", ctx, f.orgID, mock.Anything).Return(nil)

		n, err := f.svc.PurgeStaleUploads(ctx, f.orgID)
		require.NoError(t, err)

		assert.Equal(t, purgeBatchSize+1, n)
		f.docs.AssertNumberOfCalls(t, "HardDelete", purgeBatchSize+1)
	})

	t.Run("nothing to purge", func(t *testing.T) {
		f := newDocFixture()
		f.docs.On("FindStalePending", ctx, f.orgID, mock.Anything, purgeBatchSize).Return([]document.Document{}, nil)

		n, err := f.svc.PurgeStaleUploads(ctx, f.orgID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("delete failure stops the run", func(t *testing.T) {
		f := newDocFixture()
		docs := []document.Document{*f.pending(t), *f.pending(t)}
		f.docs.On("FindStalePending", ctx, f.orgID, mock.Anything, purgeBatchSize).Return(docs, nil)
		f.storage.On("DeleteObject", ctx, mock.Anything).Return(nil)
		f.docs.On("HardDelete", ctx, f.orgID, docs[0].ID).Return(nil)
		f.docs.On("HardDelete", ctx, f.orgID, docs[1].ID).Return(errors.New("db down"))

		n, err := f.svc.PurgeStaleUploads(ctx, f.orgID)

		assert.Error(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()
	f := newDocFixture()
	entityID := uuid.New()
	matcher := mock.MatchedBy(func(fl shared.Filter) bool {
		return fl.Filters["entity_id"] == entityID && fl.Filters["entity_type"] == "tenant" && fl.Search == "passport"
	})
	f.docs.On("FindAllForOrg", ctx, f.orgID, matcher).Return([]document.Document{*f.active(t)}, nil)
	f.docs.On("CountForOrg", ctx, f.orgID, matcher).Return(int64(1), nil)

	items, total, err := f.svc.List(ctx, f.orgID, DocumentListFilter{
		EntityType: "tenant",
		EntityID:   entityID.String(),
		Search:     "passport",
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), total)
}
