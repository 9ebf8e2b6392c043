package document

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpload() UploadParams {
	id := uuid.New()
	return UploadParams{
		EntityType:  EntityTypeLease,
		EntityID:    &id,
		FileName:    "signed lease.pdf",
		ContentType: "application/pdf",
		FileSize:    1024,
		Category:    CategoryLease,
	}
}

func TestNewPendingDocument(t *testing.T) {
	t.Run("creates pending document with key", func(t *testing.T) {
		orgID := uuid.New()
		p := validUpload()
		d, err := NewPendingDocument(orgID, uuid.New(), p)
		require.NoError(t, err)

		assert.Equal(t, StatusPending, d.Status)
		assert.Equal(t, "signed lease.pdf", d.Name)
		expected := "orgs/" + orgID.String() + "/lease/" + p.EntityID.String() + "/" + d.ID.String() + "/signed%20lease.pdf"
		assert.Equal(t, expected, d.StorageKey)
	})

	t.Run("general documents use general segment", func(t *testing.T) {
		d, err := NewPendingDocument(uuid.New(), uuid.New(), UploadParams{
			FileName:    "rules.txt",
			ContentType: "text/plain; charset=utf-8",
			FileSize:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, EntityTypeGeneral, d.EntityType)
		assert.Equal(t, CategoryOther, d.Category)
		assert.Contains(t, d.StorageKey, "/general/general/")
	})

	tests := []struct {
		name   string
		modify func(*UploadParams)
		code   string
	}{
		{"unknown entity type", func(p *UploadParams) { p.EntityType = "vehicle" }, "INVALID_ENTITY_TYPE"},
		{"missing entity id", func(p *UploadParams) { p.EntityID = nil }, "INVALID_ENTITY"},
		{"missing file name", func(p *UploadParams) { p.FileName = "  " }, "INVALID_FILE_NAME"},
		{"executable", func(p *UploadParams) { p.ContentType = "application/x-msdownload" }, "UNSUPPORTED_CONTENT_TYPE"},
		{"empty file", func(p *UploadParams) { p.FileSize = 0 }, "INVALID_FILE_SIZE"},
		{"over limit", func(p *UploadParams) { p.FileSize = MaxFileSize + 1 }, "FILE_TOO_LARGE"},
		{"bad category", func(p *UploadParams) { p.Category = "misc" }, "INVALID_CATEGORY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validUpload()
			tt.modify(&p)
			_, err := NewPendingDocument(uuid.New(), uuid.New(), p)
			var de *shared.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.code, de.Code)
		})
	}

	t.Run("exact limit is accepted", func(t *testing.T) {
		p := validUpload()
		p.FileSize = MaxFileSize
		_, err := NewPendingDocument(uuid.New(), uuid.New(), p)
		assert.NoError(t, err)
	})
}

func TestDocumentLifecycle(t *testing.T) {
	d, err := NewPendingDocument(uuid.New(), uuid.New(), validUpload())
	require.NoError(t, err)

	assert.False(t, d.IsActive())
	require.NoError(t, d.Confirm())
	assert.True(t, d.IsActive())
	assert.NotNil(t, d.UploadedAt)
	assert.Error(t, d.Confirm())

	require.NoError(t, d.Rename("Lease 2026", CategoryReport))
	assert.Equal(t, CategoryReport, d.Category)
	assert.Error(t, d.Rename("", ""))

	require.NoError(t, d.MarkDeleted())
	assert.Error(t, d.MarkDeleted())
	assert.Error(t, d.Rename("x", ""))

	events := d.GetDomainEvents()
	assert.Equal(t, EventTypeDocumentDeleted, events[len(events)-1].EventType())
}

func TestIsStale(t *testing.T) {
	d, err := NewPendingDocument(uuid.New(), uuid.New(), validUpload())
	require.NoError(t, err)

	assert.False(t, d.IsStale(time.Now()))
	assert.True(t, d.IsStale(time.Now().Add(25*time.Hour)))
	require.NoError(t, d.Confirm())
	assert.False(t, d.IsStale(time.Now().Add(25*time.Hour)))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "passwd", SanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "photo.jpg", SanitizeFileName(`C:\Users\me\photo.jpg`))
	assert.Equal(t, "ab.txt", SanitizeFileName("a\x00b.txt"))
	assert.Equal(t, "", SanitizeFileName(".."))
	long := SanitizeFileName(strings.Repeat("a", 300) + ".pdf")
	assert.Len(t, long, 255)
	assert.True(t, strings.HasSuffix(long, ".pdf"))
}

func TestJoinKey(t *testing.T) {
	assert.Equal(t, "a/b%2Fc/%C3%A9t%C3%A9%20%231.png", JoinKey("a", "b/c", "été #1.png"))
	orgID := uuid.New()
	assert.Equal(t, "orgs/"+orgID.String()+"/", OrgPrefix(orgID))
}

func TestIsAllowedContentType(t *testing.T) {
	assert.True(t, IsAllowedContentType("IMAGE/PNG"))
	assert.True(t, IsAllowedContentType("text/csv; charset=utf-8"))
	assert.False(t, IsAllowedContentType("text/html"))
	assert.False(t, IsAllowedContentType(""))
}
