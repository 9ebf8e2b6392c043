package document

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const generalSegment = "general"

// BuildStorageKey returns the object key for a document:
// orgs/{org}/{entity_type}/{entity_id|general}/{document_id}/{file_name}
// with every segment percent-encoded.
func BuildStorageKey(orgID uuid.UUID, entityType EntityType, entityID *uuid.UUID, documentID uuid.UUID, fileName string) string {
	entity := generalSegment
	if entityID != nil {
		entity = entityID.String()
	}
	return JoinKey("orgs", orgID.String(), string(entityType), entity, documentID.String(), fileName)
}

// JoinKey percent-encodes each segment and joins them with "/"
func JoinKey(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

// OrgPrefix returns the key prefix under which all of an organization's objects live
func OrgPrefix(orgID uuid.UUID) string {
	return JoinKey("orgs", orgID.String()) + "/"
}
