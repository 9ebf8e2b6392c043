package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfoDocumentsRoutes(t *testing.T) {
	var doc struct {
		Paths      map[string]map[string]json.RawMessage `json:"paths"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	for path, method := range map[string]string{
		"/auth/login":              "post",
		"/leases/{id}/renew":       "post",
		"/maintenance/{id}/reopen": "post",
		"/dashboard/summary":       "get",
		"/documents/{id}":          "delete",
	} {
		assert.Contains(t, doc.Paths[path], method, path)
	}
	assert.Contains(t, doc.Components.Schemas, "leasing.LeaseResponse")
	assert.Contains(t, doc.Components.Schemas, "dto.ErrorInfo")
}
