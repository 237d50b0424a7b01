package pitchdeck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerDocument(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	for path, method := range map[string]string{
		"/":                            "get",
		"/api/health":                  "get",
		"/livez":                       "get",
		"/readyz":                      "get",
		"/auth/signup":                 "post",
		"/auth/login":                  "post",
		"/auth/me":                     "get",
		"/auth/error":                  "get",
		"/api/investor/pitches":        "get",
		"/api/startups":                "post",
		"/api/startups/{id}/interests": "get",
		"/api/investor/interest/{id}":  "post",
	} {
		require.Contains(t, doc.Paths, path)
		require.Contains(t, doc.Paths[path], method, path)
	}
}
