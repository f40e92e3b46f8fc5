package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocListsOperations(t *testing.T) {
	SwaggerInfo.Title = "EventDesk API"
	SwaggerInfo.Version = "1.0"
	SwaggerInfo.BasePath = "/api/v1"

	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath    string                    `json:"basePath"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.NotEmpty(t, doc.Paths)

	for _, route := range []string{
		"/projects",
		"/projects/{projectID}/stats",
		"/projects/{projectID}/{entity}",
		"/projects/{projectID}/utm/{utmID}/track",
		"/projects/{projectID}/agenda/days/{dayID}/sessions",
		"/auth/login",
	} {
		assert.Contains(t, doc.Paths, route)
	}

	assert.Contains(t, doc.Definitions, "domain.Project")
	assert.Contains(t, doc.Definitions, "response.Err")
}
