package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocumentDescribesParameters(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath string `json:"basePath"`
		Paths    map[string]map[string]struct {
			Parameters []struct {
				Name string `json:"name"`
				In   string `json:"in"`
			} `json:"parameters"`
			Security []map[string][]string `json:"security"`
		} `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	list := doc.Paths["/blog"]["get"]
	var names []string
	for _, p := range list.Parameters {
		assert.Equal(t, "query", p.In)
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"page", "pageSize", "tag", "author", "searchTerm", "isFeatured", "sortBy", "sortOrder"}, names)

	create := doc.Paths["/admin/blog"]["post"]
	require.Len(t, create.Parameters, 1)
	assert.Equal(t, "body", create.Parameters[0].In)
	assert.NotEmpty(t, create.Security)

	for _, def := range []string{"dto.CreatePostRequest", "dto.PaginatedBlogSummaries", "models.Tag", "services.ImportResult"} {
		assert.Contains(t, doc.Definitions, def)
	}
}
