package blogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListFilter_SearchCoversBothContentShapes(t *testing.T) {
	filter := listFilter(ListQuery{Search: "gopher"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)

	var fields []string
	for _, clause := range or {
		for field, v := range clause.(bson.M) {
			fields = append(fields, field)
			pattern := v.(primitive.Regex)
			assert.Equal(t, "gopher", pattern.Pattern)
			assert.Equal(t, "i", pattern.Options)
		}
	}
	assert.ElementsMatch(t, []string{"title", "content.text", "content.blocks.text"}, fields)
}

func TestListFilter_QuotesRegexMetacharacters(t *testing.T) {
	filter := listFilter(ListQuery{Search: "c++ (tips)"})

	or := filter["$or"].(bson.A)
	pattern := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(tips\)`, pattern.Pattern)
}

func TestListFilter_CategoryAndLocation(t *testing.T) {
	filter := listFilter(ListQuery{Category: "tech", Location: "oslo"})

	assert.Equal(t, "tech", filter["category"])
	assert.Equal(t, "oslo", filter["location"])
	assert.NotContains(t, filter, "$or")
}

func TestListFilter_Empty(t *testing.T) {
	assert.Empty(t, listFilter(ListQuery{}))
}
