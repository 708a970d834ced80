package historysvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRecentFindOptions(t *testing.T) {
	opts := recentFindOptions()

	// Read path luôn cắt ở 50 bản ghi mới nhất
	assert.NotNil(t, opts.Limit)
	assert.Equal(t, int64(defaultHistoryLimit), *opts.Limit)

	sort, ok := opts.Sort.(bson.D)
	assert.True(t, ok)
	assert.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}
