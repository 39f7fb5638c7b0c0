package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestScanHistoryQuery(t *testing.T) {
	query, opts := scanHistoryQuery("user-1", 500, 10)

	assert.Equal(t, bson.M{
		"profile_id": "user-1",
		"ts":         bson.M{"$lt": int64(500)},
	}, query)

	assert.Equal(t, bson.M{"ts": -1}, opts.Sort)
	assert.Equal(t, int64(10), *opts.Limit)
}
