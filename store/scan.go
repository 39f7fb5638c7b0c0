package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/symtoscan/symtoscan-api/schema"
)

type ScanReport interface {
	AppendScan(profileID string, record schema.ScanRecord) (*schema.ScanRecord, error)
	ListScans(profileID string, earlierThan, limit int64) ([]schema.ScanRecord, error)
}

// AppendScan saves a completed scan into a user's history. The record ID
// and timestamp are assigned here, never by the caller, so ordering is
// consistent across devices.
func (m *mongoDB) AppendScan(profileID string, record schema.ScanRecord) (*schema.ScanRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record.ID = uuid.New().String()
	record.ProfileID = profileID
	record.Timestamp = time.Now().Unix()

	c := m.client.Database(m.database).Collection(schema.ScanCollection)
	if _, err := c.InsertOne(ctx, record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (m *mongoDB) ListScans(profileID string, earlierThan, limit int64) ([]schema.ScanRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ScanCollection)

	query, options := scanHistoryQuery(profileID, earlierThan, limit)
	cur, err := c.Find(ctx, query, options)
	if err != nil {
		return nil, err
	}

	records := make([]schema.ScanRecord, 0)
	for cur.Next(ctx) {
		var r schema.ScanRecord
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, nil
}

func scanHistoryQuery(profileID string, earlierThan, limit int64) (bson.M, *options.FindOptions) {
	query := bson.M{
		"profile_id": profileID,
		"ts":         bson.M{"$lt": earlierThan},
	}
	options := options.Find()
	options = options.SetSort(bson.M{"ts": -1}).SetLimit(limit)
	return query, options
}
