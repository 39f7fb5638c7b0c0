package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/symtoscan/symtoscan-api/schema"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidAge      = errors.New("age must be between 1 and 119")
	ErrInvalidTheme    = errors.New("unknown theme preference")
)

type ProfileOperator interface {
	GetProfile(id string) (*schema.Profile, error)
	SaveProfile(id, email, displayName string, age int) error
	UpdateProfileTheme(id, theme string) error
}

func (m *mongoDB) GetProfile(id string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var p schema.Profile
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &p, nil
}

// SaveProfile upserts the name and age of a profile document. Only the
// named fields are set so unrelated fields, such as the theme preference,
// survive a save.
func (m *mongoDB) SaveProfile(id, email, displayName string, age int) error {
	if age <= 0 || age >= 120 {
		return ErrInvalidAge
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	update := bson.M{
		"$set": bson.M{
			"id":           id,
			"email":        email,
			"display_name": displayName,
			"age":          age,
		},
	}

	_, err := c.UpdateOne(ctx, bson.M{"id": id}, update, options.Update().SetUpsert(true))
	return err
}

func (m *mongoDB) UpdateProfileTheme(id, theme string) error {
	if theme != schema.ThemeLight && theme != schema.ThemeDark {
		return ErrInvalidTheme
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	update := bson.M{"$set": bson.M{"id": id, "theme": theme}}

	_, err := c.UpdateOne(ctx, bson.M{"id": id}, update, options.Update().SetUpsert(true))
	return err
}
