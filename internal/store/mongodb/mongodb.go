// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mongodb implements [store.Store] on MongoDB.

Each record type lives in its own collection keyed by the string ID in `_id`.
Uniqueness is enforced by the indexes created in [Repository.EnsureIndexes]:

  - users: username, and email under a case-insensitive collation.
  - edges: (kind, actorId, targetId), which closes the toggle race.

Playlist video sets are kept inline in the playlist document and maintained
with $addToSet / $pull.
*/
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoplatform "github.com/taibuivan/yomitube/internal/platform/mongo"
	"github.com/taibuivan/yomitube/internal/store"
)

// Collection names.
const (
	collectionUsers     = "users"
	collectionVideos    = "videos"
	collectionComments  = "comments"
	collectionTweets    = "tweets"
	collectionPlaylists = "playlists"
	collectionEdges     = "edges"
)

// caseInsensitive compares strings ignoring case and diacritics.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// Repository implements [store.Store] against one MongoDB database.
type Repository struct {
	client    *mongo.Client
	users     *mongo.Collection
	videos    *mongo.Collection
	comments  *mongo.Collection
	tweets    *mongo.Collection
	playlists *mongo.Collection
	edges     *mongo.Collection
}

var _ store.Store = (*Repository)(nil)

// NewRepository binds the store to the named database.
func NewRepository(client *mongo.Client, database string) *Repository {
	db := client.Database(database)
	return &Repository{
		client:    client,
		users:     db.Collection(collectionUsers),
		videos:    db.Collection(collectionVideos),
		comments:  db.Collection(collectionComments),
		tweets:    db.Collection(collectionTweets),
		playlists: db.Collection(collectionPlaylists),
		edges:     db.Collection(collectionEdges),
	}
}

/*
EnsureIndexes creates the unique and lookup indexes. It is idempotent and
runs at startup.

Parameters:
  - ctx: context.Context

Returns:
  - error: Index creation failures
*/
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	plan := []struct {
		collection *mongo.Collection
		models     []mongo.IndexModel
	}{
		{r.users, []mongo.IndexModel{
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetCollation(caseInsensitive)},
		}},
		{r.videos, []mongo.IndexModel{
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{r.comments, []mongo.IndexModel{
			{Keys: bson.D{{Key: "videoId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{r.tweets, []mongo.IndexModel{
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{r.playlists, []mongo.IndexModel{
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{r.edges, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "actorId", Value: 1}, {Key: "targetId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "targetId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
	}

	for _, step := range plan {
		if _, err := step.collection.Indexes().CreateMany(ctx, step.models); err != nil {
			return err
		}
	}
	return nil
}

// Ping checks the primary.
func (r *Repository) Ping(ctx context.Context) error {
	return mongoplatform.Ping(ctx, r.client)
}

// now truncates to the millisecond precision BSON dates carry.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// newestFirst sorts by creation time then ID, both descending.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// windowed builds find options for a sorted skip/limit window. A non-positive
// limit means unbounded.
func windowed(sort bson.D, skip, limit int) *options.FindOptions {
	findOptions := options.Find().SetSort(sort).SetSkip(int64(max(skip, 0)))
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	return findOptions
}

// findAll decodes every document matched by filter into a slice of T.
func findAll[T any](ctx context.Context, collection *mongo.Collection, filter any, findOptions *options.FindOptions) ([]*T, error) {
	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0)
	for cursor.Next(ctx) {
		item := new(T)
		if err := cursor.Decode(item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, cursor.Err()
}

// findOne decodes a single document by ID.
func findOne[T any](ctx context.Context, collection *mongo.Collection, id string) (*T, error) {
	item := new(T)
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(item); err != nil {
		return nil, err
	}
	return item, nil
}

// deleteOne removes a document by ID, reporting ErrNoDocuments when absent.
func deleteOne(ctx context.Context, collection *mongo.Collection, id string) error {
	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// countAndFind runs the total count and the windowed find for one filter.
func countAndFind[T any](ctx context.Context, collection *mongo.Collection, filter any, findOptions *options.FindOptions) ([]*T, int, error) {
	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	items, err := findAll[T](ctx, collection, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

// afterUpdate returns options that make FindOneAndUpdate return the new document.
func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
