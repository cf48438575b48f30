package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-backend/internal/logger"
	"blog-backend/repositories"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init connects the global Mongo client, selects dbName and ensures indexes.
// Subsequent calls return the result of the first one.
func Init(ctx context.Context, uri, dbName string) error {
	var initErr error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("mongodb connected", logger.Fields{"database": dbName})
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Close disconnects the global client if Init succeeded.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	posts := d.Collection(repositories.CollectionPosts)
	if _, err := posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "tag_ids", Value: 1}},
			Options: options.Index().SetName("idx_tag_ids"),
		},
		{
			Keys:    bson.D{{Key: "is_featured", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_featured_created_at"),
		},
	}); err != nil {
		return err
	}

	tags := d.Collection(repositories.CollectionTags)
	if _, err := tags.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetName("uniq_name_ci").
			SetUnique(true).
			SetCollation(repositories.TagNameCollation),
	}); err != nil {
		return err
	}
	return nil
}
