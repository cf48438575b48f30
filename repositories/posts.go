package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/models"
)

// MongoPostRepository is the MongoDB BlogRepository. Tag associations live in the
// tag_ids array of each post document.
type MongoPostRepository struct {
	col  *mongo.Collection
	tags *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{
		col:  db.Collection(CollectionPosts),
		tags: db.Collection(CollectionTags),
	}
}

var _ BlogRepository = (*MongoPostRepository)(nil)

// ListPosts returns posts matching q and the total number of matches.
func (r *MongoPostRepository) ListPosts(ctx context.Context, q PostQuery) ([]models.BlogPost, int64, error) {
	q = q.Normalize()

	filter, ok, err := r.buildFilter(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return []models.BlogPost{}, 0, nil
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := Offset(q.Page, q.PageSize)
	if skip >= total {
		return []models.BlogPost{}, total, nil
	}
	findOpts := options.Find().
		SetSkip(skip).
		SetLimit(int64(q.PageSize)).
		SetSort(sortDocument(q.SortBy, q.SortOrder))

	posts, err := r.find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// buildFilter reports ok=false when the query can't match anything, e.g. an
// unknown tag.
func (r *MongoPostRepository) buildFilter(ctx context.Context, q PostQuery) (bson.M, bool, error) {
	filter := bson.M{}
	if q.Author != "" {
		filter["author"] = exactMatchRegex(q.Author)
	}
	if q.IsFeatured != nil {
		filter["is_featured"] = *q.IsFeatured
	}
	if q.SearchTerm != "" {
		rx := containsRegex(q.SearchTerm)
		filter["$or"] = []bson.M{
			{"title": rx},
			{"excerpt": rx},
			{"content": rx},
		}
	}
	if q.Tag != "" {
		tagIDs, err := r.resolveTag(ctx, q.Tag)
		if err != nil {
			return nil, false, err
		}
		if len(tagIDs) == 0 {
			return nil, false, nil
		}
		filter["tag_ids"] = bson.M{"$in": tagIDs}
	}
	return filter, true, nil
}

// resolveTag maps a tag id or name to matching tag ids.
func (r *MongoPostRepository) resolveTag(ctx context.Context, tag string) ([]string, error) {
	cur, err := r.tags.Find(ctx, bson.M{"$or": []bson.M{
		{"_id": tag},
		{"name": exactMatchRegex(tag)},
	}}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}

func (r *MongoPostRepository) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoPostRepository) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoPostRepository) CreatePost(ctx context.Context, p *models.BlogPost) error {
	if p.TagIDs == nil {
		p.TagIDs = []string{}
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return mapWriteError(err)
	}
	return r.hydrate(ctx, []*models.BlogPost{p})
}

func (r *MongoPostRepository) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	res, err := r.col.UpdateByID(ctx, p.ID, bson.M{
		"$set": bson.M{
			"title":       p.Title,
			"slug":        p.Slug,
			"content":     p.Content,
			"excerpt":     p.Excerpt,
			"author":      p.Author,
			"is_featured": p.IsFeatured,
			"updated_at":  p.UpdatedAt,
		},
	})
	if err != nil {
		return mapWriteError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoPostRepository) FeaturedPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	findOpts := options.Find().
		SetLimit(int64(limit)).
		SetSort(sortDocument(SortByCreatedAt, SortDesc))
	return r.find(ctx, bson.M{"is_featured": true}, findOpts)
}

func (r *MongoPostRepository) RecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	findOpts := options.Find().
		SetLimit(int64(limit)).
		SetSort(sortDocument(SortByCreatedAt, SortDesc))
	return r.find(ctx, bson.M{}, findOpts)
}

// IncrementViewCount increments view_count by 1 in a single server-side update.
func (r *MongoPostRepository) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"view_count": 1})

	var doc struct {
		ViewCount int64 `bson:"view_count"`
	}
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"view_count": 1},
	}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return doc.ViewCount, nil
}

// SetFeatured touches only is_featured and updated_at so concurrent edits of
// other fields are not overwritten.
func (r *MongoPostRepository) SetFeatured(ctx context.Context, id string, featured bool, updatedAt time.Time) (bool, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"is_featured": featured, "updated_at": updatedAt},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MongoPostRepository) findOne(ctx context.Context, filter bson.M) (*models.BlogPost, error) {
	var p models.BlogPost
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, []*models.BlogPost{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.BlogPost, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []models.BlogPost{}
	for cur.Next(ctx) {
		var p models.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*models.BlogPost, len(results))
	for i := range results {
		ptrs[i] = &results[i]
	}
	if err := r.hydrate(ctx, ptrs); err != nil {
		return nil, err
	}
	return results, nil
}

// hydrate fills Tags on each post from its TagIDs, keeping association order.
func (r *MongoPostRepository) hydrate(ctx context.Context, posts []*models.BlogPost) error {
	var ids []string
	for _, p := range posts {
		ids = append(ids, p.TagIDs...)
	}
	byID, err := loadTags(ctx, r.tags, r.col, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		p.Tags = orderedTags(p.TagIDs, byID)
	}
	return nil
}

// mapWriteError translates unique index violations into ErrDuplicate.
func mapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func sortDocument(sortBy, order string) bson.D {
	dir := -1
	if order == SortAsc {
		dir = 1
	}
	field := "created_at"
	switch sortBy {
	case SortByUpdatedAt:
		field = "updated_at"
	case SortByTitle:
		field = "title"
	case SortByViewCount:
		field = "view_count"
	}
	return bson.D{
		{Key: field, Value: dir},
		{Key: "_id", Value: dir},
	}
}

func exactMatchRegex(v string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(v) + "$", "$options": "i"}
}

func containsRegex(v string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(v), "$options": "i"}
}
