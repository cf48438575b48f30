package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/models"
)

const (
	CollectionPosts = "posts"
	CollectionTags  = "tags"
)

// TagNameCollation compares tag names case-insensitively. The unique index on
// tags.name is created with the same collation.
var TagNameCollation = &options.Collation{Locale: "en", Strength: 2}

// MongoTagRepository is the MongoDB TagRepository.
type MongoTagRepository struct {
	col   *mongo.Collection
	posts *mongo.Collection
}

func NewMongoTagRepository(db *mongo.Database) *MongoTagRepository {
	return &MongoTagRepository{
		col:   db.Collection(CollectionTags),
		posts: db.Collection(CollectionPosts),
	}
}

var _ TagRepository = (*MongoTagRepository)(nil)

func (r *MongoTagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	return r.findWithCounts(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetCollation(TagNameCollation))
}

func (r *MongoTagRepository) ListTagsPaginated(ctx context.Context, page, pageSize int, searchTerm string) ([]models.Tag, int64, error) {
	page, pageSize = NormalizePage(page, pageSize)

	filter := bson.M{}
	if term := strings.TrimSpace(searchTerm); term != "" {
		filter["name"] = containsRegex(term)
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := Offset(page, pageSize)
	if skip >= total {
		return []models.Tag{}, total, nil
	}
	findOpts := options.Find().
		SetSkip(skip).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetCollation(TagNameCollation)
	tags, err := r.findWithCounts(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

func (r *MongoTagRepository) GetTag(ctx context.Context, id string) (*models.Tag, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne())
}

func (r *MongoTagRepository) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	return r.findOne(ctx, bson.M{"name": name}, options.FindOne().SetCollation(TagNameCollation))
}

func (r *MongoTagRepository) TagNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	filter := bson.M{"name": name}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1).SetCollation(TagNameCollation))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MongoTagRepository) CreateTag(ctx context.Context, t *models.Tag) error {
	_, err := r.col.InsertOne(ctx, t)
	return mapWriteError(err)
}

func (r *MongoTagRepository) UpdateTag(ctx context.Context, t *models.Tag) error {
	res, err := r.col.UpdateByID(ctx, t.ID, bson.M{
		"$set": bson.M{
			"name":       t.Name,
			"color":      t.Color,
			"updated_at": t.UpdatedAt,
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

// DeleteTag removes the tag and detaches it from every post.
func (r *MongoTagRepository) DeleteTag(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	if _, err := r.posts.UpdateMany(ctx,
		bson.M{"tag_ids": id},
		bson.M{"$pull": bson.M{"tag_ids": id}},
	); err != nil {
		return true, err
	}
	return true, nil
}

func (r *MongoTagRepository) TagsForPost(ctx context.Context, postID string) ([]models.Tag, error) {
	ids, err := r.postTagIDs(ctx, postID)
	if errors.Is(err, ErrNotFound) {
		return []models.Tag{}, nil
	}
	if err != nil {
		return nil, err
	}
	byID, err := loadTags(ctx, r.col, r.posts, ids)
	if err != nil {
		return nil, err
	}
	return orderedTags(ids, byID), nil
}

// PopularTags orders tags by number of posts, then by name.
func (r *MongoTagRepository) PopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	tags, err := r.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	SortByPopularity(tags)
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

func (r *MongoTagRepository) AddTagsToPost(ctx context.Context, postID string, tagIDs []string) (bool, error) {
	known, err := r.knownTagIDs(ctx, tagIDs)
	if err != nil || len(known) == 0 {
		return false, err
	}
	res, err := r.posts.UpdateByID(ctx, postID, bson.M{
		"$addToSet": bson.M{"tag_ids": bson.M{"$each": known}},
	})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoTagRepository) RemoveTagsFromPost(ctx context.Context, postID string, tagIDs []string) (bool, error) {
	if len(tagIDs) == 0 {
		return false, nil
	}
	res, err := r.posts.UpdateByID(ctx, postID, bson.M{
		"$pullAll": bson.M{"tag_ids": tagIDs},
	})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoTagRepository) SetPostTags(ctx context.Context, postID string, tagIDs []string) error {
	known, err := r.knownTagIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	if known == nil {
		known = []string{}
	}
	res, err := r.posts.UpdateByID(ctx, postID, bson.M{"$set": bson.M{"tag_ids": known}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// knownTagIDs keeps the ids that exist, in input order, without duplicates.
func (r *MongoTagRepository) knownTagIDs(ctx context.Context, tagIDs []string) ([]string, error) {
	ids := dedupe(tagIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	byID, err := loadTags(ctx, r.col, nil, ids)
	if err != nil {
		return nil, err
	}
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := byID[id]; ok {
			known = append(known, id)
		}
	}
	return known, nil
}

func (r *MongoTagRepository) postTagIDs(ctx context.Context, postID string) ([]string, error) {
	var doc struct {
		TagIDs []string `bson:"tag_ids"`
	}
	err := r.posts.FindOne(ctx, bson.M{"_id": postID},
		options.FindOne().SetProjection(bson.M{"tag_ids": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return doc.TagIDs, err
}

func (r *MongoTagRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*models.Tag, error) {
	var t models.Tag
	err := r.col.FindOne(ctx, filter, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	counts, err := postCounts(ctx, r.posts, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.PostCount = counts[t.ID]
	return &t, nil
}

func (r *MongoTagRepository) findWithCounts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Tag, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tags := []models.Tag{}
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	counts, err := postCounts(ctx, r.posts, ids)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		tags[i].PostCount = counts[tags[i].ID]
	}
	return tags, nil
}

// loadTags fetches tags by id. When posts is non-nil PostCount is filled in.
func loadTags(ctx context.Context, tags, posts *mongo.Collection, ids []string) (map[string]models.Tag, error) {
	ids = dedupe(ids)
	byID := make(map[string]models.Tag, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cur, err := tags.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var found []models.Tag
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	var counts map[string]int64
	if posts != nil {
		if counts, err = postCounts(ctx, posts, ids); err != nil {
			return nil, err
		}
	}
	for _, t := range found {
		t.PostCount = counts[t.ID]
		byID[t.ID] = t
	}
	return byID, nil
}

// postCounts returns the number of posts referencing each of tagIDs.
func postCounts(ctx context.Context, posts *mongo.Collection, tagIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(tagIDs))
	if len(tagIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tag_ids": bson.M{"$in": tagIDs}}}},
		{{Key: "$unwind", Value: "$tag_ids"}},
		{{Key: "$match", Value: bson.M{"tag_ids": bson.M{"$in": tagIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$tag_ids", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.ID] = row.Count
	}
	return counts, cur.Err()
}

func orderedTags(ids []string, byID map[string]models.Tag) []models.Tag {
	out := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// SortByPopularity orders tags by PostCount descending, then by name ignoring case.
func SortByPopularity(tags []models.Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].PostCount != tags[j].PostCount {
			return tags[i].PostCount > tags[j].PostCount
		}
		return strings.ToLower(tags[i].Name) < strings.ToLower(tags[j].Name)
	})
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
