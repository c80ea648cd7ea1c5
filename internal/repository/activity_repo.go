package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"certpoints/internal/model"
)

// ActivityRepo handles MongoDB operations for the activity points catalog
type ActivityRepo interface {
	Create(ctx context.Context, rule *model.ActivityRule) (string, error)
	GetByID(ctx context.Context, id string) (*model.ActivityRule, error)
	List(ctx context.Context) ([]*model.ActivityRule, error)
	Search(ctx context.Context, query string) ([]*model.ActivityRule, error)
	Update(ctx context.Context, rule *model.ActivityRule) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	InsertMany(ctx context.Context, rules []model.ActivityRule) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type activityRepo struct {
	collection *mongo.Collection
}

// NewActivityRepo creates a new activity catalog repository
func NewActivityRepo(db *mongo.Database) ActivityRepo {
	return &activityRepo{
		collection: db.Collection("events"),
	}
}

// catalog order is insertion order; the points engine breaks keyword ties by it
var catalogOrder = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func (r *activityRepo) Create(ctx context.Context, rule *model.ActivityRule) (string, error) {
	rule.ID = ""
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt

	result, err := r.collection.InsertOne(ctx, rule)
	if err != nil {
		return "", errors.Wrap(err, "inserting activity rule")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	rule.ID = oid.Hex()
	return rule.ID, nil
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.ActivityRule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var rule model.ActivityRule
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding activity rule %s", id)
	}
	rule.ID = id
	return &rule, nil
}

func (r *activityRepo) List(ctx context.Context) ([]*model.ActivityRule, error) {
	return r.find(ctx, bson.M{})
}

// Search matches query case-insensitively against names and keywords
func (r *activityRepo) Search(ctx context.Context, query string) ([]*model.ActivityRule, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"keywords": re},
	}})
}

func (r *activityRepo) find(ctx context.Context, filter bson.M) ([]*model.ActivityRule, error) {
	cursor, err := r.collection.Find(ctx, filter, catalogOrder)
	if err != nil {
		return nil, errors.Wrap(err, "finding activity rules")
	}
	defer cursor.Close(ctx)

	rules := []*model.ActivityRule{}
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, errors.Wrap(err, "decoding activity rules")
	}
	return rules, nil
}

// Update replaces the rule's fields, keeping its id and creation time.
// It reports false when no rule has that id.
func (r *activityRepo) Update(ctx context.Context, rule *model.ActivityRule) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(rule.ID)
	if err != nil {
		return false, nil
	}

	rule.UpdatedAt = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":              rule.Name,
		"activityHead":      rule.ActivityHead,
		"activityNumber":    rule.ActivityNumber,
		"keywords":          rule.Keywords,
		"pointsPerLevel":    rule.PointsPerLevel,
		"prizePoints":       rule.PrizePoints,
		"maxPoints":         rule.MaxPoints,
		"minDuration":       rule.MinDuration,
		"approvalDocuments": rule.ApprovalDocuments,
		"hasSpecialRules":   rule.HasSpecialRules,
		"specialRules":      rule.SpecialRules,
		"updatedAt":         rule.UpdatedAt,
	}})
	if err != nil {
		return false, errors.Wrapf(err, "updating activity rule %s", rule.ID)
	}
	return res.MatchedCount > 0, nil
}

func (r *activityRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, errors.Wrapf(err, "deleting activity rule %s", id)
	}
	return res.DeletedCount > 0, nil
}

// InsertMany stores rules in order, stamping creation times
func (r *activityRepo) InsertMany(ctx context.Context, rules []model.ActivityRule) (int, error) {
	if len(rules) == 0 {
		return 0, nil
	}
	now := time.Now()
	docs := make([]interface{}, len(rules))
	for i := range rules {
		rules[i].ID = ""
		rules[i].CreatedAt = now
		rules[i].UpdatedAt = now
		docs[i] = rules[i]
	}

	res, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, errors.Wrap(err, "inserting activity rules")
	}
	return len(res.InsertedIDs), nil
}

func (r *activityRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "deleting activity rules")
	}
	return res.DeletedCount, nil
}
