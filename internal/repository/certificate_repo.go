package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"certpoints/internal/model"
)

// CertificateRepo handles MongoDB operations for uploaded certificates
type CertificateRepo interface {
	Create(ctx context.Context, cert *model.Certificate) (string, error)
	GetByID(ctx context.Context, id string) (*model.Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]model.Certificate, error)
	ListByClass(ctx context.Context, class string) ([]model.Certificate, error)
	UpdateReview(ctx context.Context, id string, status model.CertificateStatus, points int) error
	Delete(ctx context.Context, id string) error
	ApprovedTotals(ctx context.Context, class string) (map[string]int, error)
}

type certificateRepo struct {
	collection *mongo.Collection
}

// NewCertificateRepo creates a new certificate repository
func NewCertificateRepo(db *mongo.Database) CertificateRepo {
	return &certificateRepo{
		collection: db.Collection("certificates"),
	}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *certificateRepo) Create(ctx context.Context, cert *model.Certificate) (string, error) {
	cert.ID = ""
	cert.CreatedAt = time.Now()
	cert.UpdatedAt = cert.CreatedAt
	if cert.Status == "" {
		cert.Status = model.StatusPending
	}

	result, err := r.collection.InsertOne(ctx, cert)
	if err != nil {
		return "", errors.Wrap(err, "inserting certificate")
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		cert.ID = oid.Hex()
	}
	return cert.ID, nil
}

func (r *certificateRepo) GetByID(ctx context.Context, id string) (*model.Certificate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var cert model.Certificate
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&cert)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding certificate %s", id)
	}
	cert.ID = id
	return &cert, nil
}

func (r *certificateRepo) ListByUser(ctx context.Context, userID string) ([]model.Certificate, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *certificateRepo) ListByClass(ctx context.Context, class string) ([]model.Certificate, error) {
	return r.find(ctx, bson.M{"class": class})
}

func (r *certificateRepo) find(ctx context.Context, filter bson.M) ([]model.Certificate, error) {
	cursor, err := r.collection.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, errors.Wrap(err, "finding certificates")
	}
	defer cursor.Close(ctx)

	certs := []model.Certificate{}
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, errors.Wrap(err, "decoding certificates")
	}
	return certs, nil
}

// UpdateReview records a teacher's decision and the points it carries
func (r *certificateRepo) UpdateReview(ctx context.Context, id string, status model.CertificateStatus, points int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "invalid certificate id %q", id)
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":        status,
		"pointsAwarded": points,
		"updatedAt":     time.Now(),
	}})
	return errors.Wrapf(err, "updating certificate %s", id)
}

func (r *certificateRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "invalid certificate id %q", id)
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return errors.Wrapf(err, "deleting certificate %s", id)
}

// ApprovedTotals sums approved points per user of a class
func (r *certificateRepo) ApprovedTotals(ctx context.Context, class string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"class": class, "status": model.StatusApproved}}},
		{{Key: "$group", Value: bson.M{"_id": "$userId", "total": bson.M{"$sum": "$pointsAwarded"}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregating totals for class %s", class)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		UserID string `bson:"_id"`
		Total  int    `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decoding class totals")
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.UserID] = row.Total
	}
	return totals, nil
}
