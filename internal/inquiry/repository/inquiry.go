package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	inquiryerrors "nexusplater/internal/inquiry/errors"
	"nexusplater/pkg/config"
	"nexusplater/pkg/model"
)

const CollectionName = "inquiries"

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	FindByID(ctx context.Context, id string) (*model.Inquiry, error)
	FindByMobileBetween(ctx context.Context, mobile string, start, end time.Time) (*model.Inquiry, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoInquiryRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoInquiryRepository(cfg *config.Config) InquiryRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoInquiryRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds a store round trip, respecting any tighter deadline
// already on the context.
func (r *mongoInquiryRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

// EnsureIndexes creates the compound index backing the same-day duplicate
// lookup. The index is deliberately non-unique: the check-then-insert
// behavior of the duplicate guard is the documented contract.
func (r *mongoInquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "mobile", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("mobile_created_at"),
	})
	if err != nil {
		return fmt.Errorf("failed to create inquiry indexes: %w", err)
	}
	return nil
}

func (r *mongoInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	result, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		inquiry.ID = oid.Hex()
	}
	return nil
}

func (r *mongoInquiryRepository) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inquiryerrors.ErrInvalidID, id)
	}

	var inquiry model.Inquiry
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inquiryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return &inquiry, nil
}

// FindByMobileBetween returns the most recent inquiry for mobile with
// created_at in the half-open interval [start, end), or ErrNotFound.
func (r *mongoInquiryRepository) FindByMobileBetween(ctx context.Context, mobile string, start, end time.Time) (*model.Inquiry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"mobile": mobile,
		"created_at": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var inquiry model.Inquiry
	err := r.collection.FindOne(ctx, filter, opts).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inquiryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inquiry by mobile: %w", err)
	}

	return &inquiry, nil
}

func (r *mongoInquiryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}
