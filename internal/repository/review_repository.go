package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// ReviewRepository stores customer reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
}

type reviewDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UID       string             `bson:"uid,omitempty"`
	Name      string             `bson:"name"`
	Details   string             `bson:"details"`
	Rating    int                `bson:"rating"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository builds the repository.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{coll: db.Collection(ReviewCollection)}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	now := time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, reviewDocument{
		UID:       review.UID,
		Name:      review.Name,
		Details:   review.Details,
		Rating:    review.Rating,
		CreatedAt: now,
	})
	if err != nil {
		return translateError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid.Hex()
	}
	review.CreatedAt = now
	return nil
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []reviewDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, domain.Review{
			ID:        d.ID.Hex(),
			UID:       d.UID,
			Name:      d.Name,
			Details:   d.Details,
			Rating:    d.Rating,
			CreatedAt: d.CreatedAt,
		})
	}
	return reviews, nil
}
