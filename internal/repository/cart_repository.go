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

// CartRepository manages cart items. Every read and delete is scoped to an owner uid.
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	ListByUID(ctx context.Context, uid string) ([]domain.CartItem, error)
	DeleteOwned(ctx context.Context, id, uid string) error
	DeleteManyOwned(ctx context.Context, ids []string, uid string) (int64, error)
}

type cartDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UID        string             `bson:"uid"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menuItemId"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
	Quantity   int                `bson:"quantity"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *cartDocument) toDomain() domain.CartItem {
	return domain.CartItem{
		ID:         d.ID.Hex(),
		UID:        d.UID,
		Email:      d.Email,
		MenuItemID: d.MenuItemID,
		Name:       d.Name,
		Image:      d.Image,
		Price:      d.Price,
		Quantity:   d.Quantity,
		CreatedAt:  d.CreatedAt,
	}
}

type cartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository builds the repository.
func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{coll: db.Collection(CartCollection)}
}

func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	now := time.Now().UTC()
	doc := cartDocument{
		UID:        item.UID,
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		Quantity:   item.Quantity,
		CreatedAt:  now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translateError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	item.CreatedAt = now
	return nil
}

func (r *cartRepository) ListByUID(ctx context.Context, uid string) ([]domain.CartItem, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"uid": bson.M{"$eq": uid}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	var docs []cartDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toDomain())
	}
	return items, nil
}

func (r *cartRepository) DeleteOwned(ctx context.Context, id, uid string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "uid": bson.M{"$eq": uid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepository) DeleteManyOwned(ctx context.Context, ids []string, uid string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	oids, err := objectIDs(ids)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}, "uid": bson.M{"$eq": uid}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
