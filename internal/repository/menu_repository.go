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

// MenuFilter narrows menu listings. Zero Limit means no limit.
type MenuFilter struct {
	Category string
	Skip     int64
	Limit    int64
}

// MenuRepository manages menu persistence.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error)
	Count(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) error
	Delete(ctx context.Context, id string) error
}

type menuDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Recipe    string             `bson:"recipe"`
	Image     string             `bson:"image"`
	Category  string             `bson:"category"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *menuDocument) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Recipe:    d.Recipe,
		Image:     d.Image,
		Category:  d.Category,
		Price:     d.Price,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type menuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository builds the repository.
func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &menuRepository{coll: db.Collection(MenuCollection)}
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	now := time.Now().UTC()
	doc := menuDocument{
		Name:      item.Name,
		Recipe:    item.Recipe,
		Image:     item.Image,
		Category:  item.Category,
		Price:     item.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translateError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc menuDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	item := doc.toDomain()
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	cur, err := r.coll.Find(ctx, categoryFilter(filter.Category), opts)
	if err != nil {
		return nil, err
	}
	var docs []menuDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toDomain())
	}
	return items, nil
}

func (r *menuRepository) Count(ctx context.Context, category string) (int64, error) {
	return r.coll.CountDocuments(ctx, categoryFilter(category))
}

func (r *menuRepository) Update(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Recipe != nil {
		set["recipe"] = *patch.Recipe
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// categoryFilter matches one category, or every item when category is empty.
func categoryFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": bson.M{"$eq": category}}
}
