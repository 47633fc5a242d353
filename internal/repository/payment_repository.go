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

// PaymentRepository stores settled orders.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByUID(ctx context.Context, uid string) ([]domain.Payment, error)
}

type paymentDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Reference     string               `bson:"reference"`
	UID           string               `bson:"uid"`
	Email         string               `bson:"email"`
	TransactionID string               `bson:"transactionId"`
	Amount        float64              `bson:"amount"`
	CartItemIDs   []primitive.ObjectID `bson:"cartItemIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds"`
	Status        domain.PaymentStatus `bson:"status"`
	CreatedAt     time.Time            `bson:"createdAt"`
}

func (d *paymentDocument) toDomain() domain.Payment {
	return domain.Payment{
		ID:            d.ID.Hex(),
		Reference:     d.Reference,
		UID:           d.UID,
		Email:         d.Email,
		TransactionID: d.TransactionID,
		Amount:        d.Amount,
		CartItemIDs:   hexIDs(d.CartItemIDs),
		MenuItemIDs:   hexIDs(d.MenuItemIDs),
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository builds the repository.
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{coll: db.Collection(PaymentCollection)}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	cartIDs, err := objectIDs(payment.CartItemIDs)
	if err != nil {
		return err
	}
	menuIDs, err := objectIDs(payment.MenuItemIDs)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, paymentDocument{
		Reference:     payment.Reference,
		UID:           payment.UID,
		Email:         payment.Email,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		CartItemIDs:   cartIDs,
		MenuItemIDs:   menuIDs,
		Status:        payment.Status,
		CreatedAt:     now,
	})
	if err != nil {
		return translateError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid.Hex()
	}
	payment.CreatedAt = now
	return nil
}

func (r *paymentRepository) ListByUID(ctx context.Context, uid string) ([]domain.Payment, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"uid": bson.M{"$eq": uid}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	var docs []paymentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(docs))
	for i := range docs {
		payments = append(payments, docs[i].toDomain())
	}
	return payments, nil
}

func hexIDs(oids []primitive.ObjectID) []string {
	out := make([]string, 0, len(oids))
	for _, oid := range oids {
		out = append(out, oid.Hex())
	}
	return out
}
