package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := objectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = objectID("not-an-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = objectIDs([]string{oid.Hex(), "zzz"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(mongo.ErrNoDocuments), ErrNotFound)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, translateError(dup), ErrDuplicate)

	other := errors.New("socket closed")
	assert.Equal(t, other, translateError(other))
}

func TestCategoryFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, categoryFilter(""))
	assert.Equal(t, bson.M{"category": bson.M{"$eq": "salad"}}, categoryFilter("salad"))
}

func TestCategorySalesPipelineShape(t *testing.T) {
	pipeline := categorySalesPipeline()
	stages := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		stages = append(stages, stage[0].Key)
	}
	assert.Equal(t, []string{"$unwind", "$lookup", "$unwind", "$group", "$project", "$sort"}, stages)
}

func TestPaymentDocumentToDomain(t *testing.T) {
	cart := primitive.NewObjectID()
	menu := primitive.NewObjectID()
	doc := paymentDocument{
		ID:          primitive.NewObjectID(),
		UID:         "u1",
		Amount:      12.5,
		CartItemIDs: []primitive.ObjectID{cart},
		MenuItemIDs: []primitive.ObjectID{menu},
		Status:      domain.PaymentStatusPending,
	}

	p := doc.toDomain()
	assert.Equal(t, []string{cart.Hex()}, p.CartItemIDs)
	assert.Equal(t, []string{menu.Hex()}, p.MenuItemIDs)
	assert.Equal(t, doc.ID.Hex(), p.ID)
}

func TestUnconfiguredAccessAuditRepository(t *testing.T) {
	repo := NewAccessAuditRepository(nil)
	require.NoError(t, repo.Create(context.Background(), &domain.AccessDenial{ID: "x"}))

	denials, err := repo.ListRecent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, denials)
}

func TestClampAuditLimit(t *testing.T) {
	assert.Equal(t, 100, clampAuditLimit(0))
	assert.Equal(t, 100, clampAuditLimit(-3))
	assert.Equal(t, 25, clampAuditLimit(25))
	assert.Equal(t, 500, clampAuditLimit(10_000))
}

func TestUnconfiguredPasswordResetRepository(t *testing.T) {
	repo := NewPasswordResetRepository(nil)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Create(ctx, &domain.PasswordReset{UID: "u1"}), ErrUnavailable)
	_, err := repo.GetByToken(ctx, "t")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, repo.MarkUsed(ctx, "id"), ErrUnavailable)
	assert.ErrorIs(t, repo.Release(ctx, "id"), ErrUnavailable)
}
