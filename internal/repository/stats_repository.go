package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// StatsRepository runs the dashboard aggregations.
type StatsRepository interface {
	Summary(ctx context.Context) (*domain.AdminStats, error)
	SalesByCategory(ctx context.Context) ([]domain.CategorySales, error)
}

type statsRepository struct {
	db *mongo.Database
}

// NewStatsRepository builds the repository.
func NewStatsRepository(db *mongo.Database) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Summary(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	var err error

	if stats.Users, err = r.db.Collection(UserCollection).EstimatedDocumentCount(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.MenuItems, err = r.db.Collection(MenuCollection).EstimatedDocumentCount(ctx); err != nil {
		return nil, fmt.Errorf("count menu: %w", err)
	}
	if stats.Orders, err = r.db.Collection(PaymentCollection).EstimatedDocumentCount(ctx); err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	cur, err := r.db.Collection(PaymentCollection).Aggregate(ctx, revenuePipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		stats.Revenue = rows[0].Total
	}
	return &stats, nil
}

func (r *statsRepository) SalesByCategory(ctx context.Context) ([]domain.CategorySales, error) {
	cur, err := r.db.Collection(PaymentCollection).Aggregate(ctx, categorySalesPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate category sales: %w", err)
	}
	var rows []struct {
		Category string  `bson:"category"`
		Quantity int64   `bson:"quantity"`
		Revenue  float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	sales := make([]domain.CategorySales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, domain.CategorySales{Category: row.Category, Quantity: row.Quantity, Revenue: row.Revenue})
	}
	return sales, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
}

// categorySalesPipeline joins each paid menu item to the menu and groups by category.
// Items deleted from the menu since the sale drop out of the result.
func categorySalesPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: MenuCollection},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItem"},
		}}},
		{{Key: "$unwind", Value: "$menuItem"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItem.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItem.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}
}
