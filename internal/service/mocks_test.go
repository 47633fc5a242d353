package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, uid, passwordHash string) error {
	return m.Called(ctx, uid, passwordHash).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockMenuRepo struct{ mock.Mock }

func (m *mockMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockMenuRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *mockMenuRepo) List(ctx context.Context, filter repository.MenuFilter) ([]domain.MenuItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *mockMenuRepo) Count(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMenuRepo) Update(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *mockMenuRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) Create(ctx context.Context, item *domain.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCartRepo) ListByUID(ctx context.Context, uid string) ([]domain.CartItem, error) {
	args := m.Called(ctx, uid)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

func (m *mockCartRepo) DeleteOwned(ctx context.Context, id, uid string) error {
	return m.Called(ctx, id, uid).Error(0)
}

func (m *mockCartRepo) DeleteManyOwned(ctx context.Context, ids []string, uid string) (int64, error) {
	args := m.Called(ctx, ids, uid)
	return args.Get(0).(int64), args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) ListByUID(ctx context.Context, uid string) ([]domain.Payment, error) {
	args := m.Called(ctx, uid)
	payments, _ := args.Get(0).([]domain.Payment)
	return payments, args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

type mockAuditRepo struct{ mock.Mock }

func (m *mockAuditRepo) Create(ctx context.Context, denial *domain.AccessDenial) error {
	return m.Called(ctx, denial).Error(0)
}

func (m *mockAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.AccessDenial, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]domain.AccessDenial)
	return rows, args.Error(1)
}

type mockResetRepo struct{ mock.Mock }

func (m *mockResetRepo) Create(ctx context.Context, reset *domain.PasswordReset) error {
	return m.Called(ctx, reset).Error(0)
}

func (m *mockResetRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	args := m.Called(ctx, token)
	reset, _ := args.Get(0).(*domain.PasswordReset)
	return reset, args.Error(1)
}

func (m *mockResetRepo) MarkUsed(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResetRepo) Release(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
