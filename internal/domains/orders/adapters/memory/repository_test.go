package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-order-api/internal/domains/orders/ports"
)

func seedOrder(t *testing.T, repo *Repository, orderID, userID int64, status string, createdAt time.Time) *domain.Order {
	t.Helper()
	saved, err := repo.Save(context.Background(), &domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		Total:     decimal.NewFromInt(10),
		Status:    status,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return saved
}

func TestSave_AssignsSequentialIDs(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	first := seedOrder(t, repo, 1001, 7, "PENDING", base)
	second := seedOrder(t, repo, 2002, 7, "PENDING", base)
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
}

func TestSave_RejectsDuplicateOrderID(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	seedOrder(t, repo, 1001, 7, "PENDING", base)
	_, err := repo.Save(context.Background(), &domain.Order{OrderID: 1001, UserID: 9, Total: decimal.NewFromInt(5)})
	require.ErrorIs(t, err, ports.ErrDuplicateOrderID)
}

func TestSave_UpdatesExistingRow(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved := seedOrder(t, repo, 1001, 7, "PENDING", base)
	saved.Status = "SHIPPED"
	updated, err := repo.Save(context.Background(), saved)
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)

	fetched, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "SHIPPED", fetched.Status)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestGetByOrderID(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved := seedOrder(t, repo, 1001, 7, "PENDING", base)
	fetched, err := repo.GetByOrderID(context.Background(), 1001)
	require.NoError(t, err)
	require.Equal(t, saved.ID, fetched.ID)

	_, err = repo.GetByOrderID(context.Background(), 9999)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListByUserID_NewestFirst(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	seedOrder(t, repo, 1001, 7, "PENDING", base)
	seedOrder(t, repo, 2002, 9, "PENDING", base.Add(time.Minute))
	newest := seedOrder(t, repo, 3003, 7, "SHIPPED", base.Add(2*time.Minute))

	list, err := repo.ListByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newest.ID, list[0].ID)
}

func TestListByStatusFilters(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	seedOrder(t, repo, 1001, 7, "PENDING", base)
	seedOrder(t, repo, 2002, 9, "PENDING", base)
	seedOrder(t, repo, 3003, 7, "SHIPPED", base)

	pending, err := repo.ListByStatus(context.Background(), "PENDING")
	require.NoError(t, err)
	require.Len(t, pending, 2)

	combo, err := repo.ListByUserIDAndStatus(context.Background(), 7, "PENDING")
	require.NoError(t, err)
	require.Len(t, combo, 1)
	require.Equal(t, int64(1001), combo[0].OrderID)
}

func TestExistsAndDelete(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved := seedOrder(t, repo, 1001, 7, "PENDING", base)

	exists, err := repo.ExistsByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = repo.ExistsByOrderID(context.Background(), 1001)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.Delete(context.Background(), saved.ID))
	require.ErrorIs(t, repo.Delete(context.Background(), saved.ID), ports.ErrNotFound)

	exists, err = repo.ExistsByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSave_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved := seedOrder(t, repo, 1001, 7, "PENDING", base)
	saved.Status = "MUTATED"

	fetched, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "PENDING", fetched.Status)
}
