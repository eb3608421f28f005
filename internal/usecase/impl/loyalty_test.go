package impl

import (
	"testing"
	"time"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoyaltyAccrualFor(t *testing.T) {
	bookA := uuid.New()
	bookB := uuid.New()

	cases := []struct {
		name       string
		sale       *entity.Sale
		wantPoints int
		wantScore  int
	}{
		{
			name: "one point per full hundred",
			sale: &entity.Sale{
				TotalAmount: 250.00,
				Items:       []entity.SaleItem{{BookID: bookA, Quantity: 2}},
			},
			wantPoints: 2,
			wantScore:  1,
		},
		{
			name: "remainder discarded",
			sale: &entity.Sale{
				TotalAmount: 99.99,
				Items:       []entity.SaleItem{{BookID: bookA, Quantity: 1}},
			},
			wantPoints: 0,
			wantScore:  1,
		},
		{
			name: "two fifty over three titles",
			sale: &entity.Sale{
				TotalAmount: 250.00,
				Items: []entity.SaleItem{
					{BookID: bookA, Quantity: 1},
					{BookID: bookB, Quantity: 2},
					{BookID: uuid.New(), Quantity: 1},
				},
			},
			wantPoints: 2,
			wantScore:  3,
		},
		{
			name: "score counts distinct titles not copies",
			sale: &entity.Sale{
				TotalAmount: 120.00,
				Items: []entity.SaleItem{
					{BookID: bookA, Quantity: 5},
					{BookID: bookB, Quantity: 1},
				},
			},
			wantPoints: 1,
			wantScore:  2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			accrual := loyaltyAccrualFor(tc.sale)
			assert.Equal(t, tc.wantPoints, accrual.PointsEarned)
			assert.Equal(t, tc.wantScore, accrual.ReaderScoreDelta)
		})
	}
}

func TestLoyaltyAccrualFor_PurchaseRecord(t *testing.T) {
	saleID := uuid.New()
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	sale := &entity.Sale{
		ID:          saleID,
		TotalAmount: 29.97,
		CreatedAt:   createdAt,
		Items:       []entity.SaleItem{{BookID: uuid.New(), Quantity: 3}},
	}

	accrual := loyaltyAccrualFor(sale)
	assert.Equal(t, saleID, accrual.Purchase.SaleID)
	assert.Equal(t, 29.97, accrual.Purchase.TotalAmount)
	assert.Equal(t, createdAt, accrual.Purchase.PurchaseDate)
}
