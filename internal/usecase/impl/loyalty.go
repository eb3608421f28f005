package impl

import (
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
)

// loyaltyPointsDivisor converts a sale total into membership points: one point
// per full hundred spent, remainder discarded.
const loyaltyPointsDivisor = 100

// loyaltyAccrualFor derives the loyalty mutation earned by one completed sale.
// Points come from the charged total, the reader score from how many distinct
// titles the sale touched.
func loyaltyAccrualFor(sale *entity.Sale) *repository.LoyaltyAccrual {
	return &repository.LoyaltyAccrual{
		PointsEarned:     int(sale.TotalAmount) / loyaltyPointsDivisor,
		ReaderScoreDelta: sale.DistinctItemCount(),
		Purchase: entity.PurchaseRecord{
			SaleID:       sale.ID,
			TotalAmount:  sale.TotalAmount,
			PurchaseDate: sale.CreatedAt,
		},
	}
}
