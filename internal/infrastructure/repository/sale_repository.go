package repository

import (
	"context"
	"errors"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	domainRepo "github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

// errSaleConflict aborts the finalization transaction when a sold transition
// does not apply. Sentinel only; it never leaves this package.
var errSaleConflict = errors.New("sale conflict")

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale finalization repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// FinalizeSale commits a cart as one transaction. Per ornament it issues
//
//	UPDATE ornaments SET is_sold = true
//	WHERE ornament_id = ? AND is_sold = false
//
// and treats RowsAffected == 0 as a conflict: the identifier either does not
// exist or lost the race to a concurrent checkout. Any conflict rolls back
// every transition along with the client/bill inserts, so no partial commit
// is ever observable.
func (r *saleRepository) FinalizeSale(ctx context.Context, data *domainRepo.FinalizeSaleData) (*entity.Bill, []string, error) {
	var bill *entity.Bill
	var conflicts []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Resolve or create the client. Duplicate (name, phone) rows are
		// tolerated; creation is idempotent within the retry pattern.
		var client entity.Client
		err := tx.Where("name = ? AND phone = ?", data.ClientName, data.ClientPhone).
			First(&client).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			client = entity.Client{Name: data.ClientName, Phone: data.ClientPhone}
			err = tx.Create(&client).Error
		}
		if err != nil {
			return err
		}

		// Conditional sold transition per line. Collect every loser instead
		// of stopping at the first, so the caller learns the full conflict
		// set in one round trip.
		refs := make(map[string]entity.Ornament, len(data.Lines))
		for _, line := range data.Lines {
			result := tx.Model(&entity.Ornament{}).
				Where("ornament_id = ? AND is_sold = ?", line.OrnamentID, false).
				Update("is_sold", true)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				conflicts = append(conflicts, line.OrnamentID)
				continue
			}

			var ornament entity.Ornament
			if err := tx.First(&ornament, "ornament_id = ?", line.OrnamentID).Error; err != nil {
				return err
			}
			refs[line.OrnamentID] = ornament
		}

		if len(conflicts) > 0 {
			return errSaleConflict
		}

		b := &entity.Bill{
			BillNo:        data.BillNo,
			ClientID:      client.ID,
			SubTotal:      data.SubTotal,
			Tax:           data.Tax,
			TotalAmount:   data.Total,
			PaymentMethod: data.PaymentMethod,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		items := make([]entity.BillItem, 0, len(data.Lines))
		for _, line := range data.Lines {
			items = append(items, entity.BillItem{
				BillID:       b.ID,
				OrnamentRef:  refs[line.OrnamentID].ID,
				SellingPrice: line.SellingPrice,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		bill = b
		return nil
	})

	if errors.Is(err, errSaleConflict) {
		return nil, conflicts, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return bill, nil, nil
}
