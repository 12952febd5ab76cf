// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the delivery unless its bid already has one.
func (repo *deliveryRepository) CreateIfAbsent(ctx context.Context, delivery *entity.Delivery) (*entity.Delivery, bool, error) {
	deliveryM := fromDeliveryDomain(delivery)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bid_id"}},
			DoNothing: true,
		}).
		Create(deliveryM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create delivery")
	}

	if result.RowsAffected == 1 {
		return toDeliveryDomain(deliveryM), true, nil
	}

	var existing model.DeliveryModel
	if err := repo.db.WithContext(ctx).
		Where("bid_id = ?", delivery.BidID).
		First(&existing).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to load delivery for existing bid")
	}

	return toDeliveryDomain(&existing), false, nil
}

// FindByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindByIDs retrieves the deliveries that exist among ids.
func (repo *deliveryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Delivery, error) {
	if len(ids) == 0 {
		return []*entity.Delivery{}, nil
	}

	var deliveryModels []*model.DeliveryModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by IDs")
	}

	return toDeliveryDomains(deliveryModels), nil
}

// SaveProgress writes the milestone state guarded by the step it was read at.
func (repo *deliveryRepository) SaveProgress(ctx context.Context, delivery *entity.Delivery, fromStep int) error {
	deliveryM := fromDeliveryDomain(delivery)

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND current_step = ?", delivery.ID, fromStep).
		UpdateColumns(map[string]any{
			"current_step": deliveryM.CurrentStep,
			"status":       deliveryM.Status,
			"completed":    deliveryM.Completed,
			"events":       deliveryM.Events,
			"updated_at":   deliveryM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save delivery progress")
	}

	if result.RowsAffected == 1 {
		return nil
	}

	// Nothing matched: either the delivery vanished or another writer moved it first.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check delivery existence")
	}
	if count == 0 {
		return repository.ErrDeliveryNotFound
	}

	return repository.ErrStaleDelivery
}

// ListActiveByBuyer returns the buyer's uncompleted deliveries, most recent first.
func (repo *deliveryRepository) ListActiveByBuyer(ctx context.Context, buyerUID string, limit int) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_uid = ? AND completed = ?", buyerUID, false).
		Order("updated_at DESC").
		Limit(limit).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active deliveries by buyer")
	}

	return toDeliveryDomains(deliveryModels), nil
}

// ListRecentByFarmer returns the farmer's deliveries, most recent first.
func (repo *deliveryRepository) ListRecentByFarmer(ctx context.Context, farmerUID string, limit int) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("farmer_uid = ?", farmerUID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries by farmer")
	}

	return toDeliveryDomains(deliveryModels), nil
}

// CountByBuyer returns active and completed totals for a buyer.
func (repo *deliveryRepository) CountByBuyer(ctx context.Context, buyerUID string) (entity.DeliveryCounts, error) {
	return repo.countBy(ctx, "buyer_uid", buyerUID)
}

// CountByFarmer returns active and completed totals for a farmer.
func (repo *deliveryRepository) CountByFarmer(ctx context.Context, farmerUID string) (entity.DeliveryCounts, error) {
	return repo.countBy(ctx, "farmer_uid", farmerUID)
}

type completionCount struct {
	Completed bool
	Total     int
}

func (repo *deliveryRepository) countBy(ctx context.Context, column, uid string) (entity.DeliveryCounts, error) {
	var rows []completionCount

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Select("completed, COUNT(*) AS total").
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: uid}).
		Group("completed").
		Scan(&rows).Error; err != nil {
		return entity.DeliveryCounts{}, errors.Wrapf(err, "failed to count deliveries by %s", column)
	}

	var counts entity.DeliveryCounts
	for _, row := range rows {
		if row.Completed {
			counts.Completed += row.Total
		} else {
			counts.Active += row.Total
		}
	}

	return counts, nil
}

// --- Mapper Functions ---

func toDeliveryDomains(deliveryModels []*model.DeliveryModel) []*entity.Delivery {
	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries
}

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	events := make([]entity.DeliveryEvent, len(data.Events))
	for i, event := range data.Events {
		events[i] = entity.DeliveryEvent{
			Label:     event.Label,
			Detail:    event.Detail,
			Status:    entity.EventStatus(event.Status),
			Timestamp: event.Timestamp,
		}
	}

	return &entity.Delivery{
		ID:        data.ID,
		BidID:     data.BidID,
		ProductID: data.ProductID,
		Farmer: entity.Party{
			UID:   data.FarmerUID,
			Name:  data.FarmerName,
			Email: data.FarmerEmail,
		},
		Buyer: entity.Party{
			UID:   data.BuyerUID,
			Name:  data.BuyerName,
			Email: data.BuyerEmail,
		},
		Milestones:  []string(data.Milestones),
		CurrentStep: data.CurrentStep,
		Status:      data.Status,
		Events:      events,
		Terms: entity.Terms{
			DeliveryOption: data.DeliveryOption,
			Quantity:       data.Quantity,
			Unit:           data.Unit,
			PricePerUnit:   data.PricePerUnit,
		},
		ETA:       data.ETA,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	events := make(model.EventList, len(data.Events))
	for i, event := range data.Events {
		events[i] = model.EventRecord{
			Label:     event.Label,
			Detail:    event.Detail,
			Status:    string(event.Status),
			Timestamp: event.Timestamp,
		}
	}

	return &model.DeliveryModel{
		ID:             data.ID,
		BidID:          data.BidID,
		ProductID:      data.ProductID,
		FarmerUID:      data.Farmer.UID,
		FarmerName:     data.Farmer.Name,
		FarmerEmail:    data.Farmer.Email,
		BuyerUID:       data.Buyer.UID,
		BuyerName:      data.Buyer.Name,
		BuyerEmail:     data.Buyer.Email,
		Milestones:     model.StringList(data.Milestones),
		CurrentStep:    data.CurrentStep,
		Status:         data.Status,
		Completed:      data.IsCompleted(),
		Events:         events,
		DeliveryOption: data.Terms.DeliveryOption,
		Quantity:       data.Terms.Quantity,
		Unit:           data.Terms.Unit,
		PricePerUnit:   data.Terms.PricePerUnit,
		ETA:            data.ETA,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
