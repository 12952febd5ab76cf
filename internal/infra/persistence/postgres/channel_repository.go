package postgres

import (
	"context"
	"time"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// channelRepository implements the repository.ChannelRepository interface.
type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository is the constructor for channelRepository.
func NewChannelRepository(db *gorm.DB) repository.ChannelRepository {
	return &channelRepository{
		db: db,
	}
}

// Upsert registers the channel in a single statement so concurrent registrations of the
// same token converge on the last writer.
func (repo *channelRepository) Upsert(ctx context.Context, channel *entity.NotificationChannel) error {
	channelM := fromChannelDomain(channel)
	channelM.FailureCount = 0
	channelM.LastFailureAt = nil

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"uid", "email", "platform", "label", "failure_count", "last_failure_at", "updated_at",
			}),
		}).
		Create(channelM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert notification channel")
	}

	return nil
}

// DeleteOwned removes the token only if it belongs to uid.
func (repo *channelRepository) DeleteOwned(ctx context.Context, uid, token string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("token = ? AND uid = ?", token, uid).
		Delete(&model.NotificationChannelModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete notification channel")
	}

	return result.RowsAffected > 0, nil
}

// ListByUser retrieves all channels of a user.
func (repo *channelRepository) ListByUser(ctx context.Context, uid string) ([]*entity.NotificationChannel, error) {
	var channelModels []*model.NotificationChannelModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("updated_at DESC").
		Find(&channelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notification channels by user")
	}

	channels := make([]*entity.NotificationChannel, 0, len(channelModels))
	for _, channelM := range channelModels {
		channels = append(channels, toChannelDomain(channelM))
	}

	return channels, nil
}

// DeleteByTokens removes the given tokens regardless of owner.
func (repo *channelRepository) DeleteByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&model.NotificationChannelModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notification channels")
	}

	return result.RowsAffected, nil
}

// IncrementFailures bumps the consecutive failure counter without touching updated_at,
// which tracks registrations only.
func (repo *channelRepository) IncrementFailures(ctx context.Context, tokens []string, at time.Time) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationChannelModel{}).
		Where("token IN ?", tokens).
		UpdateColumns(map[string]any{
			"failure_count":   gorm.Expr("failure_count + 1"),
			"last_failure_at": at,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to record channel failures")
	}

	return nil
}

// ResetFailures clears the failure counter of the given tokens.
func (repo *channelRepository) ResetFailures(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationChannelModel{}).
		Where("token IN ? AND failure_count > 0", tokens).
		UpdateColumns(map[string]any{
			"failure_count":   0,
			"last_failure_at": nil,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to reset channel failures")
	}

	return nil
}

// DeleteFailing removes the given tokens whose failure counter reached maxFailures.
func (repo *channelRepository) DeleteFailing(ctx context.Context, tokens []string, maxFailures int) (int64, error) {
	if len(tokens) == 0 || maxFailures <= 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("token IN ? AND failure_count >= ?", tokens, maxFailures).
		Delete(&model.NotificationChannelModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete failing notification channels")
	}

	return result.RowsAffected, nil
}

// DeleteStale removes channels not registered again since olderThan.
func (repo *channelRepository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("updated_at < ?", olderThan).
		Delete(&model.NotificationChannelModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete stale notification channels")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toChannelDomain converts a GORM NotificationChannelModel to a domain NotificationChannel entity.
func toChannelDomain(data *model.NotificationChannelModel) *entity.NotificationChannel {
	if data == nil {
		return nil
	}

	return &entity.NotificationChannel{
		Token:         data.Token,
		UID:           data.UID,
		Email:         data.Email,
		Platform:      data.Platform,
		Label:         data.Label,
		FailureCount:  data.FailureCount,
		LastFailureAt: data.LastFailureAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromChannelDomain converts a domain NotificationChannel entity to a GORM NotificationChannelModel.
func fromChannelDomain(data *entity.NotificationChannel) *model.NotificationChannelModel {
	if data == nil {
		return nil
	}

	return &model.NotificationChannelModel{
		Token:         data.Token,
		UID:           data.UID,
		Email:         data.Email,
		Platform:      data.Platform,
		Label:         data.Label,
		FailureCount:  data.FailureCount,
		LastFailureAt: data.LastFailureAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
