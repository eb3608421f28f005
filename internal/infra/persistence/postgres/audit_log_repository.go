package postgres

import (
	"context"
	"encoding/json"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create persists a single audit entry.
func (repo *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM, err := fromAuditLogDomain(entry)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to create audit log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// List retrieves audit entries newest-first with the total count for the filter.
func (repo *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter, page, limit int) ([]*entity.AuditLogEntry, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})

	if filter.TargetCollection != "" {
		base = base.Where("target_collection = ?", filter.TargetCollection)
	}
	if filter.Action != "" {
		base = base.Where("action = ?", filter.Action.String())
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count audit log entries")
	}

	var entryModels []*model.AuditLogModel
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list audit log entries")
	}

	entries := make([]*entity.AuditLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entry, err := toAuditLogDomain(entryM)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLogEntry.
func toAuditLogDomain(data *model.AuditLogModel) (*entity.AuditLogEntry, error) {
	if data == nil {
		return nil, nil
	}

	before, err := unmarshalSnapshot(data.BeforeValue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode before snapshot")
	}
	after, err := unmarshalSnapshot(data.AfterValue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode after snapshot")
	}

	return &entity.AuditLogEntry{
		ID:               data.ID,
		TargetCollection: data.TargetCollection,
		Action:           entity.AuditAction(data.Action),
		PerformedBy:      data.PerformedBy,
		BeforeValue:      before,
		AfterValue:       after,
		TargetID:         data.TargetID,
		CreatedAt:        data.CreatedAt,
	}, nil
}

// fromAuditLogDomain converts a domain AuditLogEntry to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLogEntry) (*model.AuditLogModel, error) {
	if data == nil {
		return nil, nil
	}

	before, err := marshalSnapshot(data.BeforeValue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode before snapshot")
	}
	after, err := marshalSnapshot(data.AfterValue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode after snapshot")
	}

	return &model.AuditLogModel{
		ID:               data.ID,
		TargetCollection: data.TargetCollection,
		Action:           data.Action.String(),
		PerformedBy:      data.PerformedBy,
		BeforeValue:      before,
		AfterValue:       after,
		TargetID:         data.TargetID,
	}, nil
}

func marshalSnapshot(snapshot map[string]any) (json.RawMessage, error) {
	if snapshot == nil {
		return nil, nil
	}

	return json.Marshal(snapshot)
}

func unmarshalSnapshot(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var snapshot map[string]any
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}
