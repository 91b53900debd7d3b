package sqlite

import (
	"github.com/frahmantamala/employee-management/internal/activity"
	activityDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/activity"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.RepositoryAPI {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(entry *activityDatamodel.Entry) error {
	return r.db.Create(entry).Error
}

func (r *ActivityRepository) GetRecent(limit int) ([]*activityDatamodel.Entry, error) {
	var entries []*activityDatamodel.Entry
	err := r.db.Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
