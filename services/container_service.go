package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"

	"gorm.io/gorm"
)

// CreateContainer inserts a new container. The deadline must lie in the
// future.
func CreateContainer(db *gorm.DB, deadline time.Time) (*models.Container, error) {
	if deadline.IsZero() {
		return nil, errs.InvalidField("deadline is required")
	}
	if deadline.Before(time.Now()) {
		return nil, errs.InvalidField("deadline must not be in the past")
	}

	container := &models.Container{Deadline: deadline}
	defer metrics.RecordDBOperation("create", "containers", time.Now())
	if err := db.Create(container).Error; err != nil {
		return nil, dbError("containers.create", err)
	}
	return container, nil
}

// GetContainer looks up a container by id.
func GetContainer(db *gorm.DB, id string) (*models.Container, error) {
	var container models.Container
	if err := db.Where("id = ?", id).First(&container).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("container not found")
		}
		return nil, dbError("containers.get", err, "id", id)
	}
	return &container, nil
}

// UpdateContainer replaces the container's deadline.
func UpdateContainer(db *gorm.DB, id string, deadline time.Time) (*models.Container, error) {
	container, err := GetContainer(db, id)
	if err != nil {
		return nil, err
	}
	if deadline.IsZero() {
		return nil, errs.InvalidField("deadline is required")
	}
	if deadline.Before(time.Now()) {
		return nil, errs.InvalidField("deadline must not be in the past")
	}

	defer metrics.RecordDBOperation("update", "containers", time.Now())
	if err := db.Model(container).Update("deadline", deadline).Error; err != nil {
		return nil, dbError("containers.update", err, "id", id)
	}
	return GetContainer(db, id)
}

// DeleteContainer removes a container together with its relation rows.
func DeleteContainer(db *gorm.DB, id string) error {
	container, err := GetContainer(db, id)
	if err != nil {
		return err
	}

	defer metrics.RecordDBOperation("delete", "containers", time.Now())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("container_id = ?", id).Delete(&models.ContainerCompetition{}).Error; err != nil {
			return err
		}
		return tx.Delete(container).Error
	})
	if txErr != nil {
		return dbError("containers.delete", txErr, "id", id)
	}
	return nil
}
