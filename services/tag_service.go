package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"

	"gorm.io/gorm"
)

// CreateTag validates and inserts a new tag.
func CreateTag(db *gorm.DB, tagType string) (*models.Tag, error) {
	if tagType == "" {
		return nil, errs.InvalidField("type is required")
	}

	tag := &models.Tag{Type: tagType}
	defer metrics.RecordDBOperation("create", "tags", time.Now())
	if err := db.Create(tag).Error; err != nil {
		return nil, dbError("tags.create", err, "type", tagType)
	}
	return tag, nil
}

// GetTag looks up a tag by id.
func GetTag(db *gorm.DB, id string) (*models.Tag, error) {
	var tag models.Tag
	if err := db.Where("id = ?", id).First(&tag).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("tag not found")
		}
		return nil, dbError("tags.get", err, "id", id)
	}
	return &tag, nil
}

// GetTagByType looks up the first tag with the given type.
func GetTagByType(db *gorm.DB, tagType string) (*models.Tag, error) {
	var tag models.Tag
	if err := db.Where("type = ?", tagType).First(&tag).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("tag not found")
		}
		return nil, dbError("tags.get_by_type", err, "type", tagType)
	}
	return &tag, nil
}

// UpdateTag replaces the tag's type.
func UpdateTag(db *gorm.DB, id string, tagType string) (*models.Tag, error) {
	tag, err := GetTag(db, id)
	if err != nil {
		return nil, err
	}
	if tagType == "" {
		return nil, errs.InvalidField("type must not be empty")
	}

	defer metrics.RecordDBOperation("update", "tags", time.Now())
	if err := db.Model(tag).Update("type", tagType).Error; err != nil {
		return nil, dbError("tags.update", err, "id", id)
	}
	return GetTag(db, id)
}

// DeleteTag removes a tag together with its exercise labels.
func DeleteTag(db *gorm.DB, id string) error {
	tag, err := GetTag(db, id)
	if err != nil {
		return err
	}

	defer metrics.RecordDBOperation("delete", "tags", time.Now())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ExerciseTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
	if txErr != nil {
		return dbError("tags.delete", txErr, "id", id)
	}
	return nil
}
