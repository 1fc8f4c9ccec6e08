// Package services implements the validation and persistence operations of
// the platform. Every function takes the *gorm.DB handle it should operate
// on and returns either the affected record or an *errs.Error describing
// why the operation was rejected.
package services

import (
	"errors"

	"lycosidae/errs"
	"lycosidae/logger"

	"gorm.io/gorm"
)

// dbError logs an unexpected persistence failure with context and returns
// the generic internal error sent to clients.
func dbError(op string, err error, keysAndValues ...interface{}) *errs.Error {
	fields := append([]interface{}{"op", op, "error", err}, keysAndValues...)
	logger.Log.Errorw("database error", fields...)
	return errs.Internal("database error")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicatedKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// entityExists reports whether a row of the given model with this id exists.
func entityExists(db *gorm.DB, model interface{}, id string) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
