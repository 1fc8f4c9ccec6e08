package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"
	"lycosidae/utils"

	"gorm.io/gorm"
)

// CreateUserInput carries the fields accepted at registration.
type CreateUserInput struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username    *string
	Email       *string
	Password    *string
	PhoneNumber *string
}

// CreateUser validates, hashes the password and inserts a new user.
func CreateUser(db *gorm.DB, in CreateUserInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, errs.InvalidField("username, email and password are required")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, dbError("users.create", err, "username", in.Username)
	}
	if count > 0 {
		return nil, errs.DuplicateEntity("username already registered")
	}
	if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, dbError("users.create", err, "email", in.Email)
	}
	if count > 0 {
		return nil, errs.DuplicateEntity("email already registered")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, dbError("users.create", err)
	}

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    hash,
		PhoneNumber: in.PhoneNumber,
	}
	defer metrics.RecordDBOperation("create", "users", time.Now())
	if err := db.Create(user).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateEntity("username or email already registered")
		}
		return nil, dbError("users.create", err, "username", in.Username)
	}
	return user, nil
}

// GetUser looks up a user by id.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("user not found")
		}
		return nil, dbError("users.get", err, "id", id)
	}
	return &user, nil
}

// GetUserByEmail looks up a user by email, used by login.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("user not found")
		}
		return nil, dbError("users.get_by_email", err)
	}
	return &user, nil
}

// UpdateUser applies a partial update. Changed unique fields are re-checked
// against existing rows before the write.
func UpdateUser(db *gorm.DB, id string, in UpdateUserInput) (*models.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Username != nil && *in.Username != user.Username {
		if *in.Username == "" {
			return nil, errs.InvalidField("username must not be empty")
		}
		var count int64
		if err := db.Model(&models.User{}).Where("username = ? AND id <> ?", *in.Username, id).Count(&count).Error; err != nil {
			return nil, dbError("users.update", err, "id", id)
		}
		if count > 0 {
			return nil, errs.DuplicateEntity("username already registered")
		}
		updates["username"] = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		if *in.Email == "" {
			return nil, errs.InvalidField("email must not be empty")
		}
		var count int64
		if err := db.Model(&models.User{}).Where("email = ? AND id <> ?", *in.Email, id).Count(&count).Error; err != nil {
			return nil, dbError("users.update", err, "id", id)
		}
		if count > 0 {
			return nil, errs.DuplicateEntity("email already registered")
		}
		updates["email"] = *in.Email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, errs.InvalidField("password must not be empty")
		}
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, dbError("users.update", err, "id", id)
		}
		updates["password"] = hash
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = *in.PhoneNumber
	}

	if len(updates) == 0 {
		return user, nil
	}
	defer metrics.RecordDBOperation("update", "users", time.Now())
	if err := db.Model(user).Updates(updates).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateEntity("username or email already registered")
		}
		return nil, dbError("users.update", err, "id", id)
	}
	return GetUser(db, id)
}

// DeleteUser removes a user together with its relation rows and the teams
// it created (delete cascades, see DESIGN.md).
func DeleteUser(db *gorm.DB, id string) error {
	user, err := GetUser(db, id)
	if err != nil {
		return err
	}

	defer metrics.RecordDBOperation("delete", "users", time.Now())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserCompetition{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserTeam{}).Error; err != nil {
			return err
		}

		var teamIDs []string
		if err := tx.Model(&models.Team{}).Where("creator_id = ?", id).Pluck("id", &teamIDs).Error; err != nil {
			return err
		}
		if len(teamIDs) > 0 {
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.UserTeam{}).Error; err != nil {
				return err
			}
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.TeamCompetition{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", teamIDs).Delete(&models.Team{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(user).Error
	})
	if txErr != nil {
		return dbError("users.delete", txErr, "id", id)
	}
	return nil
}
