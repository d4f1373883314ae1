package service

import (
	"errors"

	"catalog/database"
	"catalog/database/model"
	"catalog/logger"
	"catalog/util/crypto"

	"gorm.io/gorm"
)

// CredentialVerifier checks a username/password pair against a backing
// credential store. Implementations return nil for any failed verification
// without distinguishing an unknown username from a wrong password.
type CredentialVerifier interface {
	Verify(username string, password string) *model.User
}

// UserService verifies credentials against the users table.
type UserService struct{}

func (s *UserService) Verify(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}

	return user
}

func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateFirstUser rotates the seeded admin credential.
func (s *UserService) UpdateFirstUser(username string, password string) error {
	if username == "" {
		return errors.New("username can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	err = db.Model(model.User{}).First(user).Error
	if database.IsNotFound(err) {
		user.Username = username
		user.PasswordHash = hashedPassword
		user.Roles = "admin"
		return db.Model(model.User{}).Create(user).Error
	} else if err != nil {
		return err
	}
	user.Username = username
	user.PasswordHash = hashedPassword
	return db.Save(user).Error
}
