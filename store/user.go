package store

import (
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/pariparajuli/geosurvey/schema"
)

const uniqueViolation = "23505"

// CreateUser registers a user with a hashed password
func (s *SurveyStore) CreateUser(phoneNumber, username, password string) (*schema.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := schema.User{
		PhoneNumber:  phoneNumber,
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &u, nil
}

// Authenticate returns the user when the password matches
func (s *SurveyStore) Authenticate(username, password string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("username = ?", username).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	return &u, nil
}

func (s *SurveyStore) GetUser(id int64) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
