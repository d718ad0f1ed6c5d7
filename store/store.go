package store

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/pariparajuli/geosurvey/schema"
)

var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrUserNotFound      = errors.New("user not found")
	ErrSurveyNotFound    = errors.New("survey not found")
)

// SurveyCore is the relational datastore of users and survey definitions
type SurveyCore interface {
	Ping() error

	// User
	CreateUser(phoneNumber, username, password string) (*schema.User, error)
	Authenticate(username, password string) (*schema.User, error)
	GetUser(id int64) (*schema.User, error)

	// Survey
	CreateSurvey(name string, questions schema.Questions) (*schema.Survey, error)
	GetSurvey(id int64) (*schema.Survey, error)
	ListSurveys() ([]schema.Survey, error)
	DeleteSurvey(id int64) error
}

// SurveyStore is an implementation of SurveyCore
type SurveyStore struct {
	ormDB *gorm.DB
}

func NewSurveyStore(ormDB *gorm.DB) *SurveyStore {
	return &SurveyStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *SurveyStore) Ping() error {
	return s.ormDB.DB().Ping()
}
