package store

import (
	"github.com/jinzhu/gorm"

	"github.com/pariparajuli/geosurvey/schema"
)

// CreateSurvey validates and stores a new survey
func (s *SurveyStore) CreateSurvey(name string, questions schema.Questions) (*schema.Survey, error) {
	survey := schema.Survey{
		Name:      name,
		Questions: questions,
	}

	if err := survey.Validate(); err != nil {
		return nil, err
	}

	if err := s.ormDB.Create(&survey).Error; err != nil {
		return nil, err
	}

	return &survey, nil
}

func (s *SurveyStore) GetSurvey(id int64) (*schema.Survey, error) {
	var survey schema.Survey
	if err := s.ormDB.Where("id = ?", id).First(&survey).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	return &survey, nil
}

func (s *SurveyStore) ListSurveys() ([]schema.Survey, error) {
	surveys := make([]schema.Survey, 0)
	if err := s.ormDB.Order("id").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

// DeleteSurvey removes a survey definition. Stored responses are kept.
func (s *SurveyStore) DeleteSurvey(id int64) error {
	result := s.ormDB.Delete(schema.Survey{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSurveyNotFound
	}

	return nil
}
