package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/store"
)

func (s *Server) listSurveys(c *gin.Context) {
	surveys, err := s.store.ListSurveys()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

func (s *Server) getSurvey(c *gin.Context) {
	id, ok := surveyIDParam(c)
	if !ok {
		return
	}

	survey, err := s.store.GetSurvey(id)
	if err == store.ErrSurveyNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, survey)
}

// createSurvey is the admin API for adding a survey
func (s *Server) createSurvey(c *gin.Context) {
	var params struct {
		Name      string           `json:"name"`
		Questions schema.Questions `json:"questions"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	candidate := schema.Survey{Name: params.Name, Questions: params.Questions}
	if err := candidate.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSurvey.withDetail(err))
		return
	}

	survey, err := s.store.CreateSurvey(params.Name, params.Questions)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Survey created successfully",
		"result":  survey,
	})
}

func (s *Server) deleteSurvey(c *gin.Context) {
	id, ok := surveyIDParam(c)
	if !ok {
		return
	}

	err := s.store.DeleteSurvey(id)
	if err == store.ErrSurveyNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Survey deleted successfully"})
}
