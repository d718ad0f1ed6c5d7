package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/pariparajuli/geosurvey/geo"
	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/store"
)

var (
	msgDuplicateLocation = &i18n.Message{
		ID:    "api.submit.duplicate_location",
		Other: "You cannot take multiple surveys in this location within 5 meters.",
	}
	msgSubmitted = &i18n.Message{
		ID:    "api.submit.success",
		Other: "Survey response submitted successfully",
	}
)

// submitSurvey stores a survey response unless the user already submitted
// one within the geofence of the current location
func (s *Server) submitSurvey(c *gin.Context) {
	logger := log.WithField("api", "submitSurvey")

	var params schema.SubmissionPayload
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.UserID <= 0 || params.SurveyID <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if requester, ok := c.Get(requesterKey); ok && requester.(int64) != params.UserID {
		abortWithEncoding(c, http.StatusForbidden, errorRequesterMismatch)
		return
	}

	location, err := schema.DecodeLocation(params.Location)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocation.withDetail(err))
		return
	}

	survey, err := s.store.GetSurvey(params.SurveyID)
	if err == store.ErrSurveyNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := checkAnswers(survey.Questions, params.Responses); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAnswers.withDetail(err))
		return
	}

	if location != nil {
		last, err := s.mongoStore.LastUserResponse(params.UserID)
		if shouldInterupt(err, c) {
			return
		}

		if last != nil && geo.IsDuplicateLocation(location, responseLocation(last)) {
			logger.WithField("user_id", params.UserID).Info("response rejected by geofence")
			c.JSON(http.StatusOK, schema.SubmissionResult{
				Success: false,
				Message: localize(c, msgDuplicateLocation),
			})
			return
		}
	}

	if _, err := s.mongoStore.SaveResponse(params, location, s.place(c, location)); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, schema.SubmissionResult{
		Success: true,
		Message: localize(c, msgSubmitted),
	})
}

// place resolves the area of a submission. A failed lookup never blocks
// the submission.
func (s *Server) place(c *gin.Context, location *schema.Location) *schema.Place {
	if s.geoClient == nil || location == nil {
		return nil
	}

	p, err := s.geoClient.Get(c.Request.Context(), *location)
	if err != nil {
		log.WithField("api", "submitSurvey").WithError(err).Warn("resolve place")
		return nil
	}
	return p
}

// responseLocation prefers the stored point and falls back to the submitted
// form of the location
func responseLocation(r *schema.SurveyResponse) *schema.Location {
	if r.Location != nil {
		if loc := r.Location.Location(); loc != nil {
			return loc
		}
	}

	loc, err := schema.DecodeLocation(r.RawLocation)
	if err != nil {
		return nil
	}
	return loc
}

func checkAnswers(questions schema.Questions, answers schema.AnswerSet) error {
	for index, option := range answers {
		if index < 0 || index >= len(questions) {
			return fmt.Errorf("question %d does not exist", index)
		}
		if !questions[index].HasOption(option) {
			return fmt.Errorf("option %q is not available for question %d", option, index)
		}
	}
	return nil
}
