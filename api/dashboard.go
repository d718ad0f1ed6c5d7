package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/store"
)

const defaultDashboardLimit = 100

// surveyDashboard is the admin API summarizing the responses of a survey
func (s *Server) surveyDashboard(c *gin.Context) {
	id, ok := surveyIDParam(c)
	if !ok {
		return
	}

	limit := int64(defaultDashboardLimit)
	if l := c.Query("limit"); l != "" {
		v, err := strconv.ParseInt(l, 10, 64)
		if err != nil || v < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = v
	}

	survey, err := s.store.GetSurvey(id)
	if err == store.ErrSurveyNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	count, err := s.mongoStore.CountResponses(id)
	if shouldInterupt(err, c) {
		return
	}

	counts, err := s.mongoStore.OptionCounts(id)
	if shouldInterupt(err, c) {
		return
	}

	responses, err := s.mongoStore.ListResponses(id, limit)
	if shouldInterupt(err, c) {
		return
	}

	locations := make([]schema.Location, 0, len(responses))
	for i := range responses {
		if loc := responseLocation(&responses[i]); loc != nil {
			locations = append(locations, *loc)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": schema.SurveyDashboard{
			Survey:        *survey,
			ResponseCount: count,
			OptionCounts:  counts,
			Responses:     responses,
			Locations:     locations,
		},
	})
}
