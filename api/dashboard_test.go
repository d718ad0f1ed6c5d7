package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/store"
)

func TestSurveyDashboard(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	counts := []schema.OptionCount{
		{Question: 0, Option: "A", Count: 2},
		{Question: 1, Option: "no", Count: 1},
	}

	ts.core.EXPECT().GetSurvey(int64(3)).Return(&testSurvey, nil)
	ts.mongo.EXPECT().CountResponses(int64(3)).Return(int64(2), nil)
	ts.mongo.EXPECT().OptionCounts(int64(3)).Return(counts, nil)
	ts.mongo.EXPECT().ListResponses(int64(3), int64(10)).Return([]schema.SurveyResponse{
		*storedResponse(1, locationThamel),
		{UserID: 2, SurveyID: 3},
	}, nil)

	w := ts.do("GET", "/admin/surveys/3/dashboard?limit=10", "", adminHeader())
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result schema.SurveyDashboard `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Result.ResponseCount)
	assert.Equal(t, counts, resp.Result.OptionCounts)
	assert.Len(t, resp.Result.Responses, 2)
	assert.Equal(t, []schema.Location{locationThamel}, resp.Result.Locations)
}

func TestSurveyDashboardNotFound(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	ts.core.EXPECT().GetSurvey(int64(9)).Return(nil, store.ErrSurveyNotFound)

	w := ts.do("GET", "/admin/surveys/9/dashboard", "", adminHeader())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do("GET", "/admin/surveys/9/dashboard?limit=-1", "", adminHeader())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
