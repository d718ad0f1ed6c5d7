package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"

	"github.com/pariparajuli/geosurvey/api/mocks"
)

const testAdminKey = "admin-key"

var testJWTSecret = []byte("test-secret")

type testServer struct {
	ctl    *gomock.Controller
	core   *mocks.MockSurveyCore
	mongo  *mocks.MockMongoStore
	geo    *mocks.MockGeoInfo
	server *Server
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	viper.Set("server.apikey.admin", testAdminKey)

	ctl := gomock.NewController(t)
	core := mocks.NewMockSurveyCore(ctl)
	mongo := mocks.NewMockMongoStore(ctl)
	geoClient := mocks.NewMockGeoInfo(ctl)

	s := NewServer(core, mongo, geoClient, testJWTSecret, time.Hour)
	return &testServer{
		ctl:    ctl,
		core:   core,
		mongo:  mongo,
		geo:    geoClient,
		server: s,
		router: s.setupRouter(),
	}
}

func (ts *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}
