package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pariparajuli/geosurvey/external/geoinfo"
	"github.com/pariparajuli/geosurvey/logmodule"
	"github.com/pariparajuli/geosurvey/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SurveyCore
	mongoStore store.MongoStore

	// External services
	geoClient geoinfo.GeoInfo

	// JWT signing key
	jwtSecret []byte
	jwtExpire time.Duration
}

// NewServer new instance of server. A nil geoClient stores responses
// without their administrative area.
func NewServer(
	core store.SurveyCore,
	mongoStore store.MongoStore,
	geoClient geoinfo.GeoInfo,
	jwtSecret []byte,
	jwtExpire time.Duration) *Server {
	if jwtExpire <= 0 {
		jwtExpire = 24 * time.Hour
	}

	return &Server{
		store:      core,
		mongoStore: mongoStore,
		geoClient:  geoClient,
		jwtSecret:  jwtSecret,
		jwtExpire:  jwtExpire,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "Api-Token", "Accept-Language"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.POST("/register", s.register)
		apiRoute.POST("/login", s.login)

		apiRoute.GET("/surveys", s.listSurveys)
		apiRoute.GET("/surveys/:surveyID", s.getSurvey)

		apiRoute.POST("/submit_survey", s.tokenMiddleware(), s.submitSurvey)
	}

	adminKey := viper.GetString("server.apikey.admin")

	surveyAdminRoute := r.Group("/surveys")
	surveyAdminRoute.Use(logmodule.Ginrus("Admin"))
	surveyAdminRoute.Use(s.apikeyAuthentication(adminKey))
	{
		surveyAdminRoute.POST("", s.createSurvey)
		surveyAdminRoute.DELETE("/:surveyID", s.deleteSurvey)
	}

	adminRoute := r.Group("/admin")
	adminRoute.Use(logmodule.Ginrus("Admin"))
	adminRoute.Use(s.apikeyAuthentication(adminKey))
	{
		adminRoute.GET("/surveys/:surveyID/dashboard", s.surveyDashboard)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

// surveyIDParam reads the survey id of the path. It aborts the request
// when the id is malformed.
func surveyIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("surveyID"), 10, 64)
	if err != nil || id <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return 0, false
	}
	return id, true
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
