package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/symtoscan/symtoscan-api/external/mailer"
	"github.com/symtoscan/symtoscan-api/logmodule"
	"github.com/symtoscan/symtoscan-api/scan"
	"github.com/symtoscan/symtoscan-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Scanner runs one symptom scan end to end
type Scanner interface {
	Submit(ctx context.Context, req scan.Request) (*scan.Result, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SymtoScanCore
	mongoStore store.MongoStore

	// Scan orchestration
	scanner Scanner

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	mailer mailer.Mailer
}

// NewServer new instance of server
func NewServer(
	ormStore store.SymtoScanCore,
	mongoStore store.MongoStore,
	scanner Scanner,
	jwtKey *rsa.PrivateKey,
	mailClient mailer.Mailer) *Server {
	return &Server{
		store:         ormStore,
		mongoStore:    mongoStore,
		scanner:       scanner,
		jwtPrivateKey: jwtKey,
		mailer:        mailClient,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
		authRoute.POST("/password-reset", s.requestPasswordReset)
	}

	// api routes other than `/auth` apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.parseGeoPositionMiddleware)

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.GET("/me/profile", s.getProfile)
		accountRoute.PUT("/me/profile", s.saveProfile)
		accountRoute.PATCH("/me/preference", s.updatePreference)
	}

	scanRoute := apiRoute.Group("/scans")
	scanRoute.Use(s.recognizeAccountMiddleware())
	{
		scanRoute.POST("", s.submitScan)
		scanRoute.GET("/history", s.getHistory)
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
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "SymtoScan 0.1",
		},
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
