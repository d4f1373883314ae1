// Package web provides the HTTP server for the catalog service: routing,
// session handling and background maintenance jobs.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"catalog/config"
	"catalog/database"
	"catalog/logger"
	"catalog/util/common"
	"catalog/util/random"
	"catalog/web/controller"
	"catalog/web/middleware"
	"catalog/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

const sessionName = "catalog"

// Server is the catalog web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth    *controller.AuthController
	product *controller.ProductController

	userService service.UserService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter(webConfig *config.WebConfig) (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := config.GetSessionSecret()
	if secret == "" {
		// Sessions do not survive a restart without a configured secret.
		secret = random.Seq(32)
	}
	store := cookie.NewStore([]byte(secret))
	engine.Use(sessions.Sessions(sessionName, store))
	engine.Use(middleware.RequestID())
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/"}),
	))

	api := engine.Group("/api")
	s.auth = controller.NewAuthController(api, &s.userService, webConfig.SessionMaxAge)
	s.product = controller.NewProductController(api)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddFunc("@daily", func() {
		if err := database.Checkpoint(); err != nil {
			logger.Warning("database checkpoint failed:", err)
		}
	})
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	webConfig, err := config.GetWebConfig()
	if err != nil {
		return err
	}

	engine, err := s.initRouter(webConfig)
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(webConfig.Listen, strconv.Itoa(webConfig.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
