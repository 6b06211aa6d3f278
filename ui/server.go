// Package ui is the presentation layer: a gin server that renders the
// dashboard and wires form posts, uploads and prediction requests to the
// core components.
package ui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/config"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/session"
	"github.com/justinecabel/3-digit-lotto-analyzer/ports"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

const sessionCookie = "lotto_session"

// Server represents the web server for the lotto analyzer dashboard
type Server struct {
	router    *gin.Engine
	store     *session.Store
	catalog   *game.Catalog
	predictor ports.Predictor
	cfg       *config.Config
	templates *template.Template
	logger    *internal.Logger
}

// NewServer creates and wires a server instance
func NewServer(cfg *config.Config, catalog *game.Catalog, store *session.Store, predictor ports.Predictor, logger *internal.Logger) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.New("").Funcs(template.FuncMap{
		"pct": formatPct,
	}).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.Default(),
		store:     store,
		catalog:   catalog,
		predictor: predictor,
		cfg:       cfg,
		templates: templates,
		logger:    logger.With("Server"),
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.sessionMiddleware())

	staticFS := http.FS(embeddedFiles)
	s.router.GET("/static/:file", func(c *gin.Context) {
		c.FileFromFS("static/"+c.Param("file"), staticFS)
	})

	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	s.router.POST("/draws", s.handleInsertDraw)
	s.router.POST("/draws/batch", s.handleInsertBatch)
	s.router.POST("/draws/upload", s.handleUpload)
	s.router.POST("/draws/sample", s.handleLoadSample)
	s.router.POST("/draws/delete", s.handleRemoveDraw)
	s.router.POST("/draws/clear", s.handleClearDraws)
	s.router.POST("/game", s.handleSwitchGame)
	s.router.POST("/predict", s.handlePredict)

	s.router.GET("/api/state", s.handleState)
}

// sessionMiddleware assigns a session cookie on first visit
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = s.store.NewSessionID()
			c.SetCookie(sessionCookie, id, 60*60*24*30, "/", "", false, true)
		}
		c.Set("sessionID", id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting lotto analyzer server on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for handler tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"aiEnabled": s.predictor.Enabled(),
	})
}
