package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/banachtech/volfit/calib"
	"github.com/banachtech/volfit/config"
	db "github.com/banachtech/volfit/db/sqlc"
	"github.com/banachtech/volfit/fourier"
)

// Server serves HTTP requests for the pricing and calibration service.
type Server struct {
	cfg    config.Config
	store  db.Store
	pricer *fourier.Pricer
	engine *calib.Engine
	router *gin.Engine

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(cfg config.Config, store db.Store) (*Server, error) {
	pricer, err := fourier.NewPricer(fourier.Config{
		NNodes: cfg.Fourier.NNodes,
		UMax:   cfg.Fourier.UMax,
		Alpha:  cfg.Fourier.Alpha,
		Tol:    cfg.Fourier.Tol,
	})
	if err != nil {
		return nil, err
	}
	engine := calib.New(pricer)
	engine.MaxIterations = cfg.Calib.MaxIterations
	engine.Tol = cfg.Calib.Tol
	engine.Penalty = cfg.Calib.Penalty
	engine.PenaltyBudget = cfg.Calib.PenaltyBudget

	server := &Server{
		cfg:      cfg,
		store:    store,
		pricer:   pricer,
		engine:   engine,
		limiters: map[string]*rate.Limiter{},
	}
	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.Default()

	authRoutes := router.Group("/v1").Use(server.authentication, server.rateLimit)
	authRoutes.POST("/price", server.price)
	authRoutes.POST("/calibrate", server.calibrate)
	authRoutes.GET("/params", server.params)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
