package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/banachtech/volfit/calib"
	"github.com/banachtech/volfit/data"
	db "github.com/banachtech/volfit/db/sqlc"
	"github.com/banachtech/volfit/model"
)

const Layout = "2006-01-02"

type calibrateRequest struct {
	Ticker   string             `json:"ticker" binding:"required"`
	Model    string             `json:"model" binding:"required"`
	Forward  float64            `json:"forward" binding:"required,gt=0"`
	Quotes   []data.MarketQuote `json:"quotes" binding:"required,min=1"`
	Start    []float64          `json:"start"`
	Restarts int                `json:"restarts"`
	Save     bool               `json:"save"`
}

type calibrateResponse struct {
	Ticker     string    `json:"ticker"`
	Model      string    `json:"model"`
	Params     []float64 `json:"params"`
	RMSE       float64   `json:"rmse"`
	Status     string    `json:"status"`
	Iterations int       `json:"iterations"`
	Rejected   int       `json:"rejected"`
}

// calibrate fits a named model to the quotes in the request and optionally
// persists the result as today's parameter row.
func (server *Server) calibrate(c *gin.Context) {
	var req calibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var m model.Model
	var err error
	if len(req.Start) > 0 {
		m, err = model.FromParams(req.Model, req.Start)
	} else {
		m, err = model.New(req.Model)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	restarts := req.Restarts
	if restarts < 1 {
		restarts = server.cfg.Calib.Restarts
	}

	start := time.Now()
	res, err := server.engine.CalibrateMultistart(m, req.Quotes, req.Forward, nil, nil, restarts, server.cfg.Calib.Seed)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(err))
		return
	}
	log.Info().
		Str("ticker", req.Ticker).
		Str("model", req.Model).
		Str("status", res.Status.String()).
		Float64("rmse", res.RMSE).
		Dur("elapsed", time.Since(start)).
		Msg("calibration request served")

	if req.Save && res.Status != calib.StatusFailed {
		arg := paramsToRow(req.Model, res.Model.Get())
		arg.Date = time.Now().Format(Layout)
		arg.Ticker = req.Ticker
		arg.Rmse = res.RMSE
		arg.Status = res.Status.String()
		arg.Iterations = int32(res.Iterations)
		if _, err := server.store.SaveCalibrations(c, []db.InsertParamParams{arg}); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
	}

	c.JSON(http.StatusOK, calibrateResponse{
		Ticker:     req.Ticker,
		Model:      req.Model,
		Params:     res.Model.Get(),
		RMSE:       res.RMSE,
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Rejected:   res.Rejected,
	})
}
