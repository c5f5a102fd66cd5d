package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banachtech/volfit/bs"
	db "github.com/banachtech/volfit/db/sqlc"
	"github.com/banachtech/volfit/model"
)

type priceRequest struct {
	Ticker   string    `json:"ticker"`
	Model    string    `json:"model" binding:"required"`
	Params   []float64 `json:"params"`
	Forward  float64   `json:"forward" binding:"required,gt=0"`
	Maturity float64   `json:"maturity" binding:"required,gt=0"`
	Strikes  []float64 `json:"strikes" binding:"required,min=1"`
	Type     string    `json:"type"`
}

type pricePoint struct {
	Strike float64 `json:"strike"`
	Price  float64 `json:"price"`
	// omitted when the price cannot be inverted to a volatility
	ImpliedVol *float64 `json:"implied_vol,omitempty"`
}

// price computes option prices for a strike slice under a named model. The
// parameters come from the request, or from the latest calibration in the
// store when omitted.
func (server *Server) price(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	isCall := req.Type != "put"

	params := req.Params
	if len(params) == 0 {
		if req.Ticker == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "either params or ticker must be provided"})
			return
		}
		row, err := server.latestRow(c, req.Ticker, req.Model)
		if err != nil {
			if err == sql.ErrNoRows {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "msg": fmt.Sprintf("no calibration found for %v/%v", req.Ticker, req.Model)})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
		params = rowToParams(row)
	}

	m, err := model.FromParams(req.Model, params)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prices, err := server.pricer.Price(m, req.Forward, req.Maturity, req.Strikes, isCall)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(err))
		return
	}

	points := make([]pricePoint, len(prices))
	for i, p := range prices {
		points[i] = pricePoint{Strike: req.Strikes[i], Price: p}
		if iv, err := bs.ImpliedVol(p, req.Forward, req.Strikes[i], req.Maturity, isCall); err == nil {
			points[i].ImpliedVol = &iv
		}
	}
	c.JSON(http.StatusOK, gin.H{"model": req.Model, "params": params, "maturity": req.Maturity, "results": points})
}

// params returns the latest stored calibration for every ticker.
func (server *Server) params(c *gin.Context) {
	result, err := server.store.GetLatestValues(c)
	if err != nil {
		if err == sql.ErrNoRows {
			c.AbortWithStatusJSON(http.StatusNotFound, errorResponse(err))
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": result.Date, "params": result.Params})
}

func (server *Server) latestRow(c *gin.Context, ticker, name string) (db.Modelparameter, error) {
	date, err := server.store.GetLatestParamDate(c)
	if err != nil {
		return db.Modelparameter{}, err
	}
	return server.store.GetTickerParam(c, db.GetTickerParamParams{Ticker: ticker, Date: date, Model: name})
}

// rowToParams unpacks a parameter row into the vector order the model
// factory expects. Merton stores its diffusion vol in the Nu column.
func rowToParams(r db.Modelparameter) []float64 {
	switch r.Model {
	case "merton":
		return []float64{r.Nu, r.Lambda, r.Muj, r.Deltaj}
	case "bates":
		return []float64{r.V0, r.Kappa, r.Theta, r.Nu, r.Rho, r.Lambda, r.Muj, r.Deltaj}
	}
	return []float64{r.V0, r.Kappa, r.Theta, r.Nu, r.Rho}
}

func paramsToRow(name string, p []float64) db.InsertParamParams {
	switch name {
	case "merton":
		return db.InsertParamParams{Model: name, Nu: p[0], Lambda: p[1], Muj: p[2], Deltaj: p[3]}
	case "bates":
		return db.InsertParamParams{Model: name, V0: p[0], Kappa: p[1], Theta: p[2], Nu: p[3], Rho: p[4], Lambda: p[5], Muj: p[6], Deltaj: p[7]}
	}
	return db.InsertParamParams{Model: name, V0: p[0], Kappa: p[1], Theta: p[2], Nu: p[3], Rho: p[4]}
}
