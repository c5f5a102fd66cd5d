package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/banachtech/volfit/api"
	"github.com/banachtech/volfit/calib"
	"github.com/banachtech/volfit/config"
	"github.com/banachtech/volfit/data"
	db "github.com/banachtech/volfit/db/sqlc"
	"github.com/banachtech/volfit/fourier"
	"github.com/banachtech/volfit/model"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve(cfg)
		return
	}

	pricer, err := fourier.NewPricer(fourier.Config{
		NNodes: cfg.Fourier.NNodes,
		UMax:   cfg.Fourier.UMax,
		Alpha:  cfg.Fourier.Alpha,
		Tol:    cfg.Fourier.Tol,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build pricer")
	}
	engine := calib.New(pricer)
	engine.MaxIterations = cfg.Calib.MaxIterations
	engine.Tol = cfg.Calib.Tol
	engine.Penalty = cfg.Calib.Penalty
	engine.PenaltyBudget = cfg.Calib.PenaltyBudget

	surface, err := loadOrSynthesize(pricer)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build surface")
	}
	surface, err = data.FillImpliedVols(surface)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot invert quote prices")
	}

	names := []string{"heston", "merton", "bates"}
	type fitted struct {
		name string
		res  calib.Result
		err  error
	}
	ch := make(chan fitted, len(names))
	for _, name := range names {
		go func(name string) {
			m, err := model.New(name)
			if err != nil {
				ch <- fitted{name: name, err: err}
				return
			}
			res, err := engine.CalibrateMultistart(m, surface.Quotes, surface.Forward, nil, nil, cfg.Calib.Restarts, cfg.Calib.Seed)
			ch <- fitted{name: name, res: res, err: err}
		}(name)
	}

	for range names {
		f := <-ch
		if f.err != nil {
			log.Error().Str("model", f.name).Err(f.err).Msg("calibration failed")
			continue
		}
		log.Info().
			Str("model", f.name).
			Str("status", f.res.Status.String()).
			Floats64("params", f.res.Model.Get()).
			Float64("rmse", f.res.RMSE).
			Int("iterations", f.res.Iterations).
			Int("rejected", f.res.Rejected).
			Msg("calibrated")
	}
}

// loadOrSynthesize reads surface.json when present, otherwise prices a
// reference Heston surface so the demo runs without market data.
func loadOrSynthesize(pricer *fourier.Pricer) (data.Surface, error) {
	if _, err := os.Stat("surface.json"); err == nil {
		log.Info().Msg("loading surface.json")
		return data.LoadSurface("surface.json")
	}
	log.Info().Msg("no surface.json, generating a synthetic Heston surface")
	truth := model.NewHeston(0.04, 1.5, 0.04, 0.5, -0.6)
	maturities := []float64{0.25, 0.5, 1.0, 2.0}
	strikes := []float64{70, 80, 90, 100, 110, 120, 130}
	return data.SyntheticSurface(truth, pricer, 100.0, maturities, strikes)
}

func serve(cfg config.Config) {
	conn, err := db.ConnectDB(cfg.DB.Driver, cfg.DB.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	store := db.NewStore(conn)

	server, err := api.NewServer(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}
	log.Info().Str("address", cfg.Server.Address).Msg("starting server")
	if err := server.Start(cfg.Server.Address); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
