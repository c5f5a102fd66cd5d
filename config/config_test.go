package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("POLYGON_KEY", "")
	t.Setenv("DB_SOURCE", "")
	t.Setenv("SERVER_ADDRESS", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  address: 127.0.0.1:9000
  rate_limit: 2
fourier:
  n_nodes: 256
  u_max: 400
calib:
  restarts: 8
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	require.Equal(t, 2.0, cfg.Server.RateLimit)
	require.Equal(t, 256, cfg.Fourier.NNodes)
	require.Equal(t, 400.0, cfg.Fourier.UMax)
	require.Equal(t, 8, cfg.Calib.Restarts)
	// untouched sections keep defaults
	require.Equal(t, Default().Fourier.Alpha, cfg.Fourier.Alpha)
	require.Equal(t, Default().Calib.MaxIterations, cfg.Calib.MaxIterations)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fourier:\n  n_nodes: 2\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("calib:\n  restarts: 0\n"), 0644))
	_, err = Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("fourier: [not a map\n"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POLYGON_KEY", "pk_test")
	t.Setenv("DB_SOURCE", "postgresql://x")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "pk_test", cfg.Data.PolygonKey)
	require.Equal(t, "postgresql://x", cfg.DB.Source)
	require.Equal(t, "0.0.0.0:9999", cfg.Server.Address)
}
