package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, 5000, cfg.HTTP.Port)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, 7, cfg.JWT.ExpDays)
	require.Empty(t, cfg.Redis.Addr)
}

func TestLoad_File(t *testing.T) {
	yaml := `
http:
  host: 0.0.0.0
  port: 8080
db:
  driver: mysql
  host: db.internal
  name: learnhub_prod
jwt:
  secret: file-secret
  exp_days: 14
redis:
  addr: 127.0.0.1:6379
content:
  seed_file: /etc/learnhub/words.json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "mysql", cfg.DB.Driver)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "learnhub_prod", cfg.DB.Name)
	require.Equal(t, "file-secret", cfg.JWT.Secret)
	require.Equal(t, 14, cfg.JWT.ExpDays)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, "/etc/learnhub/words.json", cfg.Content.SeedFile)

	// Keys absent from the file keep their defaults.
	require.Equal(t, 3306, cfg.DB.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
