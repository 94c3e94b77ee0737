package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("读取文件并补全默认值", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  dbname: ":memory:"
cache:
  report_ttl: 2m
`)
		cfg, err := LoadFrom(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 2*time.Minute, cfg.Cache.ReportTTL)
		assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
		assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	})

	t.Run("环境变量覆盖文件", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: postgres\n  password: from-file\n")
		t.Setenv("INVENTORY_DATABASE_PASSWORD", "from-env")

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Database.Password)
	})

	t.Run("不支持的驱动", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: oracle\n")
		_, err := LoadFrom(path)
		assert.Error(t, err)
	})

	t.Run("启用鉴权必须配置密钥", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  enabled: true\n  secret: short\n")
		_, err := LoadFrom(path)
		assert.Error(t, err)
	})

	t.Run("指定的文件不存在", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	base := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "inventory",
		SSLMode: "disable", Charset: "utf8mb4",
	}

	t.Run("postgres", func(t *testing.T) {
		d := base
		d.Driver = "postgres"
		assert.Equal(t, "host=db port=5432 user=u password=p dbname=inventory sslmode=disable TimeZone=UTC", d.DSN())
	})

	t.Run("mysql", func(t *testing.T) {
		d := base
		d.Driver = "mysql"
		d.Port = 3306
		assert.Equal(t, "u:p@tcp(db:3306)/inventory?charset=utf8mb4&parseTime=true&loc=UTC", d.DSN())
	})

	t.Run("sqlite内存库", func(t *testing.T) {
		d := DatabaseConfig{Driver: "sqlite", DBName: ":memory:"}
		assert.Contains(t, d.DSN(), "_foreign_keys=on")
	})
}
