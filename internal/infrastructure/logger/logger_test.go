package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	t.Run("json格式写入文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l, err := New(config.LogConfig{Level: "info", Format: "json", Output: path})
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("order created", zap.Uint("order_id", 7))
		require.NoError(t, l.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &entry))
		assert.Equal(t, "order created", entry["msg"])
		assert.Equal(t, float64(7), entry["order_id"])
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("替换全局logger", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "debug", Format: "console", Output: "stderr"})
		require.NoError(t, err)
		assert.Same(t, l, zap.L())
	})

	t.Run("无效级别", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "verbose"})
		assert.Error(t, err)
	})
}
