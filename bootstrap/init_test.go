package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beastars1/fiddleless/conf"
	"github.com/beastars1/fiddleless/global"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreConf(t *testing.T) {
	old := global.GetAppConf()
	t.Cleanup(func() {
		global.SetAppConf(old)
	})
}

func TestInitConfDefaults(t *testing.T) {
	restoreConf(t)

	require.NoError(t, initConf())
	cfg := global.GetAppConf()
	assert.Equal(t, conf.ModeProd, cfg.Mode)
	assert.Equal(t, 500, cfg.Poll.IntervalMs)
	assert.Equal(t, "127.0.0.1:4396", cfg.Api.Addr)
	assert.True(t, cfg.Api.Enabled)
	assert.False(t, cfg.Sentry.Enabled)
}

func TestInitConfEnv(t *testing.T) {
	restoreConf(t)
	t.Setenv("FIDDLELESS_MODE", "debug")
	t.Setenv("FIDDLELESS_POLL_INTERVAL_MS", "750")
	t.Setenv("FIDDLELESS_CACHE_PATH", "/tmp/fiddleless.txt")

	require.NoError(t, initConf())
	cfg := global.GetAppConf()
	assert.Equal(t, conf.ModeDebug, cfg.Mode)
	assert.True(t, global.IsDevMode())
	assert.Equal(t, 750, cfg.Poll.IntervalMs)
	assert.Equal(t, "/tmp/fiddleless.txt", cfg.Cache.Path)
}

func TestInitConfInvalid(t *testing.T) {
	restoreConf(t)
	t.Setenv("FIDDLELESS_SENTRY_ENABLED", "true")

	assert.Error(t, initConf())
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := newLogger(&conf.LogConf{Level: "debug", Filepath: path, MaxSize: 1}, false)
	require.NoError(t, err)

	l.Infow("hello", "champion", "Ahri")
	require.NoError(t, l.Sync())
	bts, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(bts), `"champion":"Ahri"`))

	_, err = newLogger(&conf.LogConf{Level: "loud", Filepath: path}, false)
	assert.Error(t, err)
}

func TestIsCJKLocale(t *testing.T) {
	assert.True(t, isCJKLocale("zh_CN"))
	assert.True(t, isCJKLocale("ko_KR"))
	assert.True(t, isCJKLocale("ja_JP"))
	assert.False(t, isCJKLocale("en_US"))
	assert.False(t, isCJKLocale(""))
}
