package global

import (
	"sync"

	"github.com/beastars1/fiddleless/conf"
	"go.uber.org/zap"
)

type (
	AppInfo struct {
		Version   string
		Commit    string
		BuildUser string
		BuildTime string
	}
)

const (
	AppName = "Fiddleless"
)

var (
	confMu     = sync.RWMutex{}

	DefaultAppConf = conf.AppConf{
		Mode: conf.ModeProd,
		Log: conf.LogConf{
			Level:      "info",
			Filepath:   "./logs/fiddleless.log",
			MaxSize:    64,
			MaxBackups: 3,
			MaxAge:     7,
		},
		Poll: conf.PollConf{
			IntervalMs: 500,
		},
		Champion: conf.ChampionConf{
			Locale: "en_US",
		},
		Api: conf.ApiConf{
			Enabled: true,
			Addr:    "127.0.0.1:4396",
		},
	}

	Conf         = new(conf.AppConf)
	Logger       = zap.NewNop().Sugar()
	AppBuildInfo = AppInfo{}
	Cleanups     = make(map[string]func() error)
)

func init() {
	*Conf = DefaultAppConf
}

func SetAppInfo(info AppInfo) {
	AppBuildInfo = info
}

func GetAppConf() conf.AppConf {
	confMu.RLock()
	defer confMu.RUnlock()
	return *Conf
}

func SetAppConf(cfg conf.AppConf) {
	confMu.Lock()
	*Conf = cfg
	confMu.Unlock()
}

func IsDevMode() bool {
	return GetEnv() == conf.ModeDebug
}

func GetEnv() string {
	return GetAppConf().Mode
}

// Cleanup runs every registered cleanup, the logger is synced last.
func Cleanup() {
	for name, cleanup := range Cleanups {
		if err := cleanup(); err != nil {
			Logger.Errorw("cleanup failed", "name", name, "error", err)
		}
	}
	_ = Logger.Sync()
}
