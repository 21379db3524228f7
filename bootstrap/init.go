package bootstrap

import (
	"os"
	"strings"
	"time"

	"github.com/beastars1/fiddleless/conf"
	"github.com/beastars1/fiddleless/global"
	"github.com/beastars1/fiddleless/pkg/logger"
	"github.com/beastars1/fiddleless/pkg/tool"

	"github.com/flopp/go-findfont"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envPrefix = "FIDDLELESS"
	fontEnv   = "FYNE_FONT"
)

// cjkFonts are tried in order when champion names come in a CJK locale.
var cjkFonts = []string{"msyh.ttc", "msyh.ttf", "simhei.ttf", "NotoSansCJK-Regular.ttc", "PingFang.ttc"}

func initConf() error {
	_ = godotenv.Load(".env")
	if tool.IsFile(".env.local") {
		_ = godotenv.Overload(".env.local")
	}
	cfg := global.DefaultAppConf
	err := configor.New(&configor.Config{ENVPrefix: envPrefix}).Load(&cfg)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if err = conf.ValidAppConf(&cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	global.SetAppConf(cfg)
	return nil
}

func newLogger(cfg *conf.LogConf, dev bool) (*zap.SugaredLogger, error) {
	writeSyncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filepath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  true,
	})
	if dev {
		writeSyncer = zapcore.AddSync(os.Stdout)
	}
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeDuration = zapcore.StringDurationEncoder
	level, err := logger.Str2ZapLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config),
		writeSyncer,
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(), nil
}

func initLog(cfg *conf.LogConf) error {
	l, err := newLogger(cfg, global.IsDevMode())
	if err != nil {
		return err
	}
	global.Logger = l
	return nil
}

// InitApp loads configuration and sets up logging and error reporting.
func InitApp() error {
	initConsole()
	if err := initConf(); err != nil {
		return err
	}
	cfg := global.GetAppConf()
	if err := initLog(&cfg.Log); err != nil {
		return err
	}
	initFont(cfg.Champion.Locale)
	if cfg.Sentry.Enabled {
		if err := initSentry(cfg.Sentry.Dsn); err != nil {
			global.Logger.Warnw("sentry init failed", "error", err)
		}
	}
	return nil
}

// initFont points fyne at a font able to render champion names of CJK locales.
func initFont(locale string) {
	if os.Getenv(fontEnv) != "" || !isCJKLocale(locale) {
		return
	}
	for _, name := range cjkFonts {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		_ = os.Setenv(fontEnv, path)
		global.Cleanups["unsetFont"] = func() error {
			return os.Unsetenv(fontEnv)
		}
		global.Logger.Debugw("using font", "path", path)
		return
	}
	global.Logger.Warnw("no CJK font found", "locale", locale)
}

func isCJKLocale(locale string) bool {
	for _, prefix := range []string{"zh", "ja", "ko"} {
		if strings.HasPrefix(strings.ToLower(locale), prefix) {
			return true
		}
	}
	return false
}

func initSentry(dsn string) error {
	isDebugMode := global.IsDevMode()
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Debug:       isDebugMode,
		SampleRate:  1.0,
		Release:     global.AppBuildInfo.Version,
		Environment: global.GetEnv(),
	})
	if err != nil {
		return err
	}
	global.Cleanups["sentryFlush"] = func() error {
		sentry.Flush(2 * time.Second)
		return nil
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetContext("app", map[string]interface{}{
			"version": global.AppBuildInfo.Version,
			"commit":  global.AppBuildInfo.Commit,
		})
	})
	return nil
}
