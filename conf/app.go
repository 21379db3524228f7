package conf

import (
	"github.com/go-playground/validator/v10"
)

const (
	ModeDebug = "debug"
	ModeProd  = "prod"
)

type (
	AppConf struct {
		Mode     string       `json:"mode" default:"prod" env:"FIDDLELESS_MODE" validate:"oneof=debug prod"`
		Log      LogConf      `json:"log"`
		Sentry   SentryConf   `json:"sentry"`
		Poll     PollConf     `json:"poll"`
		Cache    CacheConf    `json:"cache"`
		Champion ChampionConf `json:"champion"`
		Api      ApiConf      `json:"api"`
	}
	LogConf struct {
		Level      string `json:"level" default:"info" env:"FIDDLELESS_LOG_LEVEL" validate:"oneof=debug info warn error dpanic panic fatal"`
		Filepath   string `json:"filepath" default:"./logs/fiddleless.log" env:"FIDDLELESS_LOG_FILEPATH" validate:"required"`
		MaxSize    int    `json:"maxSize" default:"64" env:"FIDDLELESS_LOG_MAX_SIZE" validate:"gte=1"`
		MaxBackups int    `json:"maxBackups" default:"3" env:"FIDDLELESS_LOG_MAX_BACKUPS" validate:"gte=0"`
		MaxAge     int    `json:"maxAge" default:"7" env:"FIDDLELESS_LOG_MAX_AGE" validate:"gte=0"`
		Compress   bool   `json:"compress" default:"false" env:"FIDDLELESS_LOG_COMPRESS"`
	}
	SentryConf struct {
		Enabled bool   `json:"enabled" default:"false" env:"FIDDLELESS_SENTRY_ENABLED"`
		Dsn     string `json:"dsn" env:"FIDDLELESS_SENTRY_DSN" validate:"required_if=Enabled true"`
	}
	PollConf struct {
		// IntervalMs is the idle time between two champ select queries.
		IntervalMs int `json:"intervalMs" default:"500" env:"FIDDLELESS_POLL_INTERVAL_MS" validate:"gte=50,lte=60000"`
	}
	CacheConf struct {
		// Path overrides the per-user location of the install directory cache.
		Path string `json:"path" env:"FIDDLELESS_CACHE_PATH"`
	}
	ChampionConf struct {
		Refresh bool   `json:"refresh" default:"false" env:"FIDDLELESS_CHAMPION_REFRESH"`
		Locale  string `json:"locale" default:"en_US" env:"FIDDLELESS_CHAMPION_LOCALE" validate:"required"`
		// Version pins the Data Dragon version, the latest one is used when empty.
		Version string `json:"version" env:"FIDDLELESS_CHAMPION_VERSION"`
	}
	ApiConf struct {
		Enabled     bool   `json:"enabled" default:"true" env:"FIDDLELESS_API_ENABLED"`
		Addr        string `json:"addr" default:"127.0.0.1:4396" env:"FIDDLELESS_API_ADDR" validate:"required,hostname_port"`
		EnablePprof bool   `json:"enablePprof" default:"false" env:"FIDDLELESS_API_ENABLE_PPROF"`
	}
)

var validate = validator.New()

func ValidAppConf(c *AppConf) error {
	return validate.Struct(c)
}
