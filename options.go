package fiddleless

import (
	"time"

	"github.com/beastars1/fiddleless/services/lcu"
	"github.com/beastars1/fiddleless/services/league"
)

type ApplyOption func(o *options)

type options struct {
	debug            bool
	enableApi        bool
	apiAddr          string
	enablePprof      bool
	pollInterval     time.Duration
	refreshChampions bool
	championVersion  string
	championLocale   string
	store            LocationStore
	isLeagueDir      func(dir string) bool
	readLockfile     func(dir string) (*lcu.Lockfile, error)
	newSession       func(lf *lcu.Lockfile) ChampionQuerier
}

func newDefaultOpts() *options {
	return &options{
		pollInterval:   defaultPollInterval,
		apiAddr:        defaultApiAddr,
		championLocale: "en_US",
		isLeagueDir:    league.IsLeagueDir,
		readLockfile:   lcu.ReadLockfile,
		newSession: func(lf *lcu.Lockfile) ChampionQuerier {
			return lcu.NewSession(lf)
		},
	}
}

func WithDebug() ApplyOption {
	return func(o *options) {
		o.debug = true
	}
}

func WithProd() ApplyOption {
	return func(o *options) {
		o.debug = false
	}
}

func WithApi(addr string) ApplyOption {
	return func(o *options) {
		o.enableApi = true
		o.apiAddr = addr
	}
}

func WithEnablePprof(enablePprof bool) ApplyOption {
	return func(o *options) {
		o.enablePprof = enablePprof
	}
}

func WithPollInterval(interval time.Duration) ApplyOption {
	return func(o *options) {
		if interval > 0 {
			o.pollInterval = interval
		}
	}
}

// WithChampionRefresh loads the champion table from Data Dragon on start.
func WithChampionRefresh(version, locale string) ApplyOption {
	return func(o *options) {
		o.refreshChampions = true
		o.championVersion = version
		if locale != "" {
			o.championLocale = locale
		}
	}
}

func WithLocationStore(store LocationStore) ApplyOption {
	return func(o *options) {
		o.store = store
	}
}

func WithDirValidator(isLeagueDir func(dir string) bool) ApplyOption {
	return func(o *options) {
		o.isLeagueDir = isLeagueDir
	}
}

func WithLockfileReader(read func(dir string) (*lcu.Lockfile, error)) ApplyOption {
	return func(o *options) {
		o.readLockfile = read
	}
}

func WithSessionFactory(newSession func(lf *lcu.Lockfile) ChampionQuerier) ApplyOption {
	return func(o *options) {
		o.newSession = newSession
	}
}
