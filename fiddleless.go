package fiddleless

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/beastars1/fiddleless/champion"
	"github.com/beastars1/fiddleless/global"
	"github.com/beastars1/fiddleless/pkg/poll"
	"github.com/beastars1/fiddleless/services/lcu"
	"github.com/beastars1/fiddleless/services/league"
	"github.com/beastars1/fiddleless/services/logger"
	"github.com/beastars1/fiddleless/shell"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultApiAddr      = "127.0.0.1:4396"
	// poll errors repeat every cycle while the client is down, report at most one a minute
	pollErrReportEvery = time.Minute
	shutdownTimeout    = 3 * time.Second
)

var ErrNoLocationStore = errors.New("no location store")

type (
	LocationStore interface {
		Save(leagueDir string) error
		Load() (string, error)
	}
	ChampionQuerier interface {
		GetHoveredChampion(ctx context.Context) (*lcu.Champion, error)
	}
	Fiddleless struct {
		ctx        context.Context
		cancel     func()
		opts       *options
		mu         *sync.Mutex
		state      shell.State
		subs       map[int]func(shell.State)
		nextSubID  int
		errLimiter *rate.Limiter
		group      *errgroup.Group
		httpSrv    *http.Server
		closeOnce  sync.Once
	}
)

func NewFiddleless(opts ...ApplyOption) *Fiddleless {
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	f := &Fiddleless{
		ctx:        ctx,
		cancel:     cancel,
		mu:         &sync.Mutex{},
		opts:       newDefaultOpts(),
		state:      shell.Initial(),
		subs:       map[int]func(shell.State){},
		errLimiter: rate.NewLimiter(rate.Every(pollErrReportEvery), 1),
		group:      group,
	}
	if global.IsDevMode() {
		opts = append([]ApplyOption{WithDebug()}, opts...)
	} else {
		opts = append([]ApplyOption{WithProd()}, opts...)
	}
	for _, fn := range opts {
		fn(f.opts)
	}
	return f
}

// Run starts the background services and decides between the configurator and the main
// view from the cached install directory.
func (f *Fiddleless) Run() {
	if f.opts.enableApi {
		f.initHttpServer()
	}
	if f.opts.refreshChampions {
		f.group.Go(func() error {
			version, err := champion.Refresh(f.ctx, f.opts.championVersion, f.opts.championLocale)
			if err != nil {
				logger.Warn("champion table refresh failed, using built-in table", zap.Error(err))
				return nil
			}
			logger.Debug("champion table ready", "version", version)
			return nil
		})
	}
	if f.opts.store == nil {
		store, err := league.DefaultLocationCache()
		if err != nil {
			logger.Error("resolve location cache failed", zap.Error(err))
		} else {
			f.opts.store = store
		}
	}
	dir, err := f.loadInstallDir()
	if err != nil {
		logger.Info("no cached league directory", zap.Error(err))
	}
	s := f.dispatch(shell.Started{Dir: dir, Err: err})
	if s.Mode == shell.ModeMain {
		f.connect(s.InstallDir)
	}
}

func (f *Fiddleless) loadInstallDir() (string, error) {
	if f.opts.store == nil {
		return "", ErrNoLocationStore
	}
	return f.opts.store.Load()
}

// PickDir handles a folder chosen in the configurator.
func (f *Fiddleless) PickDir(dir string) shell.State {
	valid := f.opts.isLeagueDir(dir)
	var saveErr error
	if valid {
		saveErr = f.saveInstallDir(dir)
		if saveErr != nil {
			logger.Error("save league directory failed", zap.Error(saveErr), "dir", dir)
		}
	} else {
		logger.Info("invalid league directory picked", "dir", dir)
	}
	s := f.dispatch(shell.DirPicked{Path: dir, Valid: valid, SaveErr: saveErr})
	if s.Mode == shell.ModeMain {
		f.connect(s.InstallDir)
	}
	return f.State()
}

func (f *Fiddleless) saveInstallDir(dir string) error {
	if f.opts.store == nil {
		return ErrNoLocationStore
	}
	return f.opts.store.Save(dir)
}

func (f *Fiddleless) DismissModal() {
	f.dispatch(shell.ModalDismissed{})
}

// connect reads the lockfile once. When the client is not running the main view stays
// inert until it is closed.
func (f *Fiddleless) connect(dir string) {
	lf, err := f.opts.readLockfile(dir)
	if err != nil {
		if errors.Is(err, lcu.ErrClientNotRunning) {
			logger.Info("league client not running", "dir", dir)
		} else {
			logger.Error("read lockfile failed", zap.Error(err), "dir", dir)
		}
		f.dispatch(shell.LockfileRead{Err: err})
		return
	}
	logger.Debug("lockfile read", "port", lf.Port)
	session := f.opts.newSession(lf)
	f.dispatch(shell.LockfileRead{})
	poller := poll.New(f.opts.pollInterval)
	f.group.Go(func() error {
		err := poller.Run(f.ctx, func(ctx context.Context) {
			f.pollOnce(ctx, session)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}

func (f *Fiddleless) pollOnce(ctx context.Context, session ChampionQuerier) {
	champ, err := session.GetHoveredChampion(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		f.reportPollErr(err)
	}
	f.dispatch(shell.Polled{Champion: champ, Err: err})
}

func (f *Fiddleless) reportPollErr(err error) {
	if !f.errLimiter.Allow() {
		logger.Debug("query hovered champion failed", zap.Error(err))
		return
	}
	logger.Warn("query hovered champion failed", zap.Error(err))
	sentry.CaptureException(err)
}

// Close leaves whatever state the app is in and stops polling and the status api.
func (f *Fiddleless) Close() error {
	f.dispatch(shell.CloseRequested{})
	var err error
	f.closeOnce.Do(func() {
		f.cancel()
		if f.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if shutdownErr := f.httpSrv.Shutdown(ctx); shutdownErr != nil {
				err = errors.Wrap(shutdownErr, "shutdown status api")
			}
		}
		if waitErr := f.group.Wait(); waitErr != nil && err == nil {
			err = waitErr
		}
	})
	return err
}

func (f *Fiddleless) State() shell.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Subscribe registers fn for every state change and returns its removal.
func (f *Fiddleless) Subscribe(fn func(shell.State)) func() {
	f.mu.Lock()
	id := f.nextSubID
	f.nextSubID++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *Fiddleless) dispatch(evt shell.Event) shell.State {
	f.mu.Lock()
	f.state = shell.Transition(f.state, evt)
	s := f.state
	subs := make([]func(shell.State), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()
	for _, fn := range subs {
		fn(s)
	}
	return s
}
