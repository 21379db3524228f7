package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	fiddleless "github.com/beastars1/fiddleless"
	"github.com/beastars1/fiddleless/bootstrap"
	"github.com/beastars1/fiddleless/global"
	"github.com/beastars1/fiddleless/services/league"
)

func main() {
	if err := bootstrap.InitApp(); err != nil {
		fmt.Fprintln(os.Stderr, "init failed:", err)
		os.Exit(1)
	}
	defer global.Cleanup()

	cfg := global.GetAppConf()
	opts := []fiddleless.ApplyOption{
		fiddleless.WithPollInterval(time.Duration(cfg.Poll.IntervalMs) * time.Millisecond),
		fiddleless.WithEnablePprof(cfg.Api.EnablePprof),
	}
	if cfg.Api.Enabled {
		opts = append(opts, fiddleless.WithApi(cfg.Api.Addr))
	}
	if cfg.Champion.Refresh {
		opts = append(opts, fiddleless.WithChampionRefresh(cfg.Champion.Version, cfg.Champion.Locale))
	}
	if cfg.Cache.Path != "" {
		opts = append(opts, fiddleless.WithLocationStore(league.NewLocationCache(cfg.Cache.Path)))
	}

	a := app.New()
	f := fiddleless.NewFiddleless(opts...)
	lol := fiddleless.NewGui(f)
	lol.LoadUI(a)
	f.Run()
	a.Run()
	if err := f.Close(); err != nil {
		global.Logger.Errorw("shutdown failed", "error", err)
	}
}
