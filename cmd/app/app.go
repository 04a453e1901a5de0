package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/database"
	"github.com/akyairhashvil/deen/internal/store"
	"github.com/akyairhashvil/deen/internal/util"
	"github.com/rs/zerolog/log"
)

// app bundles what every command needs: settings, an open database and a
// loaded store.
type app struct {
	settings config.Settings
	db       *database.Database
	store    *store.Store
	logs     io.Closer
}

func openApp(ctx context.Context, dataDir string) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dataDir = util.DataDir(config.AppName, dataDir)
	settings, err := config.LoadSettings(dataDir)
	if err != nil {
		return nil, err
	}
	logs, err := util.SetupLogging(dataDir, config.LogFileName, settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(settings.DBPath), 0o755); err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, settings.DBPath)
	if err != nil {
		_ = logs.Close()
		return nil, err
	}

	if _, ok := db.GetSetting(ctx, config.SettingTheme); !ok && settings.Theme != "" {
		util.LogError("seed theme setting", db.SetSetting(ctx, config.SettingTheme, settings.Theme))
	}

	st := store.New(db, store.WithDefaultGoal(settings.TasbeehGoal))
	if err := st.Load(ctx, time.Now()); err != nil {
		_ = db.Close()
		_ = logs.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}
	log.Info().Str("db", db.Path()).Str("location", settings.Location).Msg("deen started")
	return &app{settings: settings, db: db, store: st, logs: logs}, nil
}

// catchUp applies any pending rollover and next-prayer change, for commands
// that read state without running the scheduler.
func (a *app) catchUp(ctx context.Context, now time.Time) error {
	if err := a.store.Tick(ctx, now); err != nil {
		return err
	}
	if err := a.store.RefreshNextPrayer(ctx, now); err != nil {
		return err
	}
	a.store.Drain()
	return nil
}

func (a *app) Close() error {
	util.LogError("close database", a.db.Close())
	return a.logs.Close()
}
