package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EinariTuukkanen/Hero-Wars/internal/config"
	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/data"
	"github.com/EinariTuukkanen/Hero-Wars/internal/entity"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
	"github.com/EinariTuukkanen/Hero-Wars/internal/feed"
	"github.com/EinariTuukkanen/Hero-Wars/internal/handler"
	"github.com/EinariTuukkanen/Hero-Wars/internal/heroes"
	"github.com/EinariTuukkanen/Hero-Wars/internal/persist"
	"github.com/EinariTuukkanen/Hero-Wars/internal/scripting"
	"github.com/EinariTuukkanen/Hero-Wars/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            Hero Wars  v0.1.0              \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m       hero progression game server        \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s\n\n", serverName)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("HEROWARS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name)

	// 3. Connect to PostgreSQL and run migrations
	printSection("database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	printOK("PostgreSQL connected")

	if err := persist.RunMigrations(ctx, db.Pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	printOK("migrations applied")
	fmt.Println()

	// 4. Load content: balance tables, Lua formulas, hero registry
	printSection("content")

	balance, err := data.LoadBalanceTable("data/heroes.yaml")
	if err != nil {
		return fmt.Errorf("load balance table: %w", err)
	}
	printStat("balance entries", balance.Count())

	luaEngine, err := scripting.NewEngine("scripts", log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("Lua formulas loaded")

	reg := entity.NewRegistry()
	if err := heroes.RegisterAll(reg, balance, luaEngine); err != nil {
		return fmt.Errorf("register content: %w", err)
	}
	if err := reg.CheckStartup(); err != nil {
		return fmt.Errorf("content check: %w", err)
	}
	printStat("heroes", len(reg.Heroes()))
	printStat("items", len(reg.Items()))
	fmt.Println()

	// 5. Engine bridge listener (also the steamid resolver)
	bridge, err := feed.NewListener(cfg.Server.BindAddress, cfg.Game.EventQueueSize, log)
	if err != nil {
		return fmt.Errorf("event feed: %w", err)
	}
	go bridge.AcceptLoop()

	// 6. Sessions and event handlers
	sched := cooldown.NewScheduler()
	store := persist.NewStore(db)
	sessions := session.NewManager(reg, sched, store, bridge, cfg.Game.MaxItems, log)

	evReg := event.NewRegistry(log)
	handler.RegisterAll(evReg, &handler.Deps{
		Sessions: sessions,
		Config:   cfg,
		Log:      log,
	})

	// 7. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

	printSection("server ready")
	printReady(fmt.Sprintf("event feed on %s", bridge.Addr().String()))
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Game.TickRate))
	fmt.Println()

	for {
		select {
		case ev := <-bridge.Events():
			evReg.Dispatch(ev)
		case <-ticker.C:
			sched.Tick()
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			saveCtx, saveCancel := context.WithTimeout(context.Background(), cfg.Database.SaveTimeout)
			sessions.SaveAll(saveCtx)
			saveCancel()
			bridge.Shutdown()
			log.Info("server stopped")
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
