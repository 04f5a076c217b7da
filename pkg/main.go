package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkg "github.com/emberlight/chronicle/pkg/internal"
	localCache "github.com/emberlight/chronicle/pkg/internal/cache"
	"github.com/emberlight/chronicle/pkg/internal/database"
	"github.com/emberlight/chronicle/pkg/internal/http"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.CyanString("  ____ _                     _      _\n / ___| |__  _ __ ___  _ __ (_) ___| | ___\n| |   | '_ \\| '__/ _ \\| '_ \\| |/ __| |/ _ \\\n| |___| | | | | | (_) | | | | | (__| |  __/\n \\____|_| |_|_|  \\___/|_| |_|_|\\___|_|\\___|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiCyan).Add(color.Bold).Sprintf("Chronicle"), pkg.AppVersion)
	fmt.Printf("The community blogging service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetDefault("bind", "0.0.0.0:8444")
	viper.SetDefault("cache.homepage_ttl", 20*time.Second)
	viper.SetDefault("security.login_url", "/login")
	viper.SetDefault("storage.uploads", "uploads")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Load the identity provider public key
	var reader *services.TokenReader
	if instance, err := services.NewTokenReader(viper.GetString("security.internal_public_key")); err != nil {
		log.Error().Err(err).Msg("An error occurred when reading identity public key. Authentication related features will be disabled.")
	} else {
		reader = instance
		log.Info().Msg("Identity provider public key loaded.")
	}

	// Connect to database
	db, err := database.NewGorm()
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(db); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Page cache
	store, err := localCache.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache store.")
	}
	pages := services.NewPageCache(store, viper.GetDuration("cache.homepage_ttl"))

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", func() { services.DoAutoDatabaseCleanup(db) })
	quartz.Start()

	// Server
	go func() {
		server := http.NewServer(db, reader, pages)
		if err := server.Listen(viper.GetString("bind")); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when starting http server.")
		}
	}()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
