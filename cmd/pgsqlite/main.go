// Package main is the entry point for the pgsqlite server: a PostgreSQL
// wire-protocol front end backed by embedded SQLite storage.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgsqlite/pgsqlite/pkg/config"
	"github.com/pgsqlite/pgsqlite/pkg/pgwire"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "pgsqlite",
	Short:         "PostgreSQL wire-protocol server backed by embedded SQLite",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return run(ctx)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config file (default: ./config.yaml)")
	flags.Int("port", 0, "postgres wire protocol bind port (overrides server.port)")
	flags.String("data-dir", "", "directory holding SQLite database files (overrides storage.database)")
	flags.Bool("use-pooling", false, "enable per-session connection pooling")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("server.port", flags.Lookup("port"))
	_ = viper.BindPFlag("storage.database", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("pool.use_pooling", flags.Lookup("use-pooling"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(cfg.Storage.Database, 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	log.SetFlags(0)

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	server := pgwire.NewServer(address, cfg.Storage.Database)
	if err := server.Start(); err != nil {
		return err
	}

	log.Printf("pgsqlite listening on %s, data dir %s", server.Address, cfg.Storage.Database)

	// Wait on signal before shutting down.
	<-ctx.Done()
	log.Printf("shutdown signal received")

	if err := server.Stop(); err != nil {
		return err
	}
	log.Printf("pgsqlite shutdown complete")
	return nil
}
