package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
	"github.com/jonathan/resume-parser/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the résumé upload API",
	Long: `Start an HTTP server exposing POST /resumes/parse. When DATABASE_URL is set,
results are stored and GET /resumes/{id} is available. When JWT_SECRET is set,
requests need a bearer token.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := appConfig.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	jwtConfig, err := config.OptionalJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}

	opts := server.Options{
		Port:           port,
		MaxUploadBytes: appConfig.MaxUploadBytes,
		Parser:         newParser(appConfig, logger),
		Logger:         logger,
		JWT:            jwtConfig,
		RateLimit:      ratelimit.LoadConfig(),
	}

	store, err := openStore(ctx, appConfig)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts.Store = store
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(ctx)
}
