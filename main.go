// @title API Chat AI
// @version 1.0
// @description Healthcheck and chat proxy to a local Ollama model
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @basePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "apichat/docs"
	"apichat/internal/api"
	"apichat/internal/client"
	"apichat/internal/config"
	"apichat/internal/observability"
	"apichat/internal/service"
	"apichat/internal/util"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath, port)
		},
	}

	rootCmd := &cobra.Command{
		Use:          util.ServiceName,
		Short:        "Healthcheck and chat proxy to a local Ollama model",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (model %s)\n", util.ServiceName, util.ServiceVersion, util.OllamaModel)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)
	return rootCmd
}

func serve(configPath string, port int) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != 0 {
		cfg.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	util.SetupLogging(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	logger := util.NewLogger("main")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := observability.InitTracing(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Tracer shutdown failed", err)
		}
	}()

	// Initialize LLM client
	llmClient, err := client.New(cfg)
	if err != nil {
		return err
	}

	// Check LLM runtime health; the server starts either way
	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if healthy, err := llmClient.Health(healthCtx); !healthy || err != nil {
		logger.Warn(fmt.Sprintf("LLM runtime at %s is not reachable", util.OllamaHost), err)
	} else {
		logger.Info("LLM runtime at %s is healthy (backend %s, model %s)", util.OllamaHost, cfg.LLMBackend, util.OllamaModel)
	}
	cancel()

	llmService := service.NewLLMService(llmClient)
	router := api.Router(llmService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API Chat AI listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down API Chat AI...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown error: %w", err)
	}
	return nil
}
