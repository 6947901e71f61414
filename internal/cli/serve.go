package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindforge/mindforge/internal/responder"
	"github.com/mindforge/mindforge/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Run:   runServe,
	}

	cmd.Flags().StringP("port", "p", "", "Listen port (default: $MINDFORGE_PORT or 5000)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	port, _ := cmd.Flags().GetString("port")

	cfg := loadConfig()
	if port != "" {
		cfg.Port = port
	}

	m, fs := openMind(cfg)
	planner := newPlanner(cfg, m)
	llm := &responder.Hybrid{
		Local: responder.NewOllama(cfg.OllamaHost, cfg.LLMModel),
	}
	if cfg.OpenAIKey != "" {
		llm.Remote = responder.NewOpenAI(cfg.OpenAIBase, cfg.OpenAIKey, cfg.RemoteModel)
	}

	router := server.New(cfg, m, planner, llm, fs)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server failed", "err", err)
			os.Exit(1)
		}
	}()

	slog.Info("mindforge api listening",
		"port", cfg.Port,
		"state", cfg.StatePath,
		"deadline", cfg.Deadline,
		"remaining_days", planner.RemainingDays(),
		"urgency", planner.UrgencyLevel(),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	slog.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutCtx)
}
