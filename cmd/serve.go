package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/pipeline"
	"github.com/abhisek/mcqgen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCQ API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = state.settings.Server.Addr
		}

		p, cleanup, err := newPipeline(cmd, pipeline.WithSource(pipeline.SourceHTTP))
		if err != nil {
			return err
		}
		defer cleanup()

		srv := server.New(server.Config{
			Addr:           addr,
			AllowedOrigins: state.settings.Server.AllowedOrigins,
			NumQuestions:   state.settings.NumQuestions,
		}, p, state.log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		state.log.Info("shutdown signal received", zap.String("address", addr))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
