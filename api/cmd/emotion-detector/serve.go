package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"emotion-detector/api/internal/handle"
	"emotion-detector/api/internal/httpserver"
)

func NewServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /emotionDetector",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h := handle.New(a.clf)
			srv := httpserver.New(httpserver.Config{
				Addr:            a.cfg.Addr(),
				ShutdownTimeout: a.cfg.ShutdownTimeout,
				Routes: []httpserver.Route{
					{Pattern: handle.EmotionDetectorRoute, Handler: h.EmotionDetector},
				},
			}, a.log)

			if err := srv.Run(ctx); err != nil {
				return err
			}
			a.log.Info().Msg("server exited")
			return nil
		},
	}
}
