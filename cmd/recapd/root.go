package main

import (
	"context"
	"os"

	"github.com/sandevgo/recapd/internal/config"
	"github.com/sandevgo/recapd/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "recapd",
	Short: "recapd — transcript summary and chat API",
	Long:  `recapd is a small HTTP service that summarizes transcripts and answers follow-up questions about them through an upstream LLM provider.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
