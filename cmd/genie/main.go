package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"genie-review/internal/review"
	"genie-review/internal/tui"
)

var version = "0.3.0"

func main() {
	var (
		configPath   string
		themeName    string
		reduceMotion bool
		logFile      string
	)

	root := &cobra.Command{
		Use:     "genie",
		Short:   "Genie — AI contract review in your terminal",
		Long:    "Genie reviews a demo NDA for risk flags, suggests clause edits, and lets you apply them in track changes or directly.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = review.DefaultConfigPath()
			}
			cfg, err := review.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if themeName != "" {
				cfg.Theme = themeName
			}
			if reduceMotion {
				cfg.ReduceMotion = true
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}

			log, closeLog, err := openLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			log.Info("genie starting", map[string]interface{}{"version": version, "theme": cfg.Theme})

			p := tea.NewProgram(tui.New(cfg, version, log), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to config file (default: user config dir)")
	root.Flags().StringVar(&themeName, "theme", "", "color theme: porcelain or midnight")
	root.Flags().BoolVar(&reduceMotion, "reduce-motion", false, "disable list animations and highlights")
	root.Flags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openLogger(path string) (*review.Logger, func(), error) {
	if path == "" {
		return review.NopLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return review.NewLogger(f), func() { _ = f.Close() }, nil
}
