package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"toybrowser/internal/config"
	"toybrowser/internal/devserver"
	"toybrowser/internal/paint"
	"toybrowser/internal/pipeline"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "toybrowser",
	Short: "A toy HTML/CSS/JS rendering pipeline",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&cfg.URL, "url", "", "fetch and render this URL")
	rootCmd.Flags().StringVar(&cfg.File, "file", "", "render this local HTML file instead of a URL")
	rootCmd.Flags().BoolVar(&cfg.Watch, "watch", false, "serve an SVG preview and live-reload it on file changes")
	rootCmd.Flags().StringVar(&cfg.Addr, "addr", ":8080", "bind address for the dev-preview server")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	loadHTML := func() (string, error) {
		if cfg.File != "" {
			b, err := os.ReadFile(cfg.File)
			return string(b), err
		}
		return pipeline.Fetch(cfg.URL)
	}

	if !cfg.Watch {
		htmlSrc, err := loadHTML()
		if err != nil {
			return err
		}
		page := pipeline.Render(htmlSrc, logger)
		printDisplayItems(page)
		return nil
	}

	if cfg.File == "" {
		return fmt.Errorf("--watch requires --file (there is nothing local to watch for --url)")
	}

	srv := devserver.New(func() []paint.DisplayItem {
		htmlSrc, err := loadHTML()
		if err != nil {
			logger.Warn("reload render failed", slog.Any("error", err))
			return nil
		}
		return pipeline.Render(htmlSrc, logger).DisplayItems
	}, logger)

	stop := make(chan struct{})
	go func() {
		if err := srv.Watch(cfg.File, stop); err != nil {
			logger.Warn("watch stopped", slog.Any("error", err))
		}
	}()

	logger.Info("serving dev preview", slog.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, srv.Handler())
}

func printDisplayItems(page *pipeline.Page) {
	for _, item := range page.DisplayItems {
		fmt.Printf("%+v\n", item)
	}
}
