package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"elementvision/internal/catalog"
	"elementvision/internal/config"
	"elementvision/internal/llm"
	"elementvision/internal/resolve"
	"elementvision/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	apiKey     string
	localeFlag string

	// Logger
	logger *zap.Logger
)

// Exit codes for scripted callers.
const (
	exitNotFound = 2
	exitUpstream = 3
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "elementvision",
	Short: "elementvision - bilingual chemical element encyclopedia",
	Long: `elementvision is a bilingual (English/Chinese) encyclopedia of the
chemical elements for the terminal.

Lookups accept an English name, an element symbol, or a Chinese name. Elements
outside the built-in catalog are fetched from Gemini and validated before
display.

Run without arguments to start the interactive dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive dashboard owns the terminal; keep zap quiet there.
		if cmd.Name() == cmd.Root().Name() {
			logger = zap.NewNop()
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "elementvision.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env)")
	rootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "l", "", "Display locale: en or zh")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Lookup failures already printed localized copy; keep stderr clean
		// and report them through the exit code.
		switch {
		case errors.Is(err, resolve.ErrNotFound):
			os.Exit(exitNotFound)
		case errors.Is(err, resolve.ErrUpstream):
			os.Exit(exitUpstream)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the YAML config and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if localeFlag != "" {
		cfg.UI.Locale = localeFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildResolver wires the catalog, Gemini client, and optional cache into a
// resolver. The returned cleanup closes the cache when one was opened.
func buildResolver(cfg *config.Config, mode resolve.Mode) (*resolve.Resolver, func(), error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load element catalog: %w", err)
	}

	rcfg := resolve.Config{Mode: mode, Logger: logger}
	cleanup := func() {}

	if mode == resolve.ModeEnriched {
		rcfg.Completer = llm.NewGeminiClientWithConfig(llm.GeminiConfig{
			APIKey:          cfg.LLM.APIKey,
			BaseURL:         cfg.LLM.BaseURL,
			Model:           cfg.LLM.Model,
			Timeout:         cfg.GetLLMTimeout(),
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
			Logger:          logger,
		})

		if cfg.Cache.Enabled {
			cache, err := store.Open(cfg.Cache.Path, logger)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open record cache: %w", err)
			}
			rcfg.Cache = cache
			cleanup = func() { _ = cache.Close() }
		}
	}

	return resolve.New(cat, rcfg), cleanup, nil
}
