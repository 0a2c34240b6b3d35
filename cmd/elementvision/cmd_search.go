package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"elementvision/internal/present"
	"elementvision/internal/resolve"
)

var (
	strictFlag bool
	enrichFlag bool
	jsonFlag   bool
)

// searchCmd resolves one element and prints its card.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Look up an element by name, symbol, or Chinese name",
	Long: `Resolves a single element and prints its encyclopedia card.

The query may be an English name (gold), a symbol (Au), or a Chinese name
(金). Name and symbol matching ignore case; Chinese names match exactly.

Elements outside the built-in catalog are fetched from Gemini unless
--strict is set.

Exit codes: 2 when no element matches, 3 when the upstream lookup fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&strictFlag, "strict", false, "Catalog only, no Gemini fallback")
	searchCmd.Flags().BoolVar(&enrichFlag, "enrich", false, "Force Gemini fallback even when configured strict")
	searchCmd.MarkFlagsMutuallyExclusive("strict", "enrich")
	searchCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the raw record as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locale, err := present.ParseLocale(cfg.UI.Locale)
	if err != nil {
		return err
	}
	msgs := present.MessagesFor(locale)

	mode := resolve.ModeEnriched
	if strictFlag || (cfg.Resolver.Mode == "strict" && !enrichFlag) {
		mode = resolve.ModeStrict
	}

	resolver, cleanup, err := buildResolver(cfg, mode)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	query := strings.Join(args, " ")
	logger.Info("Resolving element", zap.String("query", query), zap.String("mode", string(mode)))

	rec, err := resolver.Resolve(ctx, query)
	if err != nil {
		switch {
		case resolve.IsNotFound(err):
			fmt.Fprintln(os.Stderr, msgs.NotFound)
			fmt.Fprintf(os.Stderr, "%s %s\n", msgs.TryThese, strings.Join(present.Suggestions, ", "))
		case resolve.IsUpstream(err):
			fmt.Fprintln(os.Stderr, msgs.UpstreamErr)
			logger.Error("Upstream lookup failed", zap.Error(err))
		}
		return err
	}

	if jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	view := present.Project(rec, locale)
	fmt.Print(renderCard(view, msgs))
	return nil
}
