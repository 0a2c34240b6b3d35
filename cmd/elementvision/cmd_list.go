package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"elementvision/internal/catalog"
	"elementvision/internal/present"
)

// listCmd prints the built-in catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the elements in the built-in catalog",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	locale, err := present.ParseLocale(cfg.UI.Locale)
	if err != nil {
		return err
	}
	msgs := present.MessagesFor(locale)

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load element catalog: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		msgs.LabelAtomicNumber, msgs.LabelSymbol, msgs.LabelName, msgs.LabelCategory)
	for _, rec := range cat.All() {
		view := present.Project(rec, locale)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			view.AtomicNumber, view.Symbol, view.Name, view.Category)
	}
	return w.Flush()
}
