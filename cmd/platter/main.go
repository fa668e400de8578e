package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/platter/internal/app"
	"github.com/five82/platter/internal/listing"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("platter:"), err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	root := &cobra.Command{
		Use:   "platter",
		Short: "Municipal food information portal",
		Long: `Platter is a terminal portal for the city's food information service:
food education, a dining guide, food safety guidance, an interactive map,
report and suggestion forms, and the admin and analytics dashboards.

Run without arguments to start the interactive interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/platter/config.toml)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/platter/prefs.toml)")
	root.Flags().StringVar(&opts.StartPage, "page", "", "page to open first, e.g. dining or map")
	root.Flags().StringVar(&opts.Theme, "theme", "", "color theme: Nightfox, Kanagawa or Slate")

	root.AddCommand(newDiningCmd(), newMapCmd(), newPagesCmd())
	return root
}

func newDiningCmd() *cobra.Command {
	criteria := listing.AllCriteria()
	cmd := &cobra.Command{
		Use:   "dining",
		Short: "List restaurants from the dining guide",
		Example: `  platter dining --category Traditional
  platter dining --min-rating 4.5+`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.PrintDining(cmd.OutOrStdout(), criteria)
		},
	}
	cmd.Flags().StringVar(&criteria.Category, "category", listing.All, "Traditional, Healthy, Street Food, Fine Dining or all")
	cmd.Flags().StringVar(&criteria.MinRating, "min-rating", listing.All, "4.5+, 4.0+, 3.5+ or all")
	return cmd
}

func newMapCmd() *cobra.Command {
	var (
		category string
		selectID int
	)
	cmd := &cobra.Command{
		Use:   "map",
		Short: "List map locations and show one location's details",
		Example: `  platter map --category Market
  platter map --select 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.PrintMap(cmd.OutOrStdout(), category, selectID)
		},
	}
	cmd.Flags().StringVar(&category, "category", listing.All, "location category or all")
	cmd.Flags().IntVar(&selectID, "select", 0, "location id to show in detail")
	return cmd
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the portal pages accepted by --page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.PrintPages(cmd.OutOrStdout())
		},
	}
}
