// Package cli is the storefront's command surface. It only ever drives the
// shop root through its component operations; it holds no domain state of
// its own.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hemshop/storefront/internal/catalog"
	"github.com/hemshop/storefront/internal/config"
	"github.com/hemshop/storefront/internal/obs"
	"github.com/hemshop/storefront/internal/shop"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Ephemeral  bool
	Verbose    bool
	Format     string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the storefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "HEM storefront demo",
		Long: `A streetwear storefront demo: browse the catalog, manage a cart and
wishlist, read the blog, and administer products behind a password gate.
Catalog and activity log persist to a local SQLite file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			obs.InitLogger(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.Ephemeral, "ephemeral", false, "run on an in-memory store")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewBlogCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openShop builds the shop root for a command run.
func openShop(opts *RootOptions, confirm catalog.ConfirmFunc) (*shop.Shop, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if opts.Ephemeral {
		return shop.OpenEphemeral(cfg, confirm)
	}
	return shop.Open(cfg, confirm)
}
