// Package cli implements the command-line interface for radikal.
package cli

import (
	"fmt"
	"os"

	"github.com/radikals/radikal/internal/config"
	"github.com/radikals/radikal/internal/deck"
	"github.com/radikals/radikal/internal/store"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Store  *store.Store
	Deck   *deck.Deck
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}

// initContext initializes config and store (no deck)
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	return &cmdContext{Config: cfg, Store: st}
}

// initDeckContext initializes config, store, migrations, and the deck loaded
// from the stored document
func initDeckContext() *cmdContext {
	ctx := initContext()

	if err := ctx.Store.RunMigrations(); err != nil {
		ctx.Close()
		exitError("failed to run migrations: %v", err)
	}

	doc := ctx.Store.LoadDocument()
	ctx.Deck = deck.New(doc, ctx.Store, ctx.Config.Lang())
	return ctx
}

var rootCmd = &cobra.Command{
	Use:   "radikal",
	Short: "3D presentation decks from the terminal",
	Long: `Radikal is a presentation authoring tool. Slides live on a rotating
3D carousel; edit them here or serve the deck and edit live in a browser.
Deck data is stored in a .radikal directory.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(slideCmd)
	rootCmd.AddCommand(sectionCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// truncate shortens a string for one-line listings
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
