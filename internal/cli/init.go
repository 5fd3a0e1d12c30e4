package cli

import (
	"fmt"

	"github.com/radikals/radikal/internal/config"
	"github.com/radikals/radikal/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new deck",
	Long: `Initialize a new deck in the current directory.
This creates a .radikal directory holding the deck configuration and
database, seeded with the starter slides.`,
	Run: runInit,
}

var (
	initTitle string
	initLang  string
)

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", "Untitled Deck", "Deck title")
	initCmd.Flags().StringVar(&initLang, "lang", "en", "Deck language (en, fa)")
}

func runInit(cmd *cobra.Command, args []string) {
	// Check if already initialized
	if _, err := config.FindDeckRoot(); err == nil {
		exitError("deck already exists")
	}

	fmt.Printf("Initializing deck...\n")

	cfg, err := config.Initialize(initTitle)
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	if initLang != "" {
		cfg.Language = initLang
		if err := cfg.Save(); err != nil {
			fmt.Printf("Warning: could not save language to config: %v\n", err)
		}
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to create store: %v", err)
	}
	defer st.Close()

	if err := st.RunMigrations(); err != nil {
		exitError("failed to initialize store: %v", err)
	}

	// Seed the starter document so status and serve have something to show.
	doc := st.LoadDocument()
	if err := st.SaveDocument(doc); err != nil {
		exitError("failed to seed deck: %v", err)
	}

	fmt.Printf("\nInitialized deck %q in .radikal/\n", cfg.Title)
	fmt.Printf("Starter deck has %d slides in %d sections.\n", len(doc.Slides), len(doc.Sections))
	fmt.Printf("\nRun 'radikal serve' to open it, or 'radikal slide list' to inspect it.\n")
}
