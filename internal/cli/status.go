package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the deck status",
	Long:  `Show the deck title, language, and a summary of its slides and sections.`,
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	doc := c.Deck.Document()

	fmt.Printf("Deck: %s\n", c.Config.Title)
	fmt.Printf("Language: %s\n", c.Config.Language)
	fmt.Printf("Slides: %d in %d sections\n", len(doc.Slides), len(doc.Sections))

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	fmt.Println()
	for _, section := range doc.Sections {
		cyan.Printf("%s  (%s)\n", section.Title, section.ID)
		for i, slide := range doc.Slides {
			if slide.SectionID != section.ID {
				continue
			}
			marker := " "
			if i == c.Deck.CurrentSlideIndex() {
				marker = "*"
			}
			green.Printf("  %s %2d  %-12s", marker, i, slide.Type)
			fmt.Printf("  %s\n", truncate(slide.Title, 48))
		}
	}

	fmt.Println()
	fmt.Printf("Camera: radius %.1f, mode %s\n", doc.Camera.Radius, c.Deck.CameraMode())
}
