package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage sections",
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sections",
	Run:   runSectionList,
}

var sectionAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new section",
	Args:  cobra.ExactArgs(1),
	Run:   runSectionAdd,
}

var sectionRmCmd = &cobra.Command{
	Use:   "rm <section-id>",
	Short: "Delete a section",
	Long: `Delete a section. Slides in the deleted section move to the first
remaining section. The last section cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	Run:  runSectionRm,
}

func init() {
	sectionCmd.AddCommand(sectionListCmd)
	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionRmCmd)
}

func runSectionList(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	doc := c.Deck.Document()
	cyan := color.New(color.FgCyan)

	for _, section := range doc.Sections {
		count := 0
		for _, slide := range doc.Slides {
			if slide.SectionID == section.ID {
				count++
			}
		}
		cyan.Printf("%-8s", section.ID)
		fmt.Printf("  %-32s  %d slides\n", truncate(section.Title, 32), count)
	}
}

func runSectionAdd(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	section := c.Deck.AddSection(args[0])
	fmt.Printf("Added section %s (%q)\n", section.ID, section.Title)
}

func runSectionRm(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	if err := c.Deck.DeleteSection(args[0]); err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Deleted section %s\n", args[0])
}
