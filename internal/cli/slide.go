package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/radikals/radikal/internal/deck"
	"github.com/radikals/radikal/internal/models"
	"github.com/spf13/cobra"
)

var slideCmd = &cobra.Command{
	Use:   "slide",
	Short: "Manage slides",
}

var slideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all slides",
	Run:   runSlideList,
}

var slideAddCmd = &cobra.Command{
	Use:   "add [section-id]",
	Short: "Add a new slide",
	Long: `Add a new slide. With a section id the slide joins that section;
without one it joins the first section.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSlideAdd,
}

var slideRmCmd = &cobra.Command{
	Use:   "rm <slide-id>",
	Short: "Delete a slide",
	Args:  cobra.ExactArgs(1),
	Run:   runSlideRm,
}

var slideDupCmd = &cobra.Command{
	Use:   "dup <slide-id>",
	Short: "Duplicate a slide",
	Args:  cobra.ExactArgs(1),
	Run:   runSlideDup,
}

var slideMvCmd = &cobra.Command{
	Use:   "mv <from-index> <to-index>",
	Short: "Reorder slides",
	Args:  cobra.ExactArgs(2),
	Run:   runSlideMv,
}

var slideSetCmd = &cobra.Command{
	Use:   "set <slide-id> <field> <value>",
	Short: "Set a slide field",
	Long: `Set one field of a slide. Supported fields: title, subtitle, content,
image, type, section. The change is recorded in history and can be undone.`,
	Args: cobra.ExactArgs(3),
	Run:  runSlideSet,
}

func init() {
	slideCmd.AddCommand(slideListCmd)
	slideCmd.AddCommand(slideAddCmd)
	slideCmd.AddCommand(slideRmCmd)
	slideCmd.AddCommand(slideDupCmd)
	slideCmd.AddCommand(slideMvCmd)
	slideCmd.AddCommand(slideSetCmd)
}

func runSlideList(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	doc := c.Deck.Document()
	cyan := color.New(color.FgCyan)

	for i, slide := range doc.Slides {
		cyan.Printf("%2d  %-8s", i, slide.ID)
		fmt.Printf("  %-12s  %-8s  %s\n", slide.Type, slide.SectionID, truncate(slide.Title, 40))
	}
}

func runSlideAdd(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	sectionID := ""
	if len(args) > 0 {
		sectionID = args[0]
	}

	slide := c.Deck.AddSlide(sectionID)
	fmt.Printf("Added slide %s in section %s\n", slide.ID, slide.SectionID)
}

func runSlideRm(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	if err := c.Deck.DeleteSlide(args[0]); err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Deleted slide %s\n", args[0])
}

func runSlideDup(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	clone := c.Deck.DuplicateSlide(args[0])
	if clone == nil {
		exitError("slide '%s' not found", args[0])
	}
	fmt.Printf("Duplicated slide %s as %s\n", args[0], clone.ID)
}

func runSlideMv(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	from, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid from index: %s", args[0])
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		exitError("invalid to index: %s", args[1])
	}

	if err := c.Deck.MoveSlide(from, to); err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Moved slide %d to %d\n", from, to)
}

func runSlideSet(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	id, field, value := args[0], args[1], args[2]

	var patch deck.SlidePatch
	switch field {
	case "title":
		patch.Title = &value
	case "subtitle":
		patch.Subtitle = &value
	case "content":
		patch.Content = &value
	case "image":
		patch.ImageURL = &value
	case "section":
		patch.SectionID = &value
	case "type":
		t := models.SlideType(value)
		if !t.Valid() {
			exitError("unknown slide type '%s'", value)
		}
		patch.Type = &t
	default:
		exitError("unknown field '%s' (title, subtitle, content, image, type, section)", field)
	}

	if err := c.Deck.UpdateSlide(id, patch, true); err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Updated %s of slide %s\n", field, id)
}
