package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the deck to the starter slides",
	Long: `Replace all slides, sections, and camera settings with the starter
deck and clear the saved document. Asks for confirmation unless --yes.`,
	Run: runReset,
}

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip confirmation")
}

func runReset(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	if !resetYes {
		fmt.Printf("%s [y/N] ", c.Deck.Dict().ResetConfirm)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	c.Deck.Reset()
	fmt.Println("Deck reset to starter slides.")
}
