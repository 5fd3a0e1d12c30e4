package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last change on the running deck",
	Long: `Undo the last history entry. History lives in the serving process,
so this talks to a running 'radikal serve' instance.`,
	Run: func(cmd *cobra.Command, args []string) { runHistoryStep("undo") },
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the last undone change on the running deck",
	Run:   func(cmd *cobra.Command, args []string) { runHistoryStep("redo") },
}

func runHistoryStep(op string) {
	c := initContext()
	defer c.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	url := fmt.Sprintf("http://%s/api/v1/%s", c.Config.Listen, op)

	resp, err := client.Post(url, "application/json", nil)
	if err != nil {
		exitError("no running deck server at %s (start one with 'radikal serve')", c.Config.Listen)
	}
	defer resp.Body.Close()

	var result struct {
		Applied bool `json:"applied"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		exitError("unexpected response from server: %v", err)
	}

	if result.Applied {
		fmt.Printf("%s applied\n", op)
	} else {
		fmt.Printf("nothing to %s\n", op)
	}
}
