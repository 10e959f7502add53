package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybalancer/findatime/pkg/core/services"
)

// CreateSessionCmd creates the create command
func CreateSessionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new scheduling session and print its share code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.CreateSession(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Session created!\n\n")
			fmt.Printf("Title: %s\n", result.Session.Title)
			fmt.Printf("Code:  %s\n\n", result.Session.Code)
			fmt.Printf("Share the code so others can submit their availability:\n")
			fmt.Printf("  daybalancer submit %s <your-name> <slots...>\n\n", result.Session.Code)

			return nil
		},
	}
}
