package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybalancer/findatime/pkg/core/services"
	"github.com/daybalancer/findatime/pkg/db"
)

// JoinSessionCmd creates the join command
func JoinSessionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Look up a session by its share code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.JoinSession(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					fmt.Println("\nWe couldn't find that session. Double-check the code.")
					return nil
				}
				return err
			}

			session := result.Session
			fmt.Printf("\n✓ Found session %q (code %s)\n\n", session.Title, session.Code)
			if len(session.Participants) == 0 {
				fmt.Println("No responses yet.")
			} else {
				fmt.Printf("Already responded:\n")
				for _, p := range session.Participants {
					fmt.Printf("  - %s (%d slots)\n", p.Name, len(p.Slots))
				}
			}
			fmt.Println()

			return nil
		},
	}
}
