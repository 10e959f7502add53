package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybalancer/findatime/pkg/core/model"
	"github.com/daybalancer/findatime/pkg/core/overlap"
	"github.com/daybalancer/findatime/pkg/core/services"
	"github.com/daybalancer/findatime/pkg/db"
)

// bandMarks are the text renderings of the coverage bands, light to dark
var bandMarks = map[overlap.Band]string{
	overlap.BandNone: "·",
	overlap.BandSome: "░",
	overlap.BandMany: "▒",
	overlap.BandMost: "█",
}

// ViewResultsCmd creates the results command
func ViewResultsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "results <code>",
		Short: "Show the availability overview and best times for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ViewResults(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					fmt.Println("\nWe couldn't find that session. Double-check the code.")
					return nil
				}
				return err
			}

			session := result.Session
			total := result.TotalParticipants

			fmt.Printf("\n%s — availability overview\n", session.Title)
			if total == 1 {
				fmt.Printf("1 person has responded. Darker = more people free.\n\n")
			} else {
				fmt.Printf("%d people have responded. Darker = more people free.\n\n", total)
			}

			printOverviewGrid(result)

			fmt.Printf("\nLegend: · no one   ░ some   ▒ many   █ most/everyone\n")

			fmt.Printf("\nBest times:\n")
			if len(result.BestTimes) == 0 {
				fmt.Println("  Add more people to find overlaps.")
			} else {
				for _, entry := range result.BestTimes {
					names := make([]string, len(entry.Participants))
					for i, p := range entry.Participants {
						names[i] = p.Name
					}
					fmt.Printf("  %s %s — %s (%d/%d)\n",
						entry.Slot.Day,
						model.FormatHour(entry.Slot.Hour),
						strings.Join(names, ", "),
						len(entry.Participants),
						total)
				}
			}

			fmt.Printf("\nWho's responded:\n")
			if total == 0 {
				fmt.Println("  No responses yet.")
			}
			for _, p := range session.Participants {
				fmt.Printf("  - %s (%d slots)\n", p.Name, len(p.Slots))
			}

			fmt.Printf("\nInvite others with code: %s\n\n", session.Code)

			return nil
		},
	}
}

// printOverviewGrid renders the weekly grid with one band mark per cell
func printOverviewGrid(result *services.ResultsResult) {
	fmt.Printf("%6s", "")
	for _, day := range model.Days {
		fmt.Printf(" %s", day)
	}
	fmt.Println()

	for hour := model.HourStart; hour <= model.HourEnd; hour++ {
		fmt.Printf("%6s", model.FormatHour(hour))
		for _, day := range model.Days {
			slot := model.SlotID{Day: day, Hour: hour}
			ratio := overlap.CoverageRatio(len(result.Overlap[slot]), result.TotalParticipants)
			fmt.Printf("   %s", bandMarks[overlap.CoverageBand(ratio)])
		}
		fmt.Println()
	}
}
