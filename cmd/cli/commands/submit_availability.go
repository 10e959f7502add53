package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybalancer/findatime/pkg/core/model"
	"github.com/daybalancer/findatime/pkg/core/selection"
	"github.com/daybalancer/findatime/pkg/core/services"
	"github.com/daybalancer/findatime/pkg/db"
)

// SubmitAvailabilityCmd creates the submit command
func SubmitAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <code> <name> [slot...]",
		Short: "Submit your free slots for a session",
		Long: `Submit your free slots for a session.

Slots are given as Day-Hour cells ("Mon-9") or Day-Hour ranges
("Mon-9..12", meaning Monday 9am through 12pm). Repeating a slot
toggles it back off. Submitting no slots records a "never free"
response.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, name := args[0], args[1]

			slots, err := pickSlots(args[2:])
			if err != nil {
				return err
			}

			result, err := services.SubmitAvailability(app.Ctx, app.Store, app.Logger, code, name, slots)
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					fmt.Println("\nWe couldn't find that session. Double-check the code.")
					return nil
				}
				return err
			}

			fmt.Printf("\n✓ Availability saved for %s (%d slots)\n\n", result.Participant.Name, len(result.Participant.Slots))
			fmt.Printf("View the overview with:\n")
			fmt.Printf("  daybalancer results %s\n\n", result.Session.Code)

			return nil
		},
	}
}

// pickSlots replays the slot arguments through the drag-selection machine:
// each argument is one gesture, a range being a press followed by drags
// across the remaining cells. This gives the CLI the same toggle semantics
// as the grid.
func pickSlots(args []string) (model.SlotSet, error) {
	picker := selection.New()

	for _, arg := range args {
		cells, err := expandSlotArg(arg)
		if err != nil {
			return nil, err
		}

		picker.Press(cells[0])
		for _, cell := range cells[1:] {
			picker.Enter(cell)
		}
		picker.Release()
	}

	return picker.Selected(), nil
}

// expandSlotArg parses "Mon-9" or "Mon-9..12" into the cells the gesture
// covers, in order.
func expandSlotArg(arg string) ([]model.SlotID, error) {
	start, endStr, isRange := strings.Cut(arg, "..")

	first, err := model.ParseSlot(start)
	if err != nil {
		return nil, err
	}
	if !isRange {
		return []model.SlotID{first}, nil
	}

	endHour, err := strconv.Atoi(endStr)
	if err != nil {
		return nil, fmt.Errorf("invalid slot range %q: end hour is not a number: %w", arg, err)
	}
	last := model.SlotID{Day: first.Day, Hour: endHour}
	if !last.Valid() || endHour < first.Hour {
		return nil, fmt.Errorf("invalid slot range %q", arg)
	}

	cells := make([]model.SlotID, 0, endHour-first.Hour+1)
	for hour := first.Hour; hour <= endHour; hour++ {
		cells = append(cells, model.SlotID{Day: first.Day, Hour: hour})
	}
	return cells, nil
}
