package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"isozombie/internal/world"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Snapshot renders the simulation as plain text: a header, one line per
// zombie and the most recent events.
func Snapshot(s *SimulationState, grid *world.Grid, events *EventLog) string {
	var b strings.Builder
	player := s.PlayerMapPosition()
	fmt.Fprintf(&b, "tick=%d t=%ds kills=%d hits=%d bullets=%d\n",
		s.Tick, s.GameSeconds(), s.Kills, s.Hits, s.Bullets.Len())
	fmt.Fprintf(&b, "player tile=%v stance=%s blocked=%v\n",
		grid.CoordsToTile(player), s.Character.Stance, s.Character.Blocked)
	heading := "-"
	if h, ok := s.Input.Orientation.Heading(); ok {
		heading = fmt.Sprintf("%.0f", h)
	}
	fmt.Fprintf(&b, "input orientation=%s heading=%s delta=(%.2f, %.2f)\n",
		s.Input.Orientation, heading, s.Input.Movement.X, s.Input.Movement.Y)
	for _, z := range s.Zombies {
		fmt.Fprintf(&b, "%s tile=%v stance=%s health=%.2f\n",
			zombieLabel(z), grid.CoordsToTile(z.MapPosition(s.Offset)), z.Stance, z.Health)
	}
	if events != nil {
		for _, e := range events.Tail(10) {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CopySnapshot puts the snapshot on the system clipboard.
func CopySnapshot(s *SimulationState, grid *world.Grid, events *EventLog) error {
	if err := writeClipboard(Snapshot(s, grid, events)); err != nil {
		return fmt.Errorf("copy snapshot: %w", err)
	}
	return nil
}
