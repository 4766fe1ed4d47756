package render

import (
	"fmt"

	"github.com/lixenwraith/skyfire/engine"
)

// HUDLabels returns the score, combo and lives labels
func HUDLabels(f *Frame) (score, combo, lives string) {
	return fmt.Sprintf("Score %d", f.Score),
		fmt.Sprintf("Combo x%d", f.Combo),
		fmt.Sprintf("Lives %d", f.Lives)
}

// BannerLines returns the centered overlay text for the phase; empty while running
func BannerLines(phase engine.Phase, score int) []string {
	switch phase {
	case engine.PhaseIdle:
		return []string{"Press Enter to start"}
	case engine.PhaseGameOver:
		return []string{"GAME OVER", fmt.Sprintf("Score %d - press Enter to restart", score)}
	default:
		return nil
	}
}
