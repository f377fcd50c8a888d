package output

import (
	"fmt"
	"io"
	"strings"

	"studyplan/internal/service"
)

// BarWidth is the number of cells in the progress bar.
const BarWidth = 20

// FormatProgress prints completion counts, a progress bar, the
// motivational message, and unlocked achievements.
func FormatProgress(w io.Writer, th Theme, p service.Progress, message string, achievements []service.Achievement) {
	fmt.Fprintf(w, "Total tasks:      %d\n", p.Total)
	fmt.Fprintf(w, "Completed:        %d\n", p.Completed)
	fmt.Fprintf(w, "Completion rate:  %d%%\n", p.Rate)
	fmt.Fprintf(w, "[%s]\n", progressBar(th, p.Rate))
	fmt.Fprintln(w)
	fmt.Fprintln(w, message)
	fmt.Fprintln(w)
	fmt.Fprintln(w, th.Title.Render("Achievements:"))
	if len(achievements) == 0 {
		fmt.Fprintln(w, "  Complete your first task to unlock achievements! 💖")
		return
	}
	for _, a := range achievements {
		fmt.Fprintf(w, "  %s %s - %s\n", a.Icon, a.Title, a.Description)
	}
}

func progressBar(th Theme, rate int) string {
	rate = max(0, min(rate, 100))
	filled := rate * BarWidth / 100
	return th.Bar.Render(strings.Repeat("#", filled)) + strings.Repeat("-", BarWidth-filled)
}
