package monitor

import (
	"strings"
	"testing"

	"github.com/marcus/scout/internal/models"
)

func TestFormatPlayerAsMarkdown(t *testing.T) {
	v := 91.0
	row := playerRow{
		Player: models.Player{
			Name:     "Ana Costa",
			Position: models.PositionMidfielder,
			Age:      27,
			Rating:   &v,
			Notes:    "Excellent vision. **Left-footed.**",
		},
		TeamName: "River FC",
	}

	md := formatPlayerAsMarkdown(row)

	for _, want := range []string{
		"# Ana Costa",
		"**Position:** Midfielder",
		"**Team:** River FC",
		"**Age:** 27",
		"**Rating:** 91.0",
		"## Scouting Notes",
		"Excellent vision.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "retired") {
		t.Error("active player should have no status line")
	}
}

func TestFormatPlayerAsMarkdownMinimal(t *testing.T) {
	row := playerRow{Player: models.Player{
		Name:     "Sam Ito",
		Position: models.PositionDefender,
		Retired:  true,
	}}

	md := formatPlayerAsMarkdown(row)
	if !strings.Contains(md, "**Status:** retired") {
		t.Error("retired status missing")
	}
	if strings.Contains(md, "**Team:**") || strings.Contains(md, "**Rating:**") {
		t.Errorf("empty fields should be omitted:\n%s", md)
	}
	if strings.Contains(md, "## Scouting Notes") {
		t.Error("notes section should be omitted when empty")
	}
}

func TestPlayerSummaryLine(t *testing.T) {
	v := 88.5
	row := playerRow{
		Player: models.Player{
			Name:     "Eden Silva",
			Position: models.PositionForward,
			Age:      24,
			HeightCM: 180,
			Rating:   &v,
		},
		TeamName: "River FC",
	}
	got := playerSummaryLine(row)
	want := "Forward · River FC · Age 24 · 180 cm · Rated 88.5"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	free := playerRow{Player: models.Player{Name: "Kai", Position: models.PositionGoalkeeper}}
	got = playerSummaryLine(free)
	if got != "Goalkeeper · Free agent · Unrated" {
		t.Errorf("free agent summary = %q", got)
	}
}
