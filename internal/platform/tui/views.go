package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenPlaying:
		m.game.Render(m.canvas)
		body = RenderScreen(m.canvas)
	case screenScores:
		return m.scores.View()
	default:
		body = m.place(m.panel())
	}

	paused := m.game.Phase() == core.PhasePaused
	return body + "\n" + mutedStyle.Render(m.help.View(m.keys.helpFor(m.screen, paused)))
}

// place centers content in the area above the help bar.
func (m Model) place(content string) string {
	w, h := m.config.ScreenW, m.config.ScreenH-1
	if w <= 0 || h <= 0 {
		return content
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) panel() string {
	switch m.screen {
	case screenSettings:
		return m.settingsView()
	case screenHighScore:
		return m.highScoreView()
	case screenGameOver:
		return m.gameOverView()
	default:
		return m.homeView()
	}
}

func (m Model) homeView() string {
	rec := m.game.Record()
	prefs := m.game.Prefs()

	var b strings.Builder
	b.WriteString(titleStyle.Render("F L A P P Y"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("fly between the flames"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Best %d   Games %d   Total %d", rec.HighScore, rec.GamesPlayed, rec.TotalScore)
	b.WriteString(stats)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s  ·  music: %s", prefs.Difficulty.Label(), prefs.TrackTitle())))
	b.WriteString("\n\n")

	for i, item := range homeItems {
		if i == m.homeCursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString(itemStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

func (m Model) settingsView() string {
	prefs := m.game.Prefs()

	rows := []struct {
		label string
		value string
	}{
		{"Difficulty", difficultyPicker(prefs.Difficulty)},
		{"Volume", volumeBar(prefs.Volume)},
		{"Music", "◀ " + prefs.TrackTitle() + " ▶"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SETTINGS"))
	b.WriteString("\n\n")
	for i, r := range rows {
		line := fmt.Sprintf("%-11s %s", r.label, r.value)
		if i == m.settingsCursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String())
}

func difficultyPicker(current config.Difficulty) string {
	parts := make([]string, 0, 3)
	for _, d := range config.Difficulties() {
		if d == current {
			parts = append(parts, "["+d.Label()+"]")
		} else {
			parts = append(parts, " "+strings.ToLower(d.Label())+" ")
		}
	}
	return strings.Join(parts, "")
}

// volumeBar draws a ten segment gauge followed by the percentage.
func volumeBar(volume int) string {
	filled := volume / 10
	return "[" + strings.Repeat("■", filled) + strings.Repeat("□", 10-filled) + fmt.Sprintf("] %3d", volume)
}

func (m Model) highScoreView() string {
	best := m.game.Record().HighScore
	medal := flappy.MedalFor(best)

	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORE"))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render(fmt.Sprintf("%d", best)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s", medal.Glyph(), strings.ToUpper(medal.String())))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

func (m Model) gameOverView() string {
	score := m.game.Score()
	rec := m.game.Record()
	medal := flappy.MedalFor(score)

	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(causeText(m.game.Cause())))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score %s   Best %d", accentStyle.Render(fmt.Sprintf("%d", score)), rec.HighScore))
	b.WriteString("\n")
	if score > m.bestBefore {
		b.WriteString(accentStyle.Render("NEW BEST!"))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s", medal.Glyph(), strings.ToUpper(medal.String())))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d games played", rec.GamesPlayed)))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

func causeText(c core.EndCause) string {
	switch c {
	case core.CauseFall:
		return "You fell out of the sky"
	case core.CausePipe:
		return "You flew into the flames"
	default:
		return ""
	}
}
