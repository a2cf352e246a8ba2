package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/antsGo/internal/state"
)

// CellWidth is the inner width of each site drawn.
const CellWidth = 7

var (
	cellStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(CellWidth).Align(lipgloss.Center)
	labelStyle  = lipgloss.NewStyle().Width(4).Height(3).PaddingTop(1).Align(lipgloss.Right)
	headerStyle = lipgloss.NewStyle().Bold(true)

	waterColor  = lipgloss.Color("12")
	antColor    = lipgloss.Color("10")
	beeColor    = lipgloss.Color("11")
	leaderColor = lipgloss.Color("13")
)

// printCentered prints the block of text centered in the terminal, if its width is known.
func (ui *UI) printCentered(block string) {
	indent := (ui.width() - lipgloss.Width(block)) / 2
	if indent <= 0 {
		ui.printf("%s\n", block)
		return
	}
	margin := strings.Repeat(" ", indent)
	for _, line := range strings.Split(block, "\n") {
		if len(line) == 0 {
			ui.printf("\n")
			continue
		}
		ui.printf("%s%s\n", margin, line)
	}
}

func (ui *UI) style(color lipgloss.Color) lipgloss.Style {
	if !ui.color {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Print the current state of the game: turn, field, food and the ants available.
func (ui *UI) Print(game *Game) {
	if ui.clearScreen {
		ui.printf("\033c")
	}
	ui.printf("\n%s\n\n", headerStyle.Render(fmt.Sprintf("Turn #%d", game.Turn())))
	ui.printCentered(ui.RenderField(game.Colony()))
	ui.printf("\n%s\n%s\n\n", ui.RenderStatus(game), ui.RenderAnts(game.Colony()))
}

// RenderField draws the tunnels of the colony, one per row, starting from the origin on the left.
// Bees enter from the right.
func (ui *UI) RenderField(c *Colony) string {
	origin := c.Site(c.Origin())
	rows := []string{fmt.Sprintf("%s: %s", origin.Name, ui.renderBees(origin))}
	for tunnel := range c.NumTunnels() {
		cells := []string{labelStyle.Render(fmt.Sprintf("%d", tunnel))}
		for _, id := range c.Tunnel(tunnel) {
			cells = append(cells, ui.renderSite(c, c.Site(id)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (ui *UI) renderSite(c *Colony, site *Site) string {
	location := fmt.Sprintf("%d,%d", site.Tunnel, site.Step)
	style := cellStyle
	if site.Water {
		location = "~" + location + "~"
		if ui.color {
			style = style.BorderForeground(waterColor)
		}
	}
	if ui.color && site.ID == c.LeaderSite() {
		style = style.BorderForeground(leaderColor)
	}
	lines := []string{location, ui.renderAnt(site.Ant()), ui.renderBees(site)}
	return style.Render(strings.Join(lines, "\n"))
}

// renderAnt returns the letter of the ant, followed by the letter of the ant it holds, if any.
func (ui *UI) renderAnt(ant *Unit) string {
	if ant == nil {
		return ""
	}
	text := ant.Kind().Letter()
	if held := ant.Contained(); held != nil {
		text = fmt.Sprintf("%s(%s)", text, held.Kind().Letter())
	}
	return ui.style(antColor).Render(text)
}

func (ui *UI) renderBees(site *Site) string {
	switch n := site.NumBees(); n {
	case 0:
		return ""
	case 1:
		return ui.style(beeColor).Render("B")
	default:
		return ui.style(beeColor).Render(fmt.Sprintf("Bx%d", n))
	}
}

// RenderStatus returns a one line summary of the game.
func (ui *UI) RenderStatus(game *Game) string {
	c, h := game.Colony(), game.Hive()
	next := "none"
	if waves := h.Waves(); len(waves) > 0 {
		next = fmt.Sprintf("%d bees after turn %d", waves[0].Count, waves[0].Turn)
	}
	return fmt.Sprintf("Food: %d    Bees on the field: %d    In the hive: %d    Next wave: %s",
		c.Food(), len(c.AllAttackers()), len(h.Bees()), next)
}

// RenderAnts lists the ants and their cost. The ones the colony can't afford are faint.
func (ui *UI) RenderAnts(c *Colony) string {
	parts := make([]string, 0, len(Ants))
	for _, kind := range Ants {
		text := fmt.Sprintf("%s[%s]=%d", kind, kind.Letter(), kind.Stats().FoodCost)
		if ui.color && kind.Stats().FoodCost > c.Food() {
			text = lipgloss.NewStyle().Faint(true).Render(text)
		}
		parts = append(parts, text)
	}
	return "Ants: " + strings.Join(parts, " ")
}
