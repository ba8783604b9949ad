package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/guard"
)

// View renders the current view (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("⚔ Warfront"))
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n\n")

	if m.notice != "" {
		style := m.styles.Success
		if m.noticeIsErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n\n")
	}

	switch m.view {
	case guard.ViewHome:
		b.WriteString(m.renderHome())
	case guard.ViewLeaderboard:
		b.WriteString(m.renderLeaderboard())
	case guard.ViewArmies:
		b.WriteString(m.renderArmies())
	case guard.ViewBattle:
		b.WriteString(m.renderBattle())
	case guard.ViewLogin:
		b.WriteString(m.styles.Subtitle.Render("Log in"))
		b.WriteString("\n")
		if m.loginForm != nil {
			b.WriteString(m.loginForm.View())
		}
	case guard.ViewSignup:
		b.WriteString(m.styles.Subtitle.Render("Sign up"))
		b.WriteString("\n")
		if m.signupForm != nil {
			b.WriteString(m.signupForm.View())
		}
	}

	if m.authBusy || m.armyBusy || m.battleBusy {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Muted.Render(" contacting the Warfront API..."))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderNav() string {
	who := "anonymous"
	if sess, ok := m.manager.Current(); ok {
		who = sess.User.Name
	}

	items := []string{
		m.navItem("1", "home", guard.ViewHome),
		m.navItem("2", "leaderboard", guard.ViewLeaderboard),
		m.navItem("3", "armies", guard.ViewArmies),
		m.navItem("4", "battle", guard.ViewBattle),
	}
	return strings.Join(items, "  ") + "   " + m.styles.Muted.Render("commander: "+who)
}

func (m Model) navItem(key, label string, view guard.View) string {
	text := fmt.Sprintf("[%s] %s", key, label)
	if m.view == view {
		return m.styles.Selected.Render(text)
	}
	return m.styles.Muted.Render(text)
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Theater overview"))
	b.WriteString("\n")

	if m.stats == nil {
		// Read failures degrade to a zero display instead of blocking.
		b.WriteString(m.styles.Muted.Render("No stats available yet."))
		return b.String()
	}

	stats := fmt.Sprintf(
		"Commanders  %d\nArmies      %d\nBattles     %d",
		m.stats.TotalPlayers, m.stats.TotalArmies, m.stats.TotalBattles,
	)
	b.WriteString(m.styles.Border.Render(stats))
	return b.String()
}

func (m Model) renderLeaderboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Leaderboard"))
	b.WriteString("\n")

	if len(m.players) == 0 {
		b.WriteString(m.styles.Muted.Render("No commanders ranked yet."))
		return b.String()
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Commander", Width: 20},
		{Title: "Wins", Width: 6},
		{Title: "Losses", Width: 8},
		{Title: "Battles", Width: 8},
	}
	rows := make([]table.Row, len(m.players))
	for i, p := range m.players {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			p.Name,
			fmt.Sprintf("%d", p.Wins),
			fmt.Sprintf("%d", p.Losses),
			fmt.Sprintf("%d", p.TotalBattles),
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(min(len(rows)+1, 12)),
	)
	b.WriteString(tbl.View())
	return b.String()
}

func (m Model) renderArmies() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Armies"))
	b.WriteString("\n")
	b.WriteString(m.renderArmyList(nil))

	if m.composing {
		b.WriteString("\n\n")
		b.WriteString(m.renderComposer())
	}
	return b.String()
}

// renderArmyList renders the army mirror with the cursor marker; marks, when
// non-nil, maps army ids to an extra slot tag for the battle view.
func (m Model) renderArmyList(marks map[string]string) string {
	armies := m.registry.Armies()
	if len(armies) == 0 {
		return m.styles.Muted.Render("No armies mustered.")
	}

	var b strings.Builder
	for i, army := range armies {
		cursor := "  "
		if i == m.armyCursor {
			cursor = m.styles.Key.Render("> ")
		}
		line := fmt.Sprintf("%s%-20s %2d units  power %d", cursor, army.PlayerName, len(army.Units), army.TotalPower)
		if tag, ok := marks[army.ID]; ok {
			line += "  " + m.styles.Status.Render(tag)
		}
		b.WriteString(line)
		if i < len(armies)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderComposer() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("New army"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Commander: "))
	b.WriteString(m.comp.OwnerName())
	b.WriteString("\n\n")

	pending := m.comp.Units()
	if len(pending) == 0 {
		b.WriteString(m.styles.Muted.Render("No units yet. Recruit with i/t/r/a."))
	} else {
		for i, u := range pending {
			cursor := "  "
			if i == m.pendingCursor {
				cursor = m.styles.Key.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%-20s atk %3d  def %3d  hp %3d  cost %d\n",
				cursor, u.Spec.Name, u.Spec.Attack, u.Spec.Defense, u.Spec.Health, u.Spec.Cost))
		}
		b.WriteString(fmt.Sprintf("\nTotal cost: %d", m.comp.TotalCost()))
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderBattle() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Battle"))
	b.WriteString("\n")

	armyA, armyB := m.orch.Selection()
	marks := map[string]string{}
	if armyA != "" {
		marks[armyA] = "[A]"
	}
	if armyB != "" {
		marks[armyB] = "[B]"
	}
	b.WriteString(m.renderArmyList(marks))

	if result := m.orch.LastResult(); result != nil {
		b.WriteString("\n\n")
		b.WriteString(m.renderResult(result))
	}

	if history := m.orch.History(); len(history) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subtitle.Render("Recent battles"))
		b.WriteString("\n")
		for i, battle := range history {
			if i >= 5 {
				break
			}
			b.WriteString(fmt.Sprintf("%s vs %s — %s\n",
				battle.Army1Name, battle.Army2Name, m.styles.Success.Render(battle.WinnerName+" won")))
		}
	}
	return b.String()
}

func (m Model) renderResult(result *api.Battle) string {
	var b strings.Builder
	b.WriteString(m.styles.Success.Render(fmt.Sprintf("%s is victorious!", result.WinnerName)))
	b.WriteString("\n\n")
	for _, line := range result.BattleLog {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return m.styles.Border.BorderForeground(lipgloss.Color("46")).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderHelp() string {
	var keys string
	switch {
	case m.view == guard.ViewLogin || m.view == guard.ViewSignup:
		keys = "esc back • ctrl+c quit"
	case m.composing:
		keys = "i/t/r/a recruit • ↑/↓ move • x dismiss • enter submit • esc close"
	case m.view == guard.ViewArmies:
		keys = "↑/↓ move • n new army • d disband • r refresh • 1-4 views • o logout • q quit"
	case m.view == guard.ViewBattle:
		keys = "↑/↓ move • a/b select sides • enter engage • r refresh • 1-4 views • q quit"
	default:
		keys = "1-4 views • l login • s signup • o logout • r refresh • q quit"
	}
	return m.styles.Help.Render(keys)
}
