package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/whohasphone/internal/people"
)

const (
	headerLines = 4 // menu bar, hint, heading, rule
	footerLines = 2 // status, help
	cardHeight  = 7
	cardWidth   = 48
	modalWidth  = 44
)

func (a *App) visibleCards() int {
	return max((a.height-headerLines-footerLines)/cardHeight, 1)
}

func (a *App) View() string {
	sections := []string{
		a.renderMenuBar(),
		a.styles.Hint.Render(a.hint()),
		a.styles.Heading.Render("People"),
		a.styles.Rule.Render(strings.Repeat("─", max(min(a.width, cardWidth), 1))),
		a.renderList(),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	body = lipgloss.PlaceVertical(a.height-footerLines, lipgloss.Top, body)

	var helpView string
	if a.ctl.DialogOpen() {
		helpView = a.help.View(a.dialogKeys)
	} else {
		helpView = a.help.View(a.listKeys)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatus(), helpView)

	if a.ctl.DialogOpen() {
		view = overlayCenter(view, a.renderDialog(), a.width, a.height)
	}
	return view
}

func (a *App) renderMenuBar() string {
	item := a.styles.MenuItem.Render
	left := a.styles.Bar.Render(" ") + item("Add") + a.styles.Bar.Render(" [a]") +
		a.styles.Bar.Render("   Options: ") + item("Quit") + a.styles.Bar.Render(" [q]")
	right := a.styles.Bar.Render("Theme: ") + item(a.theme) + a.styles.Bar.Render(" [t] ")
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + a.styles.Bar.Render(strings.Repeat(" ", gap)) + right
}

// hint stands in for hover text: it describes whatever is focused.
func (a *App) hint() string {
	if a.ctl.DialogOpen() {
		switch a.focus {
		case fieldName:
			return "Person's name"
		case fieldAge:
			return "Person's age in years"
		case fieldPhone:
			return "Does this person have a phone?"
		default:
			return "Add this person to the records"
		}
	}
	list := a.ctl.People()
	if len(list) == 0 || a.cursor >= len(list) {
		return "Press a to add another person to the records."
	}
	if list[a.cursor].HasPhone {
		return "Person has a phone. Press d to remove."
	}
	return "Person does not have a phone. Press d to remove."
}

func (a *App) renderList() string {
	list := a.ctl.People()
	if len(list) == 0 {
		return a.styles.Label.Render("No people yet.")
	}
	end := min(a.offset+a.visibleCards(), len(list))
	cards := make([]string, 0, end-a.offset)
	for i := a.offset; i < end; i++ {
		cards = append(cards, a.renderCard(list[i], i == a.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (a *App) renderCard(p people.Person, selected bool) string {
	width := max(min(a.width, cardWidth)-4, 10)
	phone := a.styles.No.Render("No")
	if p.HasPhone {
		phone = a.styles.Yes.Render("Yes")
	}
	del := a.styles.Button.Render("[ Delete ]")
	style := a.styles.Card
	if selected {
		del = a.styles.ButtonHot.Render("[ Delete ]") + a.styles.Label.Render(" d")
		style = a.styles.CardActive
	}
	lines := []string{
		a.styles.Name.Render(truncate(p.Label(), width)),
		a.styles.Rule.Render(strings.Repeat("─", width)),
		a.styles.Label.Render("Age: ") + a.styles.Value.Render(strconv.Itoa(p.Age)),
		a.styles.Label.Render("Has Phone: ") + phone,
		del,
	}
	return style.Width(width + 2).Render(strings.Join(lines, "\n"))
}

func (a *App) renderStatus() string {
	n := len(a.ctl.People())
	pos := ""
	if n > 0 {
		pos = fmt.Sprintf("%d/%d", a.cursor+1, n)
	}
	line := pos
	if a.status != "" {
		if line != "" {
			line += "  "
		}
		line += a.status
	}
	return a.styles.Status.Render(line)
}

func (a *App) renderDialog() string {
	d := a.ctl.Draft()
	field := func(f dialogField, s string) string {
		if a.focus == f {
			return a.styles.FieldHot.Render(s)
		}
		return a.styles.Field.Render(s)
	}

	check := "[ ]"
	if d.HasPhone {
		check = "[x]"
	}
	lines := []string{
		a.styles.Heading.Render("Add Person"),
		"",
		field(fieldName, "Name: ") + a.name.View(),
		field(fieldAge, fmt.Sprintf("Age:  ‹ %2d ›", d.Age)),
		field(fieldPhone, check+" Has a Phone?"),
		"",
		field(fieldSubmit, "[ Submit ]"),
	}
	return a.styles.Modal.Width(modalWidth).Render(strings.Join(lines, "\n"))
}

// truncate shortens s to width cells, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
