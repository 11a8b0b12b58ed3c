package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/whohasphone/internal/config"
	"github.com/jask/whohasphone/internal/controller"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type dialogField int

const (
	fieldName dialogField = iota
	fieldAge
	fieldPhone
	fieldSubmit
	fieldCount
)

// App is the bubbletea model for the people list and its add dialog.
type App struct {
	ctl     *controller.Controller
	theme   string // preference: system, dark or light
	hasDark func() bool
	styles  Styles

	listKeys   listKeys
	dialogKeys dialogKeys
	help       help.Model
	name       textinput.Model
	focus      dialogField

	cursor int
	offset int
	width  int
	height int
	status string
}

// Option customizes an App.
type Option func(*App)

// WithDarkBackgroundProbe replaces the terminal background query used by
// the system theme.
func WithDarkBackgroundProbe(fn func() bool) Option {
	return func(a *App) { a.hasDark = fn }
}

func New(ctl *controller.Controller, theme string, opts ...Option) *App {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Name"
	name.CharLimit = 0
	name.Width = 28

	a := &App{
		ctl:        ctl,
		theme:      config.NormalizeTheme(theme),
		hasDark:    lipgloss.HasDarkBackground,
		listKeys:   newListKeys(),
		dialogKeys: newDialogKeys(),
		help:       help.New(),
		name:       name,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.applyTheme()
	if ctl.DialogOpen() {
		a.openDialog()
	}
	return a
}

// Theme returns the current theme preference.
func (a *App) Theme() string { return a.theme }

func (a *App) Init() tea.Cmd {
	if a.ctl.DialogOpen() {
		return textinput.Blink
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.clampCursor()
		return a, nil
	case tea.KeyMsg:
		if a.ctl.DialogOpen() {
			return a.handleDialogKey(m)
		}
		return a.handleListKey(m)
	}
	if a.ctl.DialogOpen() && a.focus == fieldName {
		var cmd tea.Cmd
		a.name, cmd = a.name.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.listKeys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.listKeys.Add):
		a.ctl.OpenDialog()
		return a, a.openDialog()
	case key.Matches(m, a.listKeys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		a.clampCursor()
	case key.Matches(m, a.listKeys.Down):
		a.cursor++
		a.clampCursor()
	case key.Matches(m, a.listKeys.Delete):
		a.deleteSelected()
	case key.Matches(m, a.listKeys.Theme):
		a.theme = config.NextTheme(a.theme)
		a.applyTheme()
		a.status = "theme: " + a.theme
	}
	return a, nil
}

func (a *App) handleDialogKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.dialogKeys.Quit):
		a.ctl.Cancel()
		return a, tea.Quit
	case key.Matches(m, a.dialogKeys.Cancel):
		a.ctl.Cancel()
		a.closeDialog()
		a.status = "add cancelled"
		return a, nil
	case key.Matches(m, a.dialogKeys.Submit):
		return a, a.submit()
	case key.Matches(m, a.dialogKeys.Next):
		return a, a.setFocus((a.focus + 1) % fieldCount)
	case key.Matches(m, a.dialogKeys.Prev):
		return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
	}

	switch a.focus {
	case fieldName:
		var cmd tea.Cmd
		a.name, cmd = a.name.Update(m)
		a.ctl.SetName(a.name.Value())
		return a, cmd
	case fieldAge:
		switch {
		case key.Matches(m, a.dialogKeys.AgeDown):
			a.ctl.StepAge(-1)
		case key.Matches(m, a.dialogKeys.AgeUp):
			a.ctl.StepAge(1)
		}
	case fieldPhone:
		if key.Matches(m, a.dialogKeys.Toggle) {
			a.ctl.ToggleHasPhone()
		}
	case fieldSubmit:
		if key.Matches(m, a.dialogKeys.Toggle) {
			return a, a.submit()
		}
	}
	return a, nil
}

func (a *App) submit() tea.Cmd {
	draft := *a.ctl.Draft()
	if !a.ctl.Submit() {
		return nil
	}
	a.closeDialog()
	a.cursor = len(a.ctl.People()) - 1
	a.clampCursor()
	a.status = fmt.Sprintf("added %s", draft.Label())
	return nil
}

func (a *App) deleteSelected() {
	snapshot := a.ctl.People()
	if a.cursor < 0 || a.cursor >= len(snapshot) {
		a.status = "nothing to delete"
		return
	}
	target := snapshot[a.cursor]
	if a.ctl.Delete(target) {
		a.status = fmt.Sprintf("removed %s", target.Label())
	} else {
		a.status = "not found"
	}
	a.clampCursor()
}

func (a *App) openDialog() tea.Cmd {
	a.name.SetValue(a.ctl.Draft().Name)
	a.name.CursorEnd()
	return a.setFocus(fieldName)
}

func (a *App) closeDialog() {
	a.name.Blur()
	a.name.SetValue("")
	a.focus = fieldName
}

func (a *App) setFocus(f dialogField) tea.Cmd {
	a.focus = f
	if f == fieldName {
		return a.name.Focus()
	}
	a.name.Blur()
	return nil
}

func (a *App) applyTheme() {
	p := paletteFor(resolveTheme(a.theme, a.hasDark))
	a.styles = newStyles(p)
	a.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(p.Accent)
	a.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(p.Subtle)
	a.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(p.Border)
	a.name.TextStyle = lipgloss.NewStyle().Foreground(p.Text)
	a.name.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Subtle)
}

// clampCursor keeps the selection inside the list and scrolled into view.
func (a *App) clampCursor() {
	n := len(a.ctl.People())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	visible := a.visibleCards()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+visible {
		a.offset = a.cursor - visible + 1
	}
	if a.offset > max(n-visible, 0) {
		a.offset = max(n-visible, 0)
	}
	if a.offset < 0 {
		a.offset = 0
	}
}
