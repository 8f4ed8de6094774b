package app

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

func (d *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	layers = append(layers, d.renderTabStrip()...)

	if d.Canvas.Len() == 0 {
		layers = append(layers, d.renderWelcome())
	}

	if d.ShowHelp {
		layers = append(layers, lipgloss.NewLayer(d.RenderHelpMenu(d.Width, d.Height)).
			X(0).Y(0).Z(config.ZIndexOverlay).ID("help"))
	}

	if d.ShowLogs {
		layers = append(layers, lipgloss.NewLayer(d.renderLogViewer()).
			X(0).Y(0).Z(config.ZIndexOverlay).ID("logs"))
	}

	if d.Prompt != nil {
		box := d.renderPrompt()
		x := max((d.Width-lipgloss.Width(box))/2, 0)
		y := max((d.Height-lipgloss.Height(box))/2, 0)
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(config.ZIndexOverlay+1).ID("prompt"))
	}

	layers = append(layers, d.renderNotifications()...)
	return layers
}

// renderTabStrip draws one entry per window and the mode badge. With the
// strip hidden only the badge is drawn, in the bottom-right corner.
func (d *Desktop) renderTabStrip() []*lipgloss.Layer {
	badge := d.renderModeBadge()
	badgeWidth := lipgloss.Width(badge)

	row := d.TabStripRow()
	if row < 0 {
		return []*lipgloss.Layer{lipgloss.NewLayer(badge).
			X(max(d.Width-badgeWidth, 0)).Y(max(d.Height-1, 0)).
			Z(config.ZIndexTabStrip).ID("mode")}
	}

	bg := theme.TabStripBg()
	base := lipgloss.NewStyle().Background(bg)
	sep := base.Foreground(theme.TabMinimized()).Render(config.GetTabSeparator())

	var sb strings.Builder
	for i, span := range d.TabLayout() {
		if i > 0 {
			sb.WriteString(sep)
		}
		style := base.Foreground(theme.TabInactive())
		switch span.State {
		case canvas.TabActive:
			style = base.Foreground(theme.TabActive()).Bold(true).Underline(true)
		case canvas.TabMinimized:
			style = base.Foreground(theme.TabMinimized()).Italic(true)
		}
		sb.WriteString(style.Render(span.Label))
	}

	tabs := ansi.Truncate(sb.String(), max(d.Width-badgeWidth, 0), "")
	fill := max(d.Width-lipgloss.Width(tabs)-badgeWidth, 0)
	strip := tabs + base.Render(strings.Repeat(" ", fill)) + badge

	return []*lipgloss.Layer{lipgloss.NewLayer(strip).
		X(0).Y(row).Z(config.ZIndexTabStrip).ID("tabstrip")}
}

// renderModeBadge shows the interaction mode and the zoom level.
func (d *Desktop) renderModeBadge() string {
	var bg color.Color = theme.ModeCanvas()
	label := d.Mode.String()
	switch {
	case d.Prompt != nil:
		bg = lipgloss.Color(config.ModeColorPrompt)
		label = "PROMPT"
	case d.Mode == EditMode:
		bg = theme.ModeEdit()
	}
	mode := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(label)
	zoom := lipgloss.NewStyle().
		Foreground(theme.TabInactive()).
		Background(theme.TabStripBg()).
		Padding(0, 1).
		Render(d.zoomLabel())
	return zoom + mode
}

func (d *Desktop) renderWelcome() *lipgloss.Layer {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Bold(true).
		Render("tuicanvas")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Render("Zoomable canvas of text and image windows")

	hint := func(action, what string) string {
		keys := d.Keybinds.GetKeys(action)
		if len(keys) == 0 {
			return ""
		}
		return fmt.Sprintf("'%s' %s", keys[0], what)
	}
	var hints []string
	for _, h := range []string{
		hint(config.ActionNewWindow, "new window"),
		hint(config.ActionOpenFile, "open a file"),
		hint(config.ActionToggleHelp, "help"),
	} {
		if h != "" {
			hints = append(hints, h)
		}
	}
	instruction := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7")).
		Render("Press " + strings.Join(hints, ", "))

	body := lipgloss.JoinVertical(lipgloss.Center, title, "", subtitle, "", instruction)
	if config.DropDir != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "",
			lipgloss.NewStyle().Foreground(theme.HelpGray()).Render("or drop files into "+config.DropDir))
	}

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(1, 2).
		Render(body)

	top := d.CanvasTop()
	centered := lipgloss.Place(d.Width, d.CanvasRows(), lipgloss.Center, lipgloss.Center, box)
	return lipgloss.NewLayer(centered).X(0).Y(top).Z(config.ZIndexWindows - 1).ID("welcome")
}

// RenderHelpMenu renders the keybinding overlay centered in a width x height area.
func (d *Desktop) RenderHelpMenu(width, height int) string {
	sections := config.GetKeybindings(d.Keybinds)

	titleStyle := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	keyWidth := 0
	for _, s := range sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Key))
		}
	}
	keyWidth = min(keyWidth, 24)

	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(s.Title))
		for _, b := range s.Bindings {
			key := ansi.Truncate(b.Key, keyWidth, "…")
			pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(key)+2)
			lines = append(lines, keyStyle.Render(key)+pad+descStyle.Render(b.Description))
		}
	}

	perPage := max(height-8, 4)
	maxScroll := max(len(lines)-perPage, 0)
	d.HelpScrollOffset = max(0, min(d.HelpScrollOffset, maxScroll))
	visible := lines[d.HelpScrollOffset:min(d.HelpScrollOffset+perPage, len(lines))]

	footer := "Press '?'/'esc' to close"
	if maxScroll > 0 {
		footer += ", j/k to scroll"
	}
	visible = append(visible, "", descStyle.Render(footer))

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(strings.Join(visible, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (d *Desktop) renderLogViewer() string {
	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("Logs")

	logsPerPage, maxScroll := LogScrollBounds(d.Height, len(d.LogMessages))
	d.LogScrollOffset = max(0, min(d.LogScrollOffset, maxScroll))

	lines := []string{logTitle, ""}
	start := d.LogScrollOffset
	shown := 0
	for i := start; i < len(d.LogMessages) && shown < logsPerPage; i++ {
		msg := d.LogMessages[i]

		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}
		level := lipgloss.NewStyle().Foreground(levelColor).Render("[" + msg.Level + "]")

		line := fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), level, msg.Message)
		lines = append(lines, ansi.Truncate(line, config.LogViewerWidth-6, "…"))
		shown++
	}

	dim := lipgloss.NewStyle().Foreground(theme.HelpGray())
	if maxScroll > 0 {
		lines = append(lines, "", dim.Render(fmt.Sprintf("Showing %d-%d of %d logs",
			start+1, start+shown, len(d.LogMessages))))
	}
	lines = append(lines, "", dim.Render("Press 'q'/'esc' to exit, j/k or ↑/↓ to scroll"))

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2).
		Width(config.LogViewerWidth).
		Background(theme.LogViewerBg()).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, box)
}

func (d *Desktop) renderPrompt() string {
	width := min(config.PromptWidth, max(d.Width-4, 10))
	inner := width - 6

	label := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true).
		Render(ansi.Truncate(d.Prompt.Label, inner, "…"))

	// Keep the tail of long input visible.
	input := d.Prompt.Buffer + "█"
	if over := ansi.StringWidth(input) - inner; over > 0 {
		input = ansi.TruncateLeft(input, over, "…")
	}

	hint := lipgloss.NewStyle().Foreground(theme.HelpGray()).Render("enter to confirm, esc to cancel")

	return lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color(config.ModeColorPrompt)).
		Padding(0, 2).
		Width(width).
		Render(strings.Join([]string{label, input, "", hint}, "\n"))
}

func (d *Desktop) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := d.CanvasTop() + 1
	for i, notif := range d.Notifications {
		if i >= config.MaxVisibleNotifications {
			break
		}

		var bg color.Color
		var icon string
		switch notif.Type {
		case "error":
			bg, icon = theme.NotificationError(), config.NotificationIconError
		case "warning":
			bg, icon = theme.NotificationWarning(), config.NotificationIconWarning
		case "success":
			bg, icon = theme.NotificationSuccess(), config.NotificationIconSuccess
		default:
			bg, icon = theme.NotificationInfo(), config.NotificationIconInfo
		}

		maxWidth := min(max(d.Width-8, 20), config.MaxNotificationWidth)
		message := ansi.Truncate(notif.Message, maxWidth-10, "...")

		box := lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(1, 2).
			Bold(true).
			MaxWidth(maxWidth).
			Render(fmt.Sprintf(" %s  %s ", icon, message))

		x := max(d.Width-lipgloss.Width(box)-config.NotificationMargin, 0)
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(config.ZIndexNotifications).ID("notif-"+notif.ID))
		y += lipgloss.Height(box) + 1
	}
	return layers
}
