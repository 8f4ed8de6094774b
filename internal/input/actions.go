package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/app"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Window management
	d.Register(config.ActionNewWindow, handleNewWindow)
	d.Register(config.ActionOpenFile, handleOpenFile)
	d.Register(config.ActionSaveFile, handleSaveFile)
	d.Register(config.ActionCloseWindow, handleCloseWindow)
	d.Register(config.ActionMinimizeWindow, handleMinimizeWindow)
	d.Register(config.ActionRestoreAll, handleRestoreAll)
	d.Register(config.ActionNextTab, makeCycleTabsHandler(1))
	d.Register(config.ActionPrevTab, makeCycleTabsHandler(-1))

	// Canvas
	d.Register(config.ActionZoomIn, makeZoomHandler(1))
	d.Register(config.ActionZoomOut, makeZoomHandler(-1))
	d.Register(config.ActionZoomReset, makeZoomHandler(0))
	d.Register(config.ActionPanUp, makePanHandler(0, -1))
	d.Register(config.ActionPanDown, makePanHandler(0, 1))
	d.Register(config.ActionPanLeft, makePanHandler(-1, 0))
	d.Register(config.ActionPanRight, makePanHandler(1, 0))

	// Window movement
	d.Register(config.ActionMoveUp, makeMoveHandler(0, -1))
	d.Register(config.ActionMoveDown, makeMoveHandler(0, 1))
	d.Register(config.ActionMoveLeft, makeMoveHandler(-1, 0))
	d.Register(config.ActionMoveRight, makeMoveHandler(1, 0))

	// Modes
	d.Register(config.ActionEnterEditMode, handleEnterEditMode)
	d.Register(config.ActionToggleHelp, handleToggleHelp)
	d.Register(config.ActionToggleLogs, handleToggleLogs)
	d.Register(config.ActionQuit, handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, o *app.Desktop) (*app.Desktop, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		o.Logger.Debug("action", "name", action, "key", msg.String())
		return handler(msg, o)
	}
	return o, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Window Management Action Handlers
// ============================================================================

func handleNewWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.OpenPrompt(app.PromptNewFile)
	return d, nil
}

func handleOpenFile(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.OpenPrompt(app.PromptOpenFile)
	return d, nil
}

func handleSaveFile(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.RequestSave()
	return d, nil
}

func handleCloseWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.CloseActive()
	return d, nil
}

func handleMinimizeWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.MinimizeActive()
	return d, nil
}

func handleRestoreAll(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if n := d.RestoreAll(); n > 0 {
		d.LogInfo("Restored %d window(s)", n)
	}
	return d, nil
}

func makeCycleTabsHandler(delta int) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.Canvas.CycleTabs(delta)
		return d, nil
	}
}

// ============================================================================
// Canvas Action Handlers
// ============================================================================

func makeZoomHandler(direction int) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.ZoomCenter(direction)
		return d, nil
	}
}

func makePanHandler(dx, dy int) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.PanView(dx, dy)
		return d, nil
	}
}

func makeMoveHandler(dx, dy int) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.MoveActive(dx, dy)
		return d, nil
	}
}

// ============================================================================
// Mode Action Handlers
// ============================================================================

func handleEnterEditMode(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.EnterEditMode()
	return d, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ShowHelp = !d.ShowHelp
	if d.ShowHelp {
		d.HelpScrollOffset = 0
	}
	return d, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	wasShowing := d.ShowLogs
	d.ShowLogs = !d.ShowLogs
	if d.ShowLogs && !wasShowing {
		d.LogInfo("Log viewer opened")
		_, maxScroll := app.LogScrollBounds(d.Height, len(d.LogMessages))
		d.LogScrollOffset = maxScroll
	}
	return d, nil
}

func handleQuit(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.ShowHelp {
		d.ShowHelp = false
		return d, nil
	}
	d.Cleanup()
	return d, tea.Quit
}
