package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/app"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/files"
	"github.com/Gaurav-Gosain/tuicanvas/internal/input"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log"
)

// filterMouseMotion drops pointer motion unless a drag, pan or resize is in
// progress.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}
	if d.Router.Busy() {
		return msg
	}
	return nil
}

// newLogger returns a debug logger writing to the state directory, or a
// discarding logger when debug mode is off. The returned closer is never nil.
func newLogger() (*log.Logger, io.Closer, error) {
	if !debugMode {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	path, err := xdg.StateFile("tuicanvas/debug.log")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get log path: %w", err)
	}
	// #nosec G304 - path is built from the XDG state directory
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	fmt.Printf("Debug log: %s\n", path)
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "tuicanvas",
	})
	return logger, f, nil
}

func runLocal(paths []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		stdlog.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:         asciiOnly,
		BorderStyle:       borderStyle,
		TabPosition:       tabPosition,
		HideWindowButtons: hideWindowButtons,
		DropDir:           dropDir,
		SaveDir:           saveDir,
		Scale:             initialScale,
		ThemeName:         themeName,
	}, userConfig)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("starting", "config", configPath, "version", version, "files", len(paths))
	}

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	if config.UseASCIIOnly {
		profile = colorprofile.Ascii
	}

	app.SetInputHandler(input.HandleInput)

	desktop := app.NewDesktop(app.Options{
		Config:  userConfig,
		Logger:  logger,
		Profile: profile,
		SaveDir: config.SaveDir,
		Files:   paths,
	})

	p := tea.NewProgram(
		desktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.DropDir != "" {
		err := files.WatchDropDir(ctx, config.DropDir, config.DropDebounce,
			func(doc files.Document) { p.Send(app.FileDroppedMsg{Doc: doc}) },
			func(err error) { p.Send(app.DropErrorMsg{Err: err}) },
		)
		if err != nil {
			stdlog.Printf("Warning: drop folder disabled: %v", err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	finalModel, err := p.Run()

	if final, ok := finalModel.(*app.Desktop); ok {
		final.Cleanup()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
