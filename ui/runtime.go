package ui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/lxhmsk/fallout-3-save-analyzer/settings"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// App starts at the save selector and opens the inventory browser for the chosen save.
	App struct {
		selector     SaveSelector
		browser      *InventoryBrowser
		items        game.ItemLookup
		settings     *settings.Settings
		settingsPath string
		logger       *zap.Logger
		err          error
	}
	saveLoadedMsg struct {
		path   string
		loaded *game.Game
		err    error
	}
)

func NewApp(items game.ItemLookup, current *settings.Settings, settingsPath string, logger *zap.Logger) App {
	return App{
		selector:     NewSaveSelector(current.SavesDirectory),
		items:        items,
		settings:     current,
		settingsPath: settingsPath,
		logger:       logger,
	}
}

func (s App) loadSave(path string) tea.Cmd {
	return func() tea.Msg {
		bs, err := os.ReadFile(path)
		if err != nil {
			return saveLoadedMsg{path: path, err: errors.Wrap(err, "loadSave error")}
		}
		loaded, err := game.Load(bs, s.items, s.logger)
		return saveLoadedMsg{path: path, loaded: loaded, err: err}
	}
}

func (s App) saveSettings(current *settings.Settings) error {
	if s.settingsPath == "" {
		return nil
	}
	return current.Save(s.settingsPath)
}

func (s App) Init() tea.Cmd {
	return nil
}

func (s App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saveSelectedMsg:
		return s, s.loadSave(msg.path)
	case saveLoadedMsg:
		if msg.err != nil {
			s.logger.Error("loading save failed", zap.String("path", msg.path), zap.Error(msg.err))
			s.err = msg.err
			return s, nil
		}
		s.err = nil
		browser := NewInventoryBrowser(filepath.Base(msg.path), msg.loaded, s.settings, s.saveSettings)
		s.browser = &browser
		return s, nil
	case tea.KeyMsg:
		if s.browser != nil && msg.String() == "esc" {
			s.browser = nil
			return s, nil
		}
	}

	if s.browser != nil {
		model, cmd := s.browser.Update(msg)
		browser := model.(InventoryBrowser)
		s.browser = &browser
		return s, cmd
	}
	model, cmd := s.selector.Update(msg)
	s.selector = model.(SaveSelector)
	return s, cmd
}

func (s App) View() string {
	output := ""
	if s.browser != nil {
		output = s.browser.View()
	} else {
		output = s.selector.View()
	}
	if s.err != nil {
		output += "\nError: " + s.err.Error() + "\n"
	}
	return output
}

func Start(app App) error {
	if err := tea.NewProgram(app).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
