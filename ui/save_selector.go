package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lxhmsk/fallout-3-save-analyzer/ds"
	"github.com/lxhmsk/fallout-3-save-analyzer/watcher"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	DirStateCorrect   = "correct"
	DirStateIncorrect = "incorrect"
	DirStateBlank     = ""
)

type (
	SaveSelector struct {
		dir      string
		dirState string
		saves    []string
		cursor   int
		err      error
	}
	// saveSelectedMsg asks the app to load the save at path.
	saveSelectedMsg struct {
		path string
	}
)

// ListSaves lists the save files of dir, newest first.
func ListSaves(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "ListSaves error")
	}
	type save struct {
		name    string
		modTime int64
	}
	saves := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (save, bool) {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), watcher.SaveExtension) {
			return save{}, false
		}
		info, err := entry.Info()
		if err != nil {
			return save{}, false
		}
		return save{name: entry.Name(), modTime: info.ModTime().UnixNano()}, true
	})
	sort.SliceStable(saves, func(i, j int) bool { return saves[i].modTime > saves[j].modTime })
	return lo.Map(saves, func(s save, _ int) string { return s.name }), nil
}

func NewSaveSelector(dir string) SaveSelector {
	selector := SaveSelector{dir: dir, dirState: DirStateBlank}
	if dir == "" {
		return selector
	}
	selector.saves, selector.err = ListSaves(dir)
	if len(selector.saves) > 0 {
		selector.dirState = DirStateCorrect
	} else {
		selector.dirState = DirStateIncorrect
	}
	return selector
}

func (s SaveSelector) Selected() string {
	if len(s.saves) == 0 {
		return ""
	}
	return filepath.Join(s.dir, s.saves[s.cursor])
}

func (s SaveSelector) View() string {
	output := "FALLOUT 3 SAVE ANALYZER\n\n"
	output += "Saves directory: " + s.dir + "\n"

	switch s.dirState {
	case DirStateIncorrect, DirStateBlank:
		output += "Please choose the correct saves directory with --dir or the settings file\n"
	case DirStateCorrect:
		output += "Looks like a valid saves directory\n\n"
		for i, name := range s.saves {
			output += lo.Ternary(i == s.cursor, "> ", "  ") + name + "\n"
		}
		output += "\nup/down: move  enter: open  q: quit\n"
	default:
		output += ds.ErrUnreachableCode{Caller: "SaveSelector.View"}.Error() + "\n"
	}
	if s.err != nil {
		output += "\nError: " + s.err.Error() + "\n"
	}
	return output
}

func (s SaveSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.saves)-1 {
			s.cursor++
		}
	case "enter":
		if path := s.Selected(); path != "" {
			return s, func() tea.Msg { return saveSelectedMsg{path: path} }
		}
	}
	return s, nil
}

func (s SaveSelector) Init() tea.Cmd {
	return nil
}
