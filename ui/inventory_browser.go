package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lxhmsk/fallout-3-save-analyzer/analysis"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/lxhmsk/fallout-3-save-analyzer/settings"
	"github.com/samber/lo"
)

type (
	InventoryBrowser struct {
		saveName string
		game     *game.Game
		settings *settings.Settings
		// onSettingsChanged persists the settings after a pin is toggled
		onSettingsChanged func(*settings.Settings) error
		rows              []*game.ItemStack
		drops             map[*game.ItemStack]int
		cursor            int
		status            string
	}
)

const (
	pageSize = 20
)

func NewInventoryBrowser(
	saveName string,
	loaded *game.Game,
	current *settings.Settings,
	onSettingsChanged func(*settings.Settings) error,
) InventoryBrowser {
	browser := InventoryBrowser{
		saveName:          saveName,
		game:              loaded,
		settings:          current,
		onSettingsChanged: onSettingsChanged,
		drops:             map[*game.ItemStack]int{},
	}
	browser.refreshRows()
	return browser
}

func (s *InventoryBrowser) refreshRows() {
	show := s.settings.ShowPredicate()
	s.rows = lo.Filter(s.game.Inventory.Stacks(), func(stack *game.ItemStack, _ int) bool {
		return show(stack)
	})
	if s.cursor >= len(s.rows) {
		s.cursor = lo.Max([]int{len(s.rows) - 1, 0})
	}
}

func (s InventoryBrowser) Drops() []analysis.Drop {
	return lo.FilterMap(s.game.Inventory.Stacks(), func(stack *game.ItemStack, _ int) (analysis.Drop, bool) {
		count, ok := s.drops[stack]
		return analysis.Drop{ItemStack: stack, Count: count}, ok && count > 0
	})
}

func (s *InventoryBrowser) calculateDrops() {
	drops := analysis.OptimizeDrops(
		s.game.Inventory,
		s.game.CarryWeight(),
		analysis.AlwaysPinnedFormIDs,
		s.settings.DropPredicate(),
	)
	s.drops = map[*game.ItemStack]int{}
	for _, drop := range drops {
		s.drops[drop.ItemStack] = drop.Count
	}
	s.status = fmt.Sprintf(
		"%d items to drop, weight %.1f, value %d",
		analysis.TotalCount(drops), analysis.TotalWeight(drops), analysis.TotalSellValue(drops),
	)
}

func (s *InventoryBrowser) togglePin() {
	if len(s.rows) == 0 {
		return
	}
	formID := s.rows[s.cursor].FormID
	if _, ok := analysis.AlwaysPinnedFormIDs[formID]; ok {
		s.status = "quest items are always pinned"
		return
	}
	pinned, err := s.settings.PinnedFormIDs()
	if err != nil {
		pinned = map[dformid.FormID]struct{}{}
	}
	if _, ok := pinned[formID]; ok {
		delete(pinned, formID)
	} else {
		pinned[formID] = struct{}{}
	}
	if s.settings.SetPinnedFormIDs(pinned) && s.onSettingsChanged != nil {
		if err := s.onSettingsChanged(s.settings); err != nil {
			s.status = "saving settings failed: " + err.Error()
			return
		}
	}
	s.refreshRows()
	if len(s.drops) > 0 {
		s.calculateDrops()
	}
}

func (s *InventoryBrowser) writeScript() {
	script := analysis.GenerateDropScript(s.saveName, s.game.Inventory, s.Drops())
	path := filepath.Join(s.settings.Fallout3Directory, analysis.ScriptFileName)
	if err := os.WriteFile(path, []byte(script.Script), 0644); err != nil {
		s.status = "writing drop script failed: " + err.Error()
		return
	}
	s.status = "wrote " + path
	if len(script.Undroppable) > 0 {
		s.status += fmt.Sprintf(", %d drops cannot be scripted", len(script.Undroppable))
	}
}

func (s InventoryBrowser) View() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%s (level %d)\n", s.game.Name(), s.game.Save.Header.Level))
	sb.WriteString(fmt.Sprintf(
		"Weight %.1f / %d, value %d\n\n",
		s.game.Inventory.TotalWeight(), s.game.CarryWeight(), s.game.Inventory.TotalSellValue(),
	))
	sb.WriteString(fmt.Sprintf(
		"  %-8s %-4s %-32s %5s %6s %6s %7s %4s\n",
		"form id", "type", "description", "count", "weight", "value", "cond", "drop",
	))

	start := lo.Max([]int{0, s.cursor - pageSize + 1})
	end := lo.Min([]int{len(s.rows), start + pageSize})
	for i := start; i < end; i++ {
		stack := s.rows[i]
		flags := ""
		if stack.Equipped {
			flags += "E"
		}
		if stack.Hotkey != nil {
			flags += fmt.Sprintf("H%d", *stack.Hotkey)
		}
		if s.settings.IsPinned(stack.FormID) {
			flags += "P"
		}
		drop := ""
		if count, ok := s.drops[stack]; ok {
			drop = fmt.Sprintf("%d", count)
		}
		sb.WriteString(fmt.Sprintf(
			"%s %s %-4s %-32s %5d %6.1f %6d %6.0f%% %4s %s\n",
			lo.Ternary(i == s.cursor, ">", " "),
			stack.FormID, stack.Type, stack.Description, stack.Count, stack.Weight,
			stack.SellValue, stack.ConditionPercent*100, drop, flags,
		))
	}

	sb.WriteString("\nup/down: move  d: calculate drops  p: pin  w: write drop script  esc: back  q: quit\n")
	if s.status != "" {
		sb.WriteString(s.status + "\n")
	}
	return sb.String()
}

func (s InventoryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "d":
		s.calculateDrops()
	case "p":
		s.togglePin()
	case "w":
		s.writeScript()
	}
	return s, nil
}

func (s InventoryBrowser) Init() tea.Cmd {
	return nil
}
