// Package settings persists the user's choices in an ini file of key=value lines.
package settings

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lxhmsk/fallout-3-save-analyzer/analysis"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

type (
	Settings struct {
		WatchSaveDirectory           bool   `ini:"watchSaveDirectory"`
		GenerateAutoDropScriptOnSave bool   `ini:"generateAutoDropScriptOnSave"`
		SavesDirectory               string `ini:"savesDirectory"`
		Fallout3Directory            string `ini:"fallout3Directory"`
		ItemDatabasePath             string `ini:"itemDatabasePath"`

		ShowWeightlessItems bool `ini:"showWeightlessItems"`
		ShowEquippedItems   bool `ini:"showEquippedItems"`
		ShowHotkeyedItems   bool `ini:"showHotkeyedItems"`
		ShowPinnedItems     bool `ini:"showPinnedItems"`

		DropEquippedItems bool `ini:"dropEquippedItems"`
		DropHotkeyedItems bool `ini:"dropHotkeyedItems"`
		DropPinnedItems   bool `ini:"dropPinnedItems"`

		// PinnedFormIDList is a comma separated list of hex form ids, see PinnedFormIDs.
		PinnedFormIDList string `ini:"pinnedFormIds"`
	}
)

const (
	DefaultFileName         = "settings.txt"
	DefaultItemDatabasePath = "items.txt"
)

func Default() Settings {
	return Settings{
		WatchSaveDirectory:           true,
		GenerateAutoDropScriptOnSave: true,
		ItemDatabasePath:             DefaultItemDatabasePath,
		ShowWeightlessItems:          true,
		ShowEquippedItems:            true,
		ShowHotkeyedItems:            true,
		ShowPinnedItems:              true,
	}
}

// Load reads the settings at path over the defaults. A missing file gives the defaults.
func Load(path string) (*Settings, error) {
	settings := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &settings, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "settings.Load error")
	}
	if err := cfg.Section(ini.DefaultSection).MapTo(&settings); err != nil {
		return nil, errors.Wrap(err, "settings.Load error: map")
	}
	if _, err := settings.PinnedFormIDs(); err != nil {
		return nil, errors.Wrap(err, "settings.Load error")
	}
	return &settings, nil
}

func (r *Settings) Save(path string) error {
	cfg := ini.Empty()
	if err := cfg.Section(ini.DefaultSection).ReflectFrom(r); err != nil {
		return errors.Wrap(err, "Settings.Save error: reflect")
	}
	if err := cfg.SaveTo(path); err != nil {
		return errors.Wrap(err, "Settings.Save error")
	}
	return nil
}

func (r *Settings) PinnedFormIDs() (map[dformid.FormID]struct{}, error) {
	pinned := map[dformid.FormID]struct{}{}
	for _, field := range strings.Split(r.PinnedFormIDList, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		formID, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "PinnedFormIDs error: %q", field)
		}
		pinned[dformid.FormID(formID)] = struct{}{}
	}
	return pinned, nil
}

// SetPinnedFormIDs stores the form ids sorted and reports whether the list changed.
func (r *Settings) SetPinnedFormIDs(formIDs map[dformid.FormID]struct{}) bool {
	sorted := lo.Keys(formIDs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	list := strings.Join(lo.Map(sorted, func(formID dformid.FormID, _ int) string {
		return strconv.FormatUint(uint64(formID), 16)
	}), ",")

	changed := list != r.PinnedFormIDList
	r.PinnedFormIDList = list
	return changed
}

func (r *Settings) IsPinned(formID dformid.FormID) bool {
	_, ok := r.pinnedOrEmpty()[formID]
	return ok
}

func (r *Settings) pinnedOrEmpty() map[dformid.FormID]struct{} {
	pinned, err := r.PinnedFormIDs()
	if err != nil {
		return map[dformid.FormID]struct{}{}
	}
	return pinned
}

// DropPredicate keeps equipped, hotkeyed and user pinned stacks out of the drops unless
// the settings allow dropping them.
func (r *Settings) DropPredicate() analysis.Predicate {
	pinned := r.pinnedOrEmpty()
	dropEquipped := r.DropEquippedItems
	dropHotkeyed := r.DropHotkeyedItems
	dropPinned := r.DropPinnedItems
	return func(stack *game.ItemStack) bool {
		_, isPinned := pinned[stack.FormID]
		return (!stack.Equipped || dropEquipped) &&
			(stack.Hotkey == nil || dropHotkeyed) &&
			(!isPinned || dropPinned)
	}
}

// ShowPredicate hides stacks from listings according to the show toggles. Quest items
// count as pinned.
func (r *Settings) ShowPredicate() func(stack *game.ItemStack) bool {
	pinned := lo.Assign(r.pinnedOrEmpty(), analysis.AlwaysPinnedFormIDs)
	showWeightless := r.ShowWeightlessItems
	showEquipped := r.ShowEquippedItems
	showHotkeyed := r.ShowHotkeyedItems
	showPinned := r.ShowPinnedItems
	return func(stack *game.ItemStack) bool {
		_, isPinned := pinned[stack.FormID]
		return (stack.Weight != 0 || showWeightless) &&
			(!stack.Equipped || showEquipped) &&
			(stack.Hotkey == nil || showHotkeyed) &&
			(!isPinned || showPinned)
	}
}
