package watcher

import (
	"os"
	"path/filepath"

	"github.com/lxhmsk/fallout-3-save-analyzer/analysis"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/lxhmsk/fallout-3-save-analyzer/settings"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AutoDrop loads each save and, when enabled in the settings, writes the drop script
// that gets the player under their carry weight into the game directory.
func AutoDrop(current settings.Settings, items game.ItemLookup, logger *zap.Logger) Handler {
	return func(path string) error {
		bs, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "AutoDrop error")
		}
		loaded, err := game.Load(bs, items, logger)
		if err != nil {
			return errors.Wrapf(err, "AutoDrop error: %s", path)
		}

		drops := analysis.OptimizeDrops(
			loaded.Inventory,
			loaded.CarryWeight(),
			analysis.AlwaysPinnedFormIDs,
			current.DropPredicate(),
		)
		logger.Info(
			"save loaded",
			zap.String("path", path),
			zap.String("name", loaded.Name()),
			zap.Float32("total_weight", loaded.Inventory.TotalWeight()),
			zap.Int("carry_weight", loaded.CarryWeight()),
			zap.Int("drops", analysis.TotalCount(drops)),
		)
		if !current.GenerateAutoDropScriptOnSave {
			return nil
		}

		script := analysis.GenerateDropScript(filepath.Base(path), loaded.Inventory, drops)
		scriptPath := filepath.Join(current.Fallout3Directory, analysis.ScriptFileName)
		if err := os.WriteFile(scriptPath, []byte(script.Script), 0644); err != nil {
			return errors.Wrap(err, "AutoDrop error: write script")
		}
		logger.Info(
			"wrote drop script",
			zap.String("path", scriptPath),
			zap.Int("undroppable", len(script.Undroppable)),
		)
		return nil
	}
}
