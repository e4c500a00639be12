package game

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos"
	"go.uber.org/zap"
)

// Load decodes a save and assembles the player's inventory.
func Load(bs []byte, items ItemLookup, logger *zap.Logger) (*Game, error) {
	save, err := fos.DecodeFOS(bs, logger)
	if err != nil {
		return nil, err
	}
	inventory := NewInventory(save.PlayerACHR.Inventory, save.FormIDs, items)
	logger.Debug(
		"assembled inventory",
		zap.Int("stacks", inventory.Len()),
		zap.Float32("total_weight", inventory.TotalWeight()),
	)
	return &Game{Save: save, Inventory: inventory}, nil
}

func CarryWeight(strength int) int {
	return BaseCarryWeight + CarryWeightPerStrength*strength
}

// CarryWeight is how much the player can carry without being over-encumbered.
func (r *Game) CarryWeight() int {
	return CarryWeight(r.Save.Strength())
}

func (r *Game) Name() string {
	return r.Save.Header.Name
}
