package analysis_test

import (
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/analysis"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/fostest"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/lxhmsk/fallout-3-save-analyzer/game/itemdb"
	"github.com/lxhmsk/fallout-3-save-analyzer/settings"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type EndToEndTestSuite struct {
	SaveBytes []byte
	Game      *game.Game
	Drops     []analysis.Drop
	R         *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()

	condition := float32(250)
	achr := fostest.ACHR{
		Scale:        1,
		HasInventory: true,
		Inventory: []fostest.Entry{
			{FormIDIndex: 3, Count: 20},
			{FormIDIndex: 4, Count: 1, ItemInfos: []fostest.ItemInfo{{Condition: &condition, Equipped: true}}},
			{FormIDIndex: 5, Count: 1},
		},
	}
	npc := fostest.NPC{
		BaseData:   true,
		Attributes: &[7]uint8{5, 5, 5, 5, 5, 5, 5},
	}
	suite.SaveBytes = fostest.PlayerSave(achr, npc, 0xB1, 0x4322, 0x15038).Build()

	maxCondition := 500
	items := itemdb.New([]itemdb.ItemData{
		{FormID: 0xB1, Signature: "MISC", Description: "Cinder Block", BaseValue: 1, Weight: 10},
		{FormID: 0x4322, Signature: "ARMO", Description: "Leather Armor", BaseValue: 160, Weight: 15, MaxCondition: &maxCondition},
		{FormID: 0x15038, Signature: "ARMO", Description: "Pip-Boy 3000", BaseValue: 0, Weight: 1},
	})

	loaded, err := game.Load(suite.SaveBytes, items, zap.NewNop())
	suite.R.NoError(err)
	suite.Game = loaded

	current := settings.Default()
	suite.Drops = analysis.OptimizeDrops(
		loaded.Inventory,
		loaded.CarryWeight(),
		analysis.AlwaysPinnedFormIDs,
		current.DropPredicate(),
	)
}

func (suite *EndToEndTestSuite) TestInventory() {
	suite.R.Equal(3, suite.Game.Inventory.Len())
	suite.R.InDelta(216, suite.Game.Inventory.TotalWeight(), 0.001)

	descriptions := lo.Map(
		suite.Game.Inventory.Stacks(),
		func(stack *game.ItemStack, _ int) string {
			return stack.Description
		},
	)
	suite.R.Equal([]string{"Cinder Block", "Leather Armor", "Pip-Boy 3000"}, descriptions)
}

func (suite *EndToEndTestSuite) TestCarryWeight() {
	suite.R.Equal(5, suite.Game.Save.Strength())
	suite.R.Equal(200, suite.Game.CarryWeight())
}

func (suite *EndToEndTestSuite) TestDrops() {
	// the equipped armor and the Pip-Boy stay, a second block closes the gap left by the first
	suite.R.Len(suite.Drops, 1)
	suite.R.Equal("Cinder Block", suite.Drops[0].ItemStack.Description)
	suite.R.Equal(2, suite.Drops[0].Count)
	suite.R.InDelta(20, analysis.TotalWeight(suite.Drops), 0.001)
	suite.R.LessOrEqual(
		suite.Game.Inventory.TotalWeight()-analysis.TotalWeight(suite.Drops),
		float32(suite.Game.CarryWeight()),
	)
}

func (suite *EndToEndTestSuite) TestScript() {
	script := analysis.GenerateDropScript(suite.Game.Name(), suite.Game.Inventory, suite.Drops)
	suite.R.Empty(script.Undroppable)
	suite.R.Contains(script.Script, "; Auto generated for Lone Wanderer\r\n")
	suite.R.Contains(script.Script, "player.Drop 000000B1  2 ; Cinder Block\r\n")
}

func TestEndToEndTestSuite(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
