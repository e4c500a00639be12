package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/samber/lo"
)

const (
	lineEnd = "\r\n"
	// ScriptFileName is the batch file the console runs with "bat autodrop".
	ScriptFileName = "autodrop.txt"
)

// conditionKey is the condition a stack is indistinguishable by in the console. Stacks
// without their own condition are at the item's max condition.
type conditionKey struct {
	present bool
	value   float32
}

func stackConditionKey(stack *game.ItemStack) conditionKey {
	switch {
	case stack.Condition != nil:
		return conditionKey{present: true, value: *stack.Condition}
	case stack.MaxCondition != nil:
		return conditionKey{present: true, value: float32(*stack.MaxCondition)}
	default:
		return conditionKey{}
	}
}

// GenerateDropScript writes the drops as a console batch file. Drops of a form id are
// only written when the console cannot pick the wrong item: every stack of that form id
// has the same condition, or the whole count is dropped.
func GenerateDropScript(saveName string, inventory *game.Inventory, drops []Drop) DropScript {
	stacksByFormID := lo.GroupBy(inventory.Stacks(), func(stack *game.ItemStack) dformid.FormID {
		return stack.FormID
	})
	dropsByFormID := lo.GroupBy(drops, func(drop Drop) dformid.FormID {
		return drop.ItemStack.FormID
	})
	formIDs := lo.Keys(dropsByFormID)
	sort.Slice(formIDs, func(i, j int) bool { return formIDs[i] < formIDs[j] })

	sb := strings.Builder{}
	writeLine := func(format string, args ...any) {
		sb.WriteString(fmt.Sprintf(format, args...))
		sb.WriteString(lineEnd)
	}
	writeLine("; Auto generated for %s", saveName)
	writeLine("; Type \"bat autodrop\" into the Fallout 3 console.")
	writeLine("; Items to drop: %d", TotalCount(drops))
	writeLine("; Sell value: %d", TotalSellValue(drops))
	writeLine("; Drop weight: %.2f", TotalWeight(drops))
	writeLine("")

	undroppable := make([]Drop, 0)
	for _, formID := range formIDs {
		formIDDrops := dropsByFormID[formID]
		stacks := stacksByFormID[formID]
		conditions := lo.Uniq(lo.Map(stacks, func(stack *game.ItemStack, _ int) conditionKey {
			return stackConditionKey(stack)
		}))
		dropCount := TotalCount(formIDDrops)
		inventoryCount := lo.SumBy(stacks, func(stack *game.ItemStack) int { return stack.Count })

		if len(conditions) == 1 || dropCount == inventoryCount {
			writeLine("player.Drop %08X %2d ; %s", uint32(formID), dropCount, formIDDrops[0].ItemStack.Description)
		} else {
			undroppable = append(undroppable, formIDDrops...)
		}
	}

	if len(undroppable) > 0 {
		writeLine("")
		writeLine("; Cannot drop these items:")
		writeLine("; formId   count sellValue description")
		for _, drop := range undroppable {
			writeLine(
				"; %08X %5d %9d %s",
				uint32(drop.ItemStack.FormID), drop.Count, drop.ItemStack.SellValue, drop.ItemStack.Description,
			)
		}
	}

	return DropScript{
		Script:      sb.String(),
		Undroppable: undroppable,
	}
}
