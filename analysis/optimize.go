package analysis

import (
	"math"
	"sort"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/samber/lo"
)

// OptimizeDrops chooses drops that bring the inventory weight down to targetWeight while
// losing as little sell value as possible.
//
// Stacks are taken whole or in part by ascending value per weight until the next stack
// does not fit a single unit. The walk stops there even if a later, heavier stack would
// still fit. If the drops fall short of the drop weight, the cheapest single unit heavy
// enough to close the gap is added, which may overshoot the target.
//
// Stacks that fail predicate, hold no items, have no positive weight or a pinned form id
// are never dropped. A nil predicate accepts every stack.
func OptimizeDrops(
	inventory *game.Inventory,
	targetWeight int,
	pinnedFormIDs map[dformid.FormID]struct{},
	predicate Predicate,
) []Drop {
	if inventory.IsEmpty() {
		return []Drop{}
	}
	dropWeight := math.Floor(float64(inventory.TotalWeight()) - float64(targetWeight))
	if dropWeight <= 0 {
		return []Drop{}
	}

	candidates := lo.Filter(inventory.Stacks(), func(stack *game.ItemStack, _ int) bool {
		if predicate != nil && !predicate(stack) {
			return false
		}
		if stack.Weight <= 0 || stack.Count <= 0 {
			return false
		}
		_, pinned := pinnedFormIDs[stack.FormID]
		return !pinned
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ValueWeightRatio < candidates[j].ValueWeightRatio
	})

	drops := make([]Drop, 0)
	weight := float64(0)
	for _, stack := range candidates {
		count := min(int((dropWeight-weight)/float64(stack.Weight)), stack.Count)
		if count == 0 {
			break
		}
		drops = append(drops, Drop{ItemStack: stack, Count: count})
		weight += float64(stack.Weight) * float64(count)
	}

	// the walk never drops more than dropWeight, so equality means a perfect fit
	if weight >= dropWeight {
		return drops
	}

	index := 0
	if len(drops) > 0 {
		lastDrop := drops[len(drops)-1]
		// drops are a prefix of candidates
		index = len(drops) - 1
		if lastDrop.Count == lastDrop.ItemStack.Count {
			index++
		}
	}

	remainingWeight := dropWeight - weight
	closing := lo.Filter(candidates[index:], func(stack *game.ItemStack, _ int) bool {
		return float64(stack.Weight) >= remainingWeight
	})
	if len(closing) == 0 {
		return drops
	}
	leastExpensive := lo.MinBy(closing, func(a *game.ItemStack, b *game.ItemStack) bool {
		return a.SellValue < b.SellValue
	})

	if len(drops) > 0 && drops[len(drops)-1].ItemStack == leastExpensive {
		drops[len(drops)-1].Count++
	} else {
		drops = append(drops, Drop{ItemStack: leastExpensive, Count: 1})
	}
	return drops
}
