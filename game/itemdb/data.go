// Package itemdb loads the item price and weight database, a tab separated file of
// form id, signature, description, base value, weight and max condition.
package itemdb

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/ds"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
)

type (
	ItemData struct {
		FormID      dformid.FormID `json:"form_id"`
		Signature   string         `json:"signature"`
		Description string         `json:"description"`
		BaseValue   int            `json:"base_value"`
		Weight      float32        `json:"weight"`
		// MaxCondition is nil for items without a condition.
		MaxCondition *int `json:"max_condition"`
	}
	Database struct {
		items *ds.LinkedHashMap[dformid.FormID, ItemData]
	}
	Match struct {
		Item     ItemData `json:"item"`
		Distance int      `json:"distance"`
		// Substring is set when the query is part of the description.
		Substring bool `json:"substring"`
	}
)

const (
	numFields = 6
)

// UnknownItem stands in for form ids missing from the database. Its negative base value
// and weight keep it out of anything that filters on them.
var UnknownItem = ItemData{
	FormID:      dformid.NotFound,
	Signature:   "????",
	Description: "UNKNOWN",
	BaseValue:   -1,
	Weight:      -1,
}

func (r ItemData) String() string {
	return r.Description
}
