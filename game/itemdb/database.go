package itemdb

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lxhmsk/fallout-3-save-analyzer/ds"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func New(items []ItemData) *Database {
	database := Database{items: ds.NewLinkedHashMap[dformid.FormID, ItemData]()}
	for _, item := range items {
		database.items.Put(item.FormID, item)
	}
	return &database
}

func Load(path string, logger *zap.Logger) (*Database, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "itemdb.Load error")
	}
	defer file.Close()

	database, err := Parse(file, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "itemdb.Load error: %s", path)
	}
	logger.Debug("loaded item database", zap.String("path", path), zap.Int("items", database.Len()))
	return database, nil
}

// Parse reads database lines. Lines with too few fields are logged and skipped; a
// field that does not parse fails the whole load.
func Parse(reader io.Reader, logger *zap.Logger) (*Database, error) {
	items := make([]ItemData, 0)
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		fields := strings.Split(line, "\t")
		if len(fields) < numFields {
			logger.Warn("bad line in item database", zap.Int("line", lineNumber), zap.String("content", line))
			continue
		}
		item, err := parseItem(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse error: line %d", lineNumber)
		}
		items = append(items, *item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Parse error")
	}
	return New(items), nil
}

func parseItem(fields []string) (*ItemData, error) {
	formID, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return nil, errors.Wrap(err, "parseItem error: form id")
	}
	baseValue, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, errors.Wrap(err, "parseItem error: base value")
	}
	weight, err := strconv.ParseFloat(fields[4], 32)
	if err != nil {
		return nil, errors.Wrap(err, "parseItem error: weight")
	}
	maxCondition, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, errors.Wrap(err, "parseItem error: max condition")
	}

	item := ItemData{
		FormID:      dformid.FormID(formID),
		Signature:   fields[1],
		Description: fields[2],
		BaseValue:   baseValue,
		Weight:      float32(weight),
	}
	if maxCondition >= 0 {
		item.MaxCondition = &maxCondition
	}
	return &item, nil
}

func (r *Database) Len() int {
	return r.items.Len()
}

// Items lists the items in file order.
func (r *Database) Items() []ItemData {
	return r.items.Values()
}

func (r *Database) Lookup(formID dformid.FormID) (ItemData, bool) {
	return r.items.Get(formID)
}

// Get returns UnknownItem for form ids that are not in the database.
func (r *Database) Get(formID dformid.FormID) ItemData {
	item, ok := r.items.Get(formID)
	if !ok {
		return UnknownItem
	}
	return item
}

// Search ranks items by how close their description is to query. Descriptions that
// contain the query come first, then close misspellings; limit <= 0 keeps every match.
func (r *Database) Search(query string, limit int) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Match{}
	}

	matches := lo.FilterMap(r.Items(), func(item ItemData, _ int) (Match, bool) {
		description := strings.ToLower(item.Description)
		match := Match{
			Item:      item,
			Distance:  levenshtein.ComputeDistance(query, description),
			Substring: strings.Contains(description, query),
		}
		return match, match.Substring || match.Distance <= distanceLimit(len(query))
	})

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Substring != matches[j].Substring {
			return matches[i].Substring
		}
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Item.Description < matches[j].Item.Description
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
