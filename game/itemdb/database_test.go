package itemdb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sampleDatabase = "0001519E\tALCH\tStimpak\t25\t0.1\t-1\n" +
	"000A0686\tWEAP\tChinese Assault Rifle\t1200\t7\t1250\n" +
	"bad line\n" +
	"00004322\tARMO\tLeather Armor\t160\t15\t500\r\n" +
	"0000000F\tMISC\tBottle Cap\t1\t0\t-1\n"

func TestParse(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	database, err := Parse(strings.NewReader(sampleDatabase), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, 4, database.Len())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "bad line in item database", logs.All()[0].Message)

	stimpak, ok := database.Lookup(0x0001519E)
	require.True(t, ok)
	assert.Equal(t, "ALCH", stimpak.Signature)
	assert.Equal(t, 25, stimpak.BaseValue)
	assert.Equal(t, float32(0.1), stimpak.Weight)
	assert.Nil(t, stimpak.MaxCondition)

	armor := database.Get(0x00004322)
	assert.Equal(t, "Leather Armor", armor.Description)
	assert.Equal(t, lo.ToPtr(500), armor.MaxCondition)

	descriptions := lo.Map(database.Items(), func(item ItemData, _ int) string { return item.Description })
	assert.Equal(t, []string{"Stimpak", "Chinese Assault Rifle", "Leather Armor", "Bottle Cap"}, descriptions)
}

func TestParse_BadNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("0000000F\tMISC\tBottle Cap\tone\t0\t-1\n"), zap.NewNop())
	require.Error(t, err)
	assert.ErrorContains(t, err, "line 1")
	assert.ErrorContains(t, err, "base value")
}

func TestGet_Unknown(t *testing.T) {
	database := New(nil)

	item := database.Get(0x1234)
	assert.Equal(t, UnknownItem, item)
	assert.Equal(t, dformid.NotFound, item.FormID)
	assert.Equal(t, -1, item.BaseValue)
	assert.Equal(t, float32(-1), item.Weight)
	assert.Nil(t, item.MaxCondition)

	_, ok := database.Lookup(0x1234)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDatabase), 0644))

	database, err := Load(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 4, database.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	database, err := Parse(strings.NewReader(sampleDatabase), zap.NewNop())
	require.NoError(t, err)

	testCases := []struct {
		query    string
		expected []string
	}{
		{query: "stimpak", expected: []string{"Stimpak"}},
		{query: "STIMPACK", expected: []string{"Stimpak"}},
		{query: "rifle", expected: []string{"Chinese Assault Rifle"}},
		{query: "a", expected: []string{"Stimpak", "Bottle Cap", "Leather Armor", "Chinese Assault Rifle"}},
		{query: "  ", expected: []string{}},
		{query: "plasma", expected: []string{}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.query, func(t *testing.T) {
			matches := database.Search(testCase.query, 0)
			descriptions := lo.Map(matches, func(match Match, _ int) string { return match.Item.Description })
			assert.Equal(t, testCase.expected, descriptions)
		})
	}
}

func TestSearch_Limit(t *testing.T) {
	database, err := Parse(strings.NewReader(sampleDatabase), zap.NewNop())
	require.NoError(t, err)

	matches := database.Search("a", 2)
	assert.Len(t, matches, 2)
	assert.True(t, matches[0].Substring)
}
