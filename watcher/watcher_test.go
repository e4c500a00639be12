package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lxhmsk/fallout-3-save-analyzer/analysis"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/fostest"
	"github.com/lxhmsk/fallout-3-save-analyzer/game/itemdb"
	"github.com/lxhmsk/fallout-3-save-analyzer/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsSaveEvent(t *testing.T) {
	testCases := []struct {
		event    fsnotify.Event
		expected bool
	}{
		{event: fsnotify.Event{Name: "Save 1.fos", Op: fsnotify.Write}, expected: true},
		{event: fsnotify.Event{Name: "Save 2.FOS", Op: fsnotify.Create}, expected: true},
		{event: fsnotify.Event{Name: "Save 3.fos", Op: fsnotify.Remove}, expected: false},
		{event: fsnotify.Event{Name: "Save 3.fos", Op: fsnotify.Chmod}, expected: false},
		{event: fsnotify.Event{Name: "autodrop.txt", Op: fsnotify.Write}, expected: false},
		{event: fsnotify.Event{Name: "Save 4.fos.bak", Op: fsnotify.Write}, expected: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, IsSaveEvent(testCase.event), testCase.event.String())
	}
}

func createOverweightSave() []byte {
	achr := fostest.ACHR{
		Scale:        1,
		HasInventory: true,
		Inventory: []fostest.Entry{
			{FormIDIndex: 3, Count: 20},
		},
	}
	return fostest.PlayerSave(achr, fostest.NPC{}, 0xB1).Build()
}

func createItems() *itemdb.Database {
	return itemdb.New([]itemdb.ItemData{
		{FormID: 0xB1, Signature: "MISC", Description: "Cinder Block", BaseValue: 1, Weight: 10},
	})
}

func TestAutoDrop(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "Save 1.fos")
	require.NoError(t, os.WriteFile(savePath, createOverweightSave(), 0644))

	current := settings.Default()
	current.Fallout3Directory = dir
	handler := AutoDrop(current, createItems(), zap.NewNop())
	require.NoError(t, handler(savePath))

	script, err := os.ReadFile(filepath.Join(dir, analysis.ScriptFileName))
	require.NoError(t, err)
	// 200 carried, 150 allowed
	assert.Contains(t, string(script), "; Auto generated for Save 1.fos\r\n")
	assert.Contains(t, string(script), "player.Drop 000000B1  5 ; Cinder Block\r\n")
}

func TestAutoDrop_Disabled(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "Save 1.fos")
	require.NoError(t, os.WriteFile(savePath, createOverweightSave(), 0644))

	current := settings.Default()
	current.Fallout3Directory = dir
	current.GenerateAutoDropScriptOnSave = false
	require.NoError(t, AutoDrop(current, createItems(), zap.NewNop())(savePath))

	_, err := os.Stat(filepath.Join(dir, analysis.ScriptFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestAutoDrop_BadSave(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "Save 1.fos")
	require.NoError(t, os.WriteFile(savePath, []byte("FO3SAVEGAME"), 0644))

	err := AutoDrop(settings.Default(), createItems(), zap.NewNop())(savePath)
	assert.ErrorContains(t, err, "Save 1.fos")
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 4)
	watcher := New(dir, 10*time.Millisecond, func(path string) error {
		handled <- path
		return nil
	}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	savePath := filepath.Join(dir, "Save 1.fos")
	// the watch may not be registered yet, keep writing until the handler runs
	var path string
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)
		_ = os.WriteFile(savePath, []byte("x"), 0644)
		select {
		case path = <-handled:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, savePath, path)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Run_MissingDirectory(t *testing.T) {
	watcher := New(filepath.Join(t.TempDir(), "missing"), time.Millisecond, func(string) error { return nil }, zap.NewNop())

	err := watcher.Run(context.Background())
	assert.Error(t, err)
}
