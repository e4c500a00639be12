package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/lxhmsk/fallout-3-save-analyzer/analysis"
	"github.com/lxhmsk/fallout-3-save-analyzer/ds"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
	"github.com/lxhmsk/fallout-3-save-analyzer/game/itemdb"
	"github.com/lxhmsk/fallout-3-save-analyzer/settings"
	"github.com/lxhmsk/fallout-3-save-analyzer/ui"
	"github.com/lxhmsk/fallout-3-save-analyzer/watcher"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type (
	Args struct {
		Inventory   *InventoryCmd   `arg:"subcommand:inventory" help:"list the player's inventory"`
		Stats       *StatsCmd       `arg:"subcommand:stats" help:"show the player's attributes and misc stats"`
		Drops       *DropsCmd       `arg:"subcommand:drops" help:"pick the items to drop to get under a weight"`
		Search      *SearchCmd      `arg:"subcommand:search" help:"search the item database"`
		Watch       *WatchCmd       `arg:"subcommand:watch" help:"write a drop script whenever the game saves"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse saves in the terminal"`

		Config string `help:"path to the settings file" placeholder:"settings.txt" default:"settings.txt"`
		Items  string `help:"path to the item database, overrides the settings" placeholder:"items.txt"`
		Debug  bool   `help:"log decoding details"`
	}
	InventoryCmd struct {
		Save string `arg:"positional,required" help:"path to the save file" placeholder:"SAVE"`
		All  bool   `help:"ignore the show settings and list every stack"`
		JSON bool   `arg:"--json" help:"print the stacks as JSON"`
	}
	StatsCmd struct {
		Save string `arg:"positional,required" help:"path to the save file" placeholder:"SAVE"`
	}
	DropsCmd struct {
		Save string `arg:"positional,required" help:"path to the save file" placeholder:"SAVE"`
		// the carry weight is used when the target is not positive
		Target int    `help:"weight to get under, defaults to the carry weight" placeholder:"WEIGHT"`
		Script string `help:"write the console drop script to this path" placeholder:"autodrop.txt"`
	}
	SearchCmd struct {
		Query string `arg:"positional,required" help:"item description to look for" placeholder:"QUERY"`
		Limit int    `help:"maximum number of results" default:"10"`
	}
	WatchCmd struct {
		Dir string `help:"saves directory, overrides the settings" placeholder:"DIR"`
	}
	InteractiveCmd struct {
		Dir string `help:"saves directory, overrides the settings" placeholder:"DIR"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"War never changes. Your carry weight does.\n",
			"A CLI utility to read Fallout 3 saves (.fos), list the player's inventory",
			"and pick the least valuable items to drop to get under a carry weight.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type runner struct {
	args     Args
	settings *settings.Settings
	logger   *zap.Logger
	stdout   io.Writer
}

func (r *runner) loadItems() (*itemdb.Database, error) {
	path := r.args.Items
	if path == "" {
		path = r.settings.ItemDatabasePath
	}
	return itemdb.Load(path, r.logger)
}

func (r *runner) loadGame(path string) (*game.Game, error) {
	if !CheckExistence(path) {
		return nil, errors.Errorf("save file %s does not exist", path)
	}
	items, err := r.loadItems()
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "loadGame error")
	}
	return game.Load(bs, items, r.logger)
}

func (r *runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.stdout, format, args...)
}

func (r *runner) runInventory(cmd InventoryCmd) error {
	loaded, err := r.loadGame(cmd.Save)
	if err != nil {
		return err
	}
	stacks := loaded.Inventory.Stacks()
	if !cmd.All {
		show := r.settings.ShowPredicate()
		stacks = lo.Filter(stacks, func(stack *game.ItemStack, _ int) bool {
			return show(stack)
		})
	}
	if cmd.JSON {
		r.printf("%s\n", ds.DumpJSON(stacks))
		return nil
	}

	r.printf("%-3s %-8s %-4s %-32s %5s %6s %6s %5s %s\n", "#", "form id", "type", "description", "count", "weight", "value", "cond", "flags")
	for _, stack := range stacks {
		flags := ""
		if stack.Equipped {
			flags += "equipped "
		}
		if stack.Hotkey != nil {
			flags += fmt.Sprintf("hotkey %d ", *stack.Hotkey)
		}
		r.printf(
			"%-3d %s %-4s %-32s %5d %6.1f %6d %4.0f%% %s\n",
			stack.InventoryIndex, stack.FormID, stack.Type, stack.Description, stack.Count,
			stack.Weight, stack.SellValue, stack.ConditionPercent*100, strings.TrimSpace(flags),
		)
	}
	r.printf(
		"\ntotal weight %.1f, carry weight %d, total value %d\n",
		loaded.Inventory.TotalWeight(), loaded.CarryWeight(), loaded.Inventory.TotalSellValue(),
	)
	return nil
}

func (r *runner) runStats(cmd StatsCmd) error {
	loaded, err := r.loadGame(cmd.Save)
	if err != nil {
		return err
	}
	header := loaded.Save.Header
	r.printf("%s, level %d, %s (%s)\n", header.Name, header.Level, header.Location, header.Playtime)
	r.printf("karma: %s, experience: %d\n\n", header.Karma, loaded.Save.PlayerACHR.Experience)
	if stats := loaded.Save.Stats(); stats != nil {
		r.printf("%s", stats.String())
	} else {
		r.printf("no base attributes in this save\n")
	}
	r.printf("\ncarry weight: %d\n\n", loaded.CarryWeight())
	r.printf("%s\n", ds.DumpJSON(loaded.Save.MiscStats))
	return nil
}

func (r *runner) runDrops(cmd DropsCmd) error {
	loaded, err := r.loadGame(cmd.Save)
	if err != nil {
		return err
	}
	target := cmd.Target
	if target <= 0 {
		target = loaded.CarryWeight()
	}

	drops := analysis.OptimizeDrops(loaded.Inventory, target, analysis.AlwaysPinnedFormIDs, r.settings.DropPredicate())
	r.printf("total weight %.1f, target %d\n", loaded.Inventory.TotalWeight(), target)
	for _, drop := range drops {
		r.printf("%s %3d x %-32s weight %6.1f value %6d\n", drop.ItemStack.FormID, drop.Count, drop.ItemStack.Description, drop.Weight(), drop.SellValue())
	}
	r.printf(
		"dropping %d items, weight %.1f, value %d\n",
		analysis.TotalCount(drops), analysis.TotalWeight(drops), analysis.TotalSellValue(drops),
	)

	if cmd.Script == "" {
		return nil
	}
	script := analysis.GenerateDropScript(filepath.Base(cmd.Save), loaded.Inventory, drops)
	if err := os.WriteFile(cmd.Script, []byte(script.Script), 0644); err != nil {
		return errors.Wrap(err, "runDrops error: write script")
	}
	r.printf("wrote %s\n", cmd.Script)
	for _, drop := range script.Undroppable {
		r.printf("cannot script %d x %s, drop it by hand\n", drop.Count, drop.ItemStack.Description)
	}
	return nil
}

func (r *runner) runSearch(cmd SearchCmd) error {
	items, err := r.loadItems()
	if err != nil {
		return err
	}
	for _, match := range items.Search(cmd.Query, cmd.Limit) {
		maxCondition := "-"
		if match.Item.MaxCondition != nil {
			maxCondition = fmt.Sprintf("%d", *match.Item.MaxCondition)
		}
		r.printf(
			"%s %-4s %-32s value %5d weight %6.1f condition %s\n",
			match.Item.FormID, match.Item.Signature, match.Item.Description,
			match.Item.BaseValue, match.Item.Weight, maxCondition,
		)
	}
	return nil
}

func (r *runner) runWatch(cmd WatchCmd) error {
	dir := cmd.Dir
	if dir == "" {
		dir = r.settings.SavesDirectory
	}
	if dir == "" {
		return errors.New("no saves directory, use --dir or set savesDirectory in the settings")
	}
	items, err := r.loadItems()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	handler := watcher.AutoDrop(*r.settings, items, r.logger)
	return watcher.New(dir, watcher.DefaultDelay, handler, r.logger).Run(ctx)
}

func (r *runner) runInteractive(cmd InteractiveCmd) error {
	if cmd.Dir != "" {
		r.settings.SavesDirectory = cmd.Dir
	}
	items, err := r.loadItems()
	if err != nil {
		return err
	}
	return ui.Start(ui.NewApp(items, r.settings, r.args.Config, r.logger))
}

// Run executes the parsed subcommand, printing results to stdout. No subcommand starts
// the terminal browser.
func Run(args Args, stdout io.Writer, logger *zap.Logger) error {
	current, err := settings.Load(args.Config)
	if err != nil {
		return err
	}
	r := runner{args: args, settings: current, logger: logger, stdout: stdout}

	switch {
	case args.Inventory != nil:
		return r.runInventory(*args.Inventory)
	case args.Stats != nil:
		return r.runStats(*args.Stats)
	case args.Drops != nil:
		return r.runDrops(*args.Drops)
	case args.Search != nil:
		return r.runSearch(*args.Search)
	case args.Watch != nil:
		return r.runWatch(*args.Watch)
	case args.Interactive != nil:
		return r.runInteractive(*args.Interactive)
	default:
		return r.runInteractive(InteractiveCmd{})
	}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	logger, err := NewLogger(args.Debug)
	if err != nil {
		println("Error happened creating the logger: " + err.Error())
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := Run(args, os.Stdout, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		println("Error: " + err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}
}
