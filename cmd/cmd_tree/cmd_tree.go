package cmd_tree

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rskv-p/bintree/config"
	"github.com/rskv-p/bintree/constant"
	"github.com/rskv-p/bintree/pkg/x_log"
	"github.com/rskv-p/bintree/pkg/x_play"
	"github.com/rskv-p/bintree/pkg/x_prompt"
	"github.com/rskv-p/bintree/recover"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	logConfigPath string
	noWait        bool
	dumpTree      bool
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"level":     constant.ConfigLevel,
	"nodes":     constant.ConfigNodes,
	"traversal": constant.ConfigTraversal,
	"seed":      constant.ConfigSeed,
	"value-min": constant.ConfigValueMin,
	"value-max": constant.ConfigValueMax,
	"delay":     constant.ConfigDelay,
	"theme":     constant.ConfigTheme,
	"no-color":  constant.ConfigNoColor,
	"log-level": constant.ConfigLogLevel,
}

var Cmd = &cobra.Command{
	Use:   "tree",
	Short: "Build random binary trees and walk them",
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Build a random tree and animate a traversal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		setupLogging(cfg)

		ctx, stop := signal.NotifyContext(scoped(cmd, "play"), os.Interrupt)
		defer stop()

		s := x_play.New(cfg,
			x_play.WithContext(ctx),
			x_play.WithOutput(cmd.OutOrStdout()),
			x_play.WithPrompter(x_prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())),
			x_play.WithWait(!noWait),
		)
		err = recover.WrapRecover("play", "run", s.Run)(ctx)
		if errors.Is(err, context.Canceled) {
			x_log.NewLogger("tree").Infow("play interrupted", "session", s.ID)
			return nil
		}
		return err
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a random tree and its three traversals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		setupLogging(cfg)

		ctx := scoped(cmd, "show")
		s := x_play.New(cfg,
			x_play.WithContext(ctx),
			x_play.WithOutput(cmd.OutOrStdout()),
			x_play.WithPrompter(x_prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())),
		)
		return recover.WrapRecover("show", "run", func(context.Context) error {
			if err := s.Show(); err != nil {
				return err
			}
			if dumpTree {
				return s.Dump(cmd.OutOrStdout())
			}
			return nil
		})(ctx)
	},
}

// loadConfig layers the config file, TREE_* variables and changed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadWithFallback(configPath, config.FromMap(changedFlags(cmd)))
}

// scoped stores a logger for module in the command context.
func scoped(cmd *cobra.Command, module string) context.Context {
	l := x_log.New(module)
	return x_log.WithLogger(cmd.Context(), &l)
}

func changedFlags(cmd *cobra.Command) map[string]any {
	raw := map[string]any{}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			raw[key] = f.Value.String()
		}
	}
	return raw
}

// setupLogging applies the x_log file config, with the tree config's
// log level taking precedence when set.
func setupLogging(cfg *config.Config) {
	lc, err := x_log.LoadConfig(logConfigPath)
	if err != nil {
		d := x_log.DefaultConfig()
		lc = &d
	}
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	x_log.InitWithConfig(lc, "")
}

func init() {
	for _, c := range []*cobra.Command{playCmd, showCmd} {
		f := c.Flags()
		f.Int("level", 0, "tree depth to reach (1-4), asked when unset")
		f.Int("nodes", 0, "number of nodes, asked when unset")
		f.String("traversal", "", "preorder, inorder or postorder, asked when unset")
		f.Int64("seed", 0, "random seed, 0 uses the clock")
		f.Int("value-min", constant.DefaultValueMin, "smallest node value")
		f.Int("value-max", constant.DefaultValueMax, "largest node value")
		f.String("theme", constant.DefaultTheme, "colour theme: dark or light")
		f.Bool("no-color", false, "disable colours")
		f.String("log-level", "", "debug, info, warn or error")
	}
	showCmd.Flags().BoolVar(&dumpTree, "dump", false, "also print the config and an indented dump of the tree")
	playCmd.Flags().Duration("delay", constant.DefaultDelay, "pause between traversal steps")
	playCmd.Flags().BoolVar(&noWait, "no-wait", false, "start the traversal without waiting for Enter")

	Cmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON config file (default $TREE_CONFIG, then ./bintree.json)")
	Cmd.PersistentFlags().StringVar(&logConfigPath, "log-config", "", "x_log JSON config (default $XLOG_CONFIG)")

	Cmd.AddCommand(playCmd)
	Cmd.AddCommand(showCmd)
}

// Execute runs the tree command on its own, used by tests.
func Execute(ctx context.Context, args []string) error {
	Cmd.SetArgs(args)
	return Cmd.ExecuteContext(ctx)
}
