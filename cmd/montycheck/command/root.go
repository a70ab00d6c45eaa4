// Package command implements the montycheck command line tool.
//
// montycheck computes with the Montgomery forms of package montgomery from the command line and runs randomized
// differential self-checks of all word sizes and range variants against math/big.
//
// Every flag can also be set via an environment variable MONTYCHECK_<FLAG> (with dashes replaced by underscores)
// or in a config file given by --config.
package command

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const ErrorPrefix = "montycheck: "

const envPrefix = "MONTYCHECK"

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	widthFlag    = "width"
	rangeFlag    = "range"
	modulusFlag  = "modulus"
)

// RootCommand is the montycheck command tree together with its configuration and logger.
type RootCommand struct {
	baseCmd *cobra.Command
	config  *viper.Viper
	logger  *zap.Logger
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:           "montycheck",
			Short:         "Compute with and self-check Montgomery forms of all word sizes and range variants",
			SilenceUsage:  true,
			SilenceErrors: true,
		},
		config: viper.New(),
		logger: zap.NewNop(),
	}

	rootCommand.config.SetEnvPrefix(envPrefix)
	rootCommand.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rootCommand.config.AutomaticEnv()

	flags := rootCommand.baseCmd.PersistentFlags()
	flags.String(configFlag, "", "optional config file (any format supported by viper)")
	flags.String(logLevelFlag, "info", "log level (debug, info, warn, error)")
	registerFormFlags(flags)

	rootCommand.baseCmd.PersistentPreRunE = rootCommand.setup
	rootCommand.baseCmd.PersistentPostRun = func(*cobra.Command, []string) {
		_ = rootCommand.logger.Sync()
	}

	rootCommand.registerSubCommands()

	return rootCommand
}

// registerFormFlags registers the flags that select the word size and range variant.
func registerFormFlags(flags *pflag.FlagSet) {
	flags.Int(widthFlag, 64, "word size in bits (8, 16, 32, 64 or 128)")
	flags.String(rangeFlag, "full", "range variant (full, half, quarter or sqrt), or standard for plain modular arithmetic")
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		getConvertCommand(rc),
		getMulCommand(rc),
		getPowCommand(rc),
		getInverseCommand(rc),
		getTwoPowCommand(rc),
		getVerifyCommand(rc),
	)
}

// setup binds the flags of the command being executed to the configuration, reads the config file and creates the logger.
func (rc *RootCommand) setup(cmd *cobra.Command, _ []string) error {
	if err := rc.config.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, ErrorPrefix+"binding flags")
	}
	if err := rc.config.BindPFlags(cmd.InheritedFlags()); err != nil {
		return errors.Wrap(err, ErrorPrefix+"binding flags")
	}

	if configFile := rc.config.GetString(configFlag); configFile != "" {
		rc.config.SetConfigFile(configFile)
		if err := rc.config.ReadInConfig(); err != nil {
			return errors.Wrapf(err, ErrorPrefix+"reading config file %s", configFile)
		}
	}

	logger, err := newLogger(rc.config.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	rc.logger = logger

	return nil
}

// Execute runs the command given by the process arguments.
func (rc *RootCommand) Execute() error {
	return rc.baseCmd.Execute()
}

// calculator returns the calculator selected by the width and range flags for the modulus flag.
func (rc *RootCommand) calculator() (calculator, error) {
	n, err := parseNumber(modulusFlag, rc.config.GetString(modulusFlag))
	if err != nil {
		return nil, err
	}
	c, err := getCalculator(rc.config.GetInt(widthFlag), rc.config.GetString(rangeFlag), n)
	if err != nil {
		return nil, err
	}
	rc.logger.Debug("created Montgomery form",
		zap.Int("width", c.Bits()),
		zap.String("range", c.RangeName()),
		zap.Stringer("modulus", n),
	)
	return c, nil
}
