package session

import (
	"fmt"
	"strings"

	"github.com/go-sif/sifmock"
	iutil "github.com/go-sif/sifmock/internal/util"
	"github.com/go-sif/sifmock/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes the environment variables read by LoadOptions, e.g. SIFMOCK_LOG_LEVEL
const EnvPrefix = "SIFMOCK"

// DefaultAppName names sessions which were not given an AppName
const DefaultAppName = "sifmock"

// Options are options for a Session
type Options struct {
	AppName       string             `mapstructure:"app_name"`       // names the session's logger
	LogLevel      string             `mapstructure:"log_level"`      // the minimum level to log at (trace, debug, info, warn, error, fatal). Ignored if Logger is supplied.
	GroupOrder    sifmock.GroupOrder `mapstructure:"group_order"`    // the order in which grouping transformations emit groups
	CheckpointDir string             `mapstructure:"checkpoint_dir"` // the directory which RDD.Checkpoint writes to. Created if missing.
	Logger        *zap.Logger        `mapstructure:"-"`              // overrides the logger built from LogLevel
}

// CloneOptions makes a copy of an Options
func CloneOptions(opts *Options) *Options {
	return &Options{
		AppName:       opts.AppName,
		LogLevel:      opts.LogLevel,
		GroupOrder:    opts.GroupOrder,
		CheckpointDir: opts.CheckpointDir,
		Logger:        opts.Logger,
	}
}

func ensureDefaultOptionsValues(opts *Options) {
	if len(opts.AppName) == 0 {
		opts.AppName = DefaultAppName
	}
	if len(opts.LogLevel) == 0 {
		opts.LogLevel = logging.LogLevelToString(logging.InfoLevel)
	}
	if len(opts.GroupOrder) == 0 {
		opts.GroupOrder = sifmock.GroupOrderReverseFirstSeen
	}
}

// Validate returns an error describing every invalid option, or nil
func (o *Options) Validate() error {
	var multierr *multierror.Error
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	if _, err := sifmock.ParseGroupOrder(string(o.GroupOrder)); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	if strings.TrimSpace(o.AppName) != o.AppName {
		multierr = multierror.Append(multierr, fmt.Errorf("AppName %q must not have surrounding whitespace", o.AppName))
	}
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
		return multierr
	}
	return nil
}

// LoadOptions reads Options from the environment (SIFMOCK_APP_NAME, SIFMOCK_LOG_LEVEL,
// SIFMOCK_GROUP_ORDER, SIFMOCK_CHECKPOINT_DIR) and, if path is not empty, from a config
// file in any format viper supports. The environment takes precedence.
func LoadOptions(path string) (*Options, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"app_name", "log_level", "group_order", "checkpoint_dir"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if len(path) > 0 {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Unable to read options from %s: %w", path, err)
		}
	}
	opts := &Options{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("Unable to decode options: %w", err)
	}
	ensureDefaultOptionsValues(opts)
	return opts, opts.Validate()
}
