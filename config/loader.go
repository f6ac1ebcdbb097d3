package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// UserFile overrides the per-user file. Empty means UserFile().
	UserFile string
	// SkipUser disables the per-user file.
	SkipUser bool
	// RepoDir is the worktree root searched for RepoFileName. Empty skips it.
	RepoDir string
	// File is an explicitly requested config file. It must exist.
	File string
	// Overrides are applied last, keyed by Key* constants.
	Overrides map[string]interface{}
}

// Load builds the layered configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyHints, def.Hints)

	var sources []string

	if !opts.SkipUser {
		userFile := opts.UserFile
		if userFile == "" {
			userFile = UserFile()
		}
		merged, err := mergeIfExists(v, userFile)
		if err != nil {
			return nil, err
		}
		if merged {
			sources = append(sources, userFile)
		}
	}

	if opts.RepoDir != "" {
		repoFile := filepath.Join(opts.RepoDir, RepoFileName)
		merged, err := mergeIfExists(v, repoFile)
		if err != nil {
			return nil, err
		}
		if merged {
			sources = append(sources, repoFile)
		}
	}

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
				"config file not found", map[string]interface{}{"path": opts.File})
		}
		if err := merge(v, opts.File); err != nil {
			return nil, err
		}
		sources = append(sources, opts.File)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to unmarshal config")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergeIfExists(v *viper.Viper, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"failed to stat config file", map[string]interface{}{"path": path})
	}
	if info.IsDir() {
		return false, errors.WrapWithContext(os.ErrInvalid, errors.CodeInvalidConfig,
			"config path is a directory", map[string]interface{}{"path": path})
	}
	return true, merge(v, path)
}

func merge(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"failed to parse config file", map[string]interface{}{"path": path})
	}
	return nil
}
