// Package config contains the structure and loader for the slist
// configuration file.
package config

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/linkedlist/common"
)

// ErrUnknownSetting is returned when the configuration file contains a key
// that does not map to a Config field.
var ErrUnknownSetting = errors.New("unknown setting")

// ErrInvalidSetting is returned when a setting has a value outside of what it
// accepts.
var ErrInvalidSetting = errors.New("invalid setting")

// Config holds settings for the slist command.
type Config struct {
	// Capacity is passed to list.New for every list the command creates.
	Capacity int `toml:"capacity"`

	// NodeLimit caps the nodes a list may hold at once. Zero is unlimited.
	NodeLimit int `toml:"node_limit"`

	LogLevel string `toml:"log_level"`
	Prompt   string `toml:"prompt"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Capacity: common.DefaultCapacity,
		LogLevel: common.DefaultLogLevel,
		Prompt:   common.DefaultPrompt,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, errors.Wrapf(ErrInvalidSetting, "log_level: %s", err)
	}
	return lvl, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.NodeLimit < 0 {
		return errors.Wrapf(ErrInvalidSetting, "node_limit must not be negative, got %d", c.NodeLimit)
	}
	_, err := c.Level()
	return err
}

// Load reads the TOML file at path on top of the defaults. Settings absent
// from the file keep their default value.
func Load(path string) (*Config, error) {
	fd, err := fileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	c := Default()
	md, err := toml.NewDecoder(fd).Decode(c)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, errors.Wrapf(ErrUnknownSetting, "%s: %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// LoadDefault reads the configuration file in UserDirectory(). A missing file
// is not an error and yields Default().
func LoadDefault() (*Config, error) {
	dir := UserDirectory()
	if dir == "" {
		return Default(), nil
	}
	c, err := Load(filepath.Join(dir, common.ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

var userDirectory string
var userDirectoryOnce sync.Once

func locateUserDirectory() {
	home, err := userHomeDir()
	if err != nil {
		userDirectory = ""
		return
	}
	userDirectory = filepath.Join(home, common.UserConfigDirectory)
}

// UserDirectory returns the path to the slist configuration directory for the
// current user, or the empty string if the home directory is unknown.
func UserDirectory() string {
	userDirectoryOnce.Do(locateUserDirectory)
	return userDirectory
}
