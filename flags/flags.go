// Package flags provides support for slist CLI args
package flags

import (
	"errors"
	"flag"
	"io"

	"hop.computer/linkedlist/config"
)

// ErrExcessArgs is returned when unparsed arguments remain
var ErrExcessArgs = errors.New("excess arguments provided")

// Flags holds CLI arguments for slist.
type Flags struct {
	ConfigPath string
	ScriptPath string // read commands from this YAML file instead of stdin
	Capacity   int
	NodeLimit  int
	Verbose    bool

	// set records which flags appeared on the command line, so that only
	// those override the configuration file.
	set map[string]bool
}

// ParseArgs defines and parses the flags from the cmd line. args[0] is the
// program name.
func ParseArgs(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{set: make(map[string]bool)}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	defineFlags(fs, f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, ErrExcessArgs
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}

func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "C", "", "path to config file (default ~/.slist/config.toml)")
	fs.StringVar(&f.ScriptPath, "s", "", "path to a YAML script to run instead of reading stdin")
	fs.IntVar(&f.Capacity, "capacity", 0, "capacity hint for created lists")
	fs.IntVar(&f.NodeLimit, "limit", 0, "maximum number of nodes per list, 0 for unlimited")
	fs.BoolVar(&f.Verbose, "V", false, "verbose logging")
}

// LoadConfigFromFlags reads the config file named by the flags, or the
// default one, and applies the flags that were set on top of it.
func LoadConfigFromFlags(f *Flags) (*config.Config, error) {
	var c *config.Config
	var err error
	if f.ConfigPath != "" {
		c, err = config.Load(f.ConfigPath)
	} else {
		c, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	mergeFlagsAndConfig(f, c)
	return c, c.Validate()
}

func mergeFlagsAndConfig(f *Flags, c *config.Config) {
	if f.set["capacity"] {
		c.Capacity = f.Capacity
	}
	if f.set["limit"] {
		c.NodeLimit = f.NodeLimit
	}
	if f.Verbose {
		c.LogLevel = "debug"
	}
}
