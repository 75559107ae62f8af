package main

import (
	"errors"
	"flag"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"hop.computer/linkedlist/config"
	"hop.computer/linkedlist/flags"
	"hop.computer/linkedlist/script"
)

func main() {
	f, err := flags.ParseArgs(os.Args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.Fatal(err)
	}

	c, err := flags.LoadConfigFromFlags(f)
	if err != nil {
		logrus.Fatalf("unable to load config: %s", err)
	}
	// Validated by LoadConfigFromFlags
	lvl, _ := c.Level()
	logrus.SetLevel(lvl)

	if err := run(f, c); err != nil {
		logrus.Fatal(err)
	}
}

func run(f *flags.Flags, c *config.Config) error {
	opts := script.Options{
		Capacity:  c.Capacity,
		NodeLimit: c.NodeLimit,
		Log:       logrus.WithField("cmd", "slist"),
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width = w
	}
	r := script.NewRunner(os.Stdout, opts)
	defer r.Close()

	if f.ScriptPath != "" {
		fd, err := os.Open(f.ScriptPath)
		if err != nil {
			return err
		}
		defer fd.Close()
		steps, err := script.ParseYAML(fd)
		if err != nil {
			return err
		}
		logrus.Debugf("running %d steps from %s", len(steps), f.ScriptPath)
		return r.Run(steps)
	}

	var prompt string
	if fd := os.Stdin.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		prompt = c.Prompt
	}
	return r.Interactive(os.Stdin, prompt)
}
