package common

const (
	// UserConfigDirectory is the dirname of the directory holding the user
	// configuration for slist.
	UserConfigDirectory = ".slist"

	// ConfigFile is the name of the slist configuration file. It is stored
	// inside UserConfigDirectory.
	ConfigFile = "config.toml"

	// DefaultCapacity is the capacity hint given to lists when neither the
	// configuration nor the command line sets one.
	DefaultCapacity = 16

	// DefaultPrompt is printed before each line read from an interactive
	// terminal.
	DefaultPrompt = "slist> "

	// DefaultLogLevel is the logrus level used when none is configured.
	DefaultLogLevel = "info"
)
