package chunk

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultSize is the target chunk size in bytes used by [NewConfig].
const DefaultSize = 16 << 20

// Flags holds CLI flag names for chunking configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Size string
}

// Config holds CLI flag values controlling how input is split into
// [Range]s for parallel processing.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags

	// Size is the target number of bytes per chunk. The actual chunk
	// may run past Size to the next newline so no line is split.
	Size int
}

// NewConfig returns a new [Config] with default flag names and the
// documented default chunk size.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{Size: "chunk-size"},
		Size:  DefaultSize,
	}
}

// RegisterFlags adds chunking flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Size, c.Flags.Size, c.Size,
		"target chunk size in bytes for parallel processing")
}

// RegisterCompletions registers shell completions for chunking flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	return cmd.RegisterFlagCompletionFunc(c.Flags.Size,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
}
