package schema

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Default bounds applied by [NewConfig]. These mirror the thresholds at
// which the original reference implementation degraded a node's type.
const (
	DefaultMaxObjectKeys          = 200
	DefaultMaxStringSetValues     = 100
	DefaultMaxStringSetVariantLen = 50
	DefaultMaxArrayItems          = 10
)

// Flags holds CLI flag names for inference and merge configuration,
// allowing callers to customize flag names while keeping sensible
// defaults via [NewConfig].
type Flags struct {
	MaxObjectKeys          string
	MaxStringSetValues     string
	MaxStringSetVariantLen string
	ConsiderStringSet      string
	ConsiderArrayItems     string
	MaxArrayItems          string
}

// Config holds CLI flag values governing how [Infer] and [Merge] bound the
// schema lattice's cardinality.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags

	// MaxObjectKeys is the largest number of distinct properties an
	// object may accumulate before degrading to [TypeLargeObject].
	MaxObjectKeys int

	// MaxStringSetValues is the largest number of distinct literal
	// strings tracked before a [TypeStringSet] degrades to open
	// [TypeString].
	MaxStringSetValues int

	// MaxStringSetVariantLen is the longest a single literal string may
	// be and still be tracked as a set member.
	MaxStringSetVariantLen int

	// ConsiderStringSet enables literal string-value tracking. When
	// false, all strings infer as open [TypeString].
	ConsiderStringSet bool

	// ConsiderArrayItems enables recursive inference of array element
	// schemas. When false, arrays infer as [TypeArray] with no
	// [Schema.ArrayItems].
	ConsiderArrayItems bool

	// MaxArrayItems bounds how many elements of each array are sampled
	// for item-schema inference.
	MaxArrayItems int
}

// NewConfig returns a new [Config] with default flag names and documented
// default bounds.
func NewConfig() *Config {
	f := Flags{
		MaxObjectKeys:          "max-object-keys",
		MaxStringSetValues:     "max-string-set-values",
		MaxStringSetVariantLen: "max-string-set-variant-length",
		ConsiderStringSet:      "consider-string-set",
		ConsiderArrayItems:     "consider-array-items",
		MaxArrayItems:          "max-array-items",
	}

	return &Config{
		Flags:                  f,
		MaxObjectKeys:          DefaultMaxObjectKeys,
		MaxStringSetValues:     DefaultMaxStringSetValues,
		MaxStringSetVariantLen: DefaultMaxStringSetVariantLen,
		ConsiderStringSet:      false,
		ConsiderArrayItems:     false,
		MaxArrayItems:          DefaultMaxArrayItems,
	}
}

// RegisterFlags adds schema inference flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.MaxObjectKeys, c.Flags.MaxObjectKeys, c.MaxObjectKeys,
		"maximum distinct object properties before degrading to an opaque large object")
	flags.IntVar(&c.MaxStringSetValues, c.Flags.MaxStringSetValues, c.MaxStringSetValues,
		"maximum distinct string literals tracked before degrading to an open string")
	flags.IntVar(&c.MaxStringSetVariantLen, c.Flags.MaxStringSetVariantLen, c.MaxStringSetVariantLen,
		"maximum length of a string literal tracked as a set member")
	flags.BoolVar(&c.ConsiderStringSet, c.Flags.ConsiderStringSet, c.ConsiderStringSet,
		"track literal string values as an enum-like set")
	flags.BoolVar(&c.ConsiderArrayItems, c.Flags.ConsiderArrayItems, c.ConsiderArrayItems,
		"recursively infer a schema for array elements")
	flags.IntVar(&c.MaxArrayItems, c.Flags.MaxArrayItems, c.MaxArrayItems,
		"maximum array elements sampled for item-schema inference")
}

// RegisterCompletions registers shell completions for schema inference
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.MaxObjectKeys,
		c.Flags.MaxStringSetValues,
		c.Flags.MaxStringSetVariantLen,
		c.Flags.MaxArrayItems,
	} {
		if err := cmd.RegisterFlagCompletionFunc(flag, noFileComp); err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.ConsiderStringSet,
		cobra.FixedCompletions([]string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ConsiderStringSet, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.ConsiderArrayItems,
		cobra.FixedCompletions([]string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ConsiderArrayItems, err)
	}

	return nil
}
