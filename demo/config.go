package demo

import (
	"strconv"
	"strings"

	"github.com/eaugeas/dstruct/config"
	"github.com/eaugeas/dstruct/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagValues   = "values"
	flagRemove   = "remove"
	flagSearch   = "search"
	flagPostfix  = "postfix"
	flagBrackets = "brackets"
	flagReverse  = "reverse"
	flagLogLevel = "log-level"
)

// Options are the inputs of a demo run
type Options struct {
	// Values inserted into the tree, in order
	Values []int

	// Remove are the values removed from the tree after
	// it has been populated
	Remove []int

	// Search are the values looked up in the tree
	Search []int

	// Postfix is the expression evaluated with the stack
	Postfix string

	// Brackets are the expressions checked for balance
	Brackets []string

	// Reverse is the string reversed with the stack
	Reverse string

	// LogLevel is the minimum level of the log entries
	LogLevel logrus.Level
}

// DefaultOptions reproduces the classic walkthrough of
// the containers
var DefaultOptions = Options{
	Values:   []int{50, 30, 70, 20, 40, 60, 80},
	Remove:   []int{30},
	Search:   []int{40, 25},
	Postfix:  "3 4 + 2 * 7 /",
	Brackets: []string{"()", "()[]{}", "([{}])", "(()", ")(", "([)]"},
	Reverse:  "Hello World!",
	LogLevel: logrus.InfoLevel,
}

// Bind implementation of config.Binder for Options
func (o *Options) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.StringSlice(flagValues, formatInts(DefaultOptions.Values), "values inserted into the tree")
	flags.StringSlice(flagRemove, formatInts(DefaultOptions.Remove), "values removed from the tree")
	flags.StringSlice(flagSearch, formatInts(DefaultOptions.Search), "values searched in the tree")
	flags.String(flagPostfix, DefaultOptions.Postfix, "postfix expression to evaluate")
	flags.StringArray(flagBrackets, DefaultOptions.Brackets, "expressions to check for balanced brackets")
	flags.String(flagReverse, DefaultOptions.Reverse, "string to reverse")
	flags.String(flagLogLevel, DefaultOptions.LogLevel.String(), "log level")
	return nil
}

// Configure implementation of config.Binder for Options
func (o *Options) Configure(v *viper.Viper) error {
	var err error

	if o.Values, err = parseInts(flagValues, v.GetStringSlice(flagValues)); err != nil {
		return err
	}
	if o.Remove, err = parseInts(flagRemove, v.GetStringSlice(flagRemove)); err != nil {
		return err
	}
	if o.Search, err = parseInts(flagSearch, v.GetStringSlice(flagSearch)); err != nil {
		return err
	}

	o.Postfix = v.GetString(flagPostfix)
	o.Brackets = v.GetStringSlice(flagBrackets)
	o.Reverse = v.GetString(flagReverse)

	level, err := logrus.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return errors.Errorf(errors.ErrorCodeInvalidValue, "invalid %s: %s", flagLogLevel, err.Error())
	}
	o.LogLevel = level

	return nil
}

// Config is the configuration of the dstruct binary
type Config struct {
	Options Options
}

func (c *Config) Use() string {
	return "dstruct"
}

func (c *Config) EnvPrefix() string {
	return "DSTRUCT"
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Options}
}

// parseInts accepts both repeated values and comma or
// whitespace separated lists, as they come from flags and
// environment variables respectively
func parseInts(name string, raw []string) ([]int, error) {
	tokens := lo.FlatMap(raw, func(s string, _ int) []string {
		return strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		})
	})

	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, errors.Errorf(errors.ErrorCodeInvalidValue, "invalid %s value %q", name, token)
		}

		values = append(values, v)
	}

	return values, nil
}

func formatInts(values []int) []string {
	return lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	})
}
