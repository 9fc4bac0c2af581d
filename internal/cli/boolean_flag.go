package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName              = "bool"
	booleanFlagTrueLiteral           = "true"
	booleanFlagAcceptedValuesListing = "true, false, yes, no, on, off, 1, 0"
	booleanFlagPrefix                = "--"
	booleanFlagTerminator            = "--"
	booleanFlagAssignmentFormat      = "--%s=%s"

	errorBooleanFlagUnboundFormat = "invalid boolean value %q for flag %q"
	errorBooleanFlagValueFormat   = "invalid boolean value %q for --%s; accepted values: %s"
)

// booleanFlagLiterals maps every accepted spelling to its value.
var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// booleanFlagValue is a pflag.Value accepting the spellings in booleanFlagLiterals.
type booleanFlagValue struct {
	target  *bool
	flagKey string
}

func (value *booleanFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf(errorBooleanFlagUnboundFormat, input, value.flagKey)
	}
	parsed, isLiteral := parseBooleanLiteral(input)
	if !isLiteral {
		return fmt.Errorf(errorBooleanFlagValueFormat, input, value.flagKey, booleanFlagAcceptedValuesListing)
	}
	*value.target = parsed
	return nil
}

// parseBooleanLiteral resolves input case-insensitively. Blank input means true.
func parseBooleanLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = booleanFlagTrueLiteral
	}
	parsed, isLiteral := booleanFlagLiterals[normalized]
	return parsed, isLiteral
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return booleanFlagTrueLiteral
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

// registerBooleanFlag defines a boolean flag that may be given bare, as --name=value, or as --name value.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagValue := &booleanFlagValue{
		target:  target,
		flagKey: name,
	}
	flagSet.Var(flagValue, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue)
		lookup.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments joins "--name value" pairs of boolean flags into "--name=value"
// so pflag does not read the value as a positional path. Arguments after "--" are left untouched.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := map[string]struct{}{}
	collectBooleanFlagNames(command, booleanFlags)
	if len(booleanFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	index := 0
	for index < len(arguments) {
		currentArgument := arguments[index]
		if currentArgument == booleanFlagTerminator {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if strings.HasPrefix(currentArgument, booleanFlagPrefix) && !strings.Contains(currentArgument, "=") {
			flagName := strings.TrimPrefix(currentArgument, booleanFlagPrefix)
			if _, exists := booleanFlags[flagName]; exists && index+1 < len(arguments) {
				nextArgument := arguments[index+1]
				if strings.TrimSpace(nextArgument) != "" && !strings.HasPrefix(nextArgument, "-") {
					if _, isLiteral := parseBooleanLiteral(nextArgument); isLiteral {
						normalized = append(normalized, fmt.Sprintf(booleanFlagAssignmentFormat, flagName, nextArgument))
						index += 2
						continue
					}
				}
			}
		}
		normalized = append(normalized, currentArgument)
		index++
	}
	return normalized
}

// collectBooleanFlagNames gathers the boolean flag names of command and all of its subcommands.
func collectBooleanFlagNames(command *cobra.Command, target map[string]struct{}) {
	if command == nil || target == nil {
		return
	}
	visit := func(flagSet *pflag.FlagSet) {
		if flagSet == nil {
			return
		}
		flagSet.VisitAll(func(flag *pflag.Flag) {
			if flag == nil || flag.Value == nil {
				return
			}
			if flag.Value.Type() == booleanFlagTypeName {
				target[flag.Name] = struct{}{}
			}
		})
	}
	visit(command.PersistentFlags())
	visit(command.Flags())
	for _, child := range command.Commands() {
		collectBooleanFlagNames(child, target)
	}
}
