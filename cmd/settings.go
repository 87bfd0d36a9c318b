package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"confkit/pkg/settings"
)

// settingTypes are the values accepted by `settings get --type`.
var settingTypes = []string{"string", "bool", "int", "int16", "int32", "int64", "float32", "float64", "duration", "time"}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"setting", "appsettings"},
		Short:   "List or read application settings",
	}
	cmd.AddCommand(newSettingsListCmd(opts))
	cmd.AddCommand(newSettingsGetCmd(opts))
	return cmd
}

func newSettingsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all application settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			return env.formatter.FormatSettings(env.store.AppSettings())
		},
	}
}

func newSettingsGetCmd(opts *rootOptions) *cobra.Command {
	var (
		typeName string
		def      string
	)

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print one application setting, converted to a type",
		Long: `Print one application setting.

With --type the value is converted first and printed in its canonical form;
conversion failures are reported. With --default, a missing or unconvertible
setting yields the default instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}

			value, err := getSetting(env.store.AppSettings(), args[0], typeName, def, cmd.Flags().Changed("default"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "string", fmt.Sprintf("Value type: one of %v", settingTypes))
	cmd.Flags().StringVar(&def, "default", "", "Value to print when the setting is missing or cannot be converted")
	return cmd
}

// getSetting reads key from m as typeName. When hasDefault is set the
// default text is parsed as the same type and used as the fallback.
func getSetting(m settings.Map, key, typeName, def string, hasDefault bool) (string, error) {
	switch typeName {
	case "string":
		return lookup[string](m, key, def, hasDefault)
	case "bool":
		return lookup[bool](m, key, def, hasDefault)
	case "int":
		return lookup[int](m, key, def, hasDefault)
	case "int16":
		return lookup[int16](m, key, def, hasDefault)
	case "int32":
		return lookup[int32](m, key, def, hasDefault)
	case "int64":
		return lookup[int64](m, key, def, hasDefault)
	case "float32":
		return lookup[float32](m, key, def, hasDefault)
	case "float64", "float":
		return lookup[float64](m, key, def, hasDefault)
	case "duration":
		return lookup[time.Duration](m, key, def, hasDefault)
	case "time":
		v, err := lookupValue[time.Time](m, key, def, hasDefault)
		if err != nil {
			return "", err
		}
		return v.Format(time.RFC3339Nano), nil
	}
	return "", fmt.Errorf("unknown type %q (expected one of %v)", typeName, settingTypes)
}

func lookup[T settings.Value](m settings.Map, key, def string, hasDefault bool) (string, error) {
	v, err := lookupValue[T](m, key, def, hasDefault)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

func lookupValue[T settings.Value](m settings.Map, key, def string, hasDefault bool) (T, error) {
	if !hasDefault {
		return settings.AsType[T](m, key)
	}
	fallback, err := settings.Parse[T](def)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid --default %q: %w", def, err)
	}
	return settings.AsTypeOr(m, key, fallback)
}
