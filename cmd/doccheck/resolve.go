package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ygrebnov/doccheck/typedesc"
	"github.com/ygrebnov/doccheck/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve DESCRIPTION...",
	Short: "Show how type descriptions are interpreted",
	Long: `Classify each type description and, for type names, report whether the
name resolves to a known type or falls back to comparing type names.

Examples:
  doccheck resolve int "int | time.Duration" "array, shape (n, m)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, text := range args {
		if err := describe(out, text, ""); err != nil {
			return err
		}
	}
	return nil
}

func describe(out io.Writer, text, indent string) error {
	d, err := typedesc.Classify(text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s%q: %s\n", indent, text, d.Kind)

	switch d.Kind {
	case typedesc.Union:
		for _, b := range d.Branches {
			if err := describe(out, b, indent+"  "); err != nil {
				return err
			}
		}
	case typedesc.ShapeArray:
		fmt.Fprintf(out, "%s  dimensions: %d (%s)\n", indent, len(d.Axes), strings.Join(d.Axes, ", "))
	case typedesc.Explicit:
		res, err := types.Find(d.Name)
		if err != nil {
			return err
		}
		if res.Found() {
			fmt.Fprintf(out, "%s  %s %s%s\n", indent, checkMark, res.Type.Name(), goTypeOf(res.Type))
		} else {
			fmt.Fprintf(out, "%s  %s %v, comparing type names\n", indent, crossMark, res.Reason)
		}
	}
	return nil
}

// goTypeOf renders the Go type behind t, or nothing for kind-based types.
func goTypeOf(t types.Type) string {
	gt, ok := t.(interface{ ReflectType() reflect.Type })
	if !ok {
		return ""
	}
	return " (Go type " + gt.ReflectType().String() + ")"
}
