package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oasexplorer/flatten"
	"github.com/spf13/cobra"
)

func newRowsCmd(g *globalFlags) *cobra.Command {
	var (
		target targetFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "rows <spec>",
		Short: "Print a schema as a flat table of fields",
		Long: `Print a schema as one row per field, indented by nesting depth.

References and allOf are expanded in place. A reference already expanded
earlier in the table is shown once more as a circular row instead of being
expanded again. Arrays appear as "[" and "]" rows around their items.`,
		Example: `  oasexplorer rows --op showPetById openapi.yaml
  oasexplorer rows --op createPet --part request openapi.yaml
  oasexplorer rows --ref Order --format json openapi.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(format, FormatText, FormatJSON, FormatYAML); err != nil {
				return err
			}
			ws, t, err := g.resolveTarget(cmd, args[0], &target)
			if err != nil {
				return fmt.Errorf("rows: %w", err)
			}
			rows, err := flatten.FlattenWithOptions(t.Node, ws.Table, flatten.WithRootName(t.Name))
			if err != nil {
				return fmt.Errorf("rows: %w", err)
			}

			if format != FormatText {
				return RenderStructured(cmd.OutOrStdout(), rowRecords(rows), format)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, rowCells(r))
			}
			RenderTable(cmd.OutOrStdout(), []string{"FIELD", "TYPE", "REQUIRED", "IN", "FORMAT", "ENUM", "EXAMPLE", "CONSTRAINTS"}, table)
			return nil
		},
	}
	target.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format: text, json, yaml")
	return cmd
}

type rowRecord struct {
	Depth       int    `json:"depth"                 yaml:"depth"`
	Name        string `json:"name"                  yaml:"name"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Required    bool   `json:"required,omitempty"    yaml:"required,omitempty"`
	Nullable    bool   `json:"nullable,omitempty"    yaml:"nullable,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"`
	In          string `json:"in,omitempty"          yaml:"in,omitempty"`
	Format      string `json:"format,omitempty"      yaml:"format,omitempty"`
	Enum        string `json:"enum,omitempty"        yaml:"enum,omitempty"`
	Example     string `json:"example,omitempty"     yaml:"example,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Constraints string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Ref         string `json:"ref,omitempty"         yaml:"ref,omitempty"`
	Circular    bool   `json:"circular,omitempty"    yaml:"circular,omitempty"`
}

func rowRecords(rows []flatten.Row) []rowRecord {
	out := make([]rowRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowRecord{
			Depth:       r.Depth,
			Name:        r.Name,
			Type:        r.Type,
			Required:    r.Required,
			Nullable:    r.Nullable,
			Deprecated:  r.Deprecated,
			In:          r.ParamLocation.String(),
			Format:      r.Format,
			Enum:        r.Enum,
			Example:     r.Example,
			Description: r.Description,
			Constraints: constraints(r),
			Ref:         r.Ref,
			Circular:    r.Circular,
		})
	}
	return out
}

func rowCells(r flatten.Row) []string {
	name := strings.Repeat("  ", r.Depth) + r.Name
	if r.Structural {
		return []string{name, "", "", "", "", "", "", ""}
	}

	typ := r.Type
	if r.Nullable {
		typ += "?"
	}
	switch {
	case r.Circular:
		typ += " (circular)"
	case r.Deprecated:
		typ += " (deprecated)"
	}

	required := ""
	if r.Required {
		required = "yes"
	}
	return []string{name, typ, required, r.ParamLocation.String(), r.Format, r.Enum, r.Example, constraints(r)}
}

// constraints summarizes the numeric, length, item-count and pattern limits.
func constraints(r flatten.Row) string {
	var parts []string
	if s := rangeText(r.Minimum, r.Maximum, formatFloat); s != "" {
		parts = append(parts, "value "+s)
	}
	if s := rangeText(r.MinLength, r.MaxLength, strconv.Itoa); s != "" {
		parts = append(parts, "length "+s)
	}
	if s := rangeText(r.MinItems, r.MaxItems, strconv.Itoa); s != "" {
		parts = append(parts, "items "+s)
	}
	if r.Pattern != "" {
		parts = append(parts, "pattern "+r.Pattern)
	}
	return strings.Join(parts, "; ")
}

func rangeText[T any](lo, hi *T, text func(T) string) string {
	switch {
	case lo != nil && hi != nil:
		return text(*lo) + ".." + text(*hi)
	case lo != nil:
		return ">= " + text(*lo)
	case hi != nil:
		return "<= " + text(*hi)
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
