package commands

import (
	"fmt"
	"io"

	"github.com/erraggy/oasexplorer/aggregator"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// serviceRecord is the structured form of one service.
type serviceRecord struct {
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Operations  []operationRecord `json:"operations"            yaml:"operations"`
}

type operationRecord struct {
	Method      string   `json:"method"                 yaml:"method"`
	Path        string   `json:"path"                   yaml:"path"`
	OperationID string   `json:"operationId,omitempty"  yaml:"operationId,omitempty"`
	Summary     string   `json:"summary,omitempty"      yaml:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"         yaml:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"   yaml:"deprecated,omitempty"`
	Request     string   `json:"request,omitempty"      yaml:"request,omitempty"`
	Response    string   `json:"response,omitempty"     yaml:"response,omitempty"`
}

func newServicesCmd(g *globalFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "services <spec>",
		Short: "List operations grouped into services",
		Long: `List the operations of an OpenAPI document grouped into services.

Each tag becomes a service, in the order the document's tags section declares
them; untagged operations are listed under "default". The REQUEST column shows
the request body media type (or "params" for parameter-only requests), and the
RESPONSE column the selected status and media type.`,
		Example: `  oasexplorer services openapi.yaml
  oasexplorer services --format json openapi.yaml
  cat openapi.yaml | oasexplorer services -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(format, FormatText, FormatJSON, FormatYAML); err != nil {
				return err
			}
			ws, err := g.loadWorkspace(cmd, args[0])
			if err != nil {
				return fmt.Errorf("services: %w", err)
			}
			if ws.ServicesErr != nil {
				return fmt.Errorf("services: %w", ws.ServicesErr)
			}

			records := serviceRecords(ws.Services)
			if format != FormatText {
				return RenderStructured(cmd.OutOrStdout(), records, format)
			}
			renderServices(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format: text, json, yaml")
	return cmd
}

func serviceRecords(services []aggregator.Service) []serviceRecord {
	records := make([]serviceRecord, 0, len(services))
	for _, svc := range services {
		rec := serviceRecord{Name: svc.Name, Description: svc.Description}
		for _, op := range aggregator.Operations([]aggregator.Service{svc}) {
			rec.Operations = append(rec.Operations, operationRecord{
				Method:      op.Method,
				Path:        op.Path,
				OperationID: op.OperationID,
				Summary:     op.Summary,
				Tags:        op.Tags,
				Deprecated:  op.Deprecated,
				Request:     requestLabel(op),
				Response:    responseLabel(op),
			})
		}
		records = append(records, rec)
	}
	return records
}

func requestLabel(op aggregator.Operation) string {
	switch {
	case op.Request == nil:
		return ""
	case op.RequestMediaType != "":
		return op.RequestMediaType
	default:
		return "params"
	}
}

func responseLabel(op aggregator.Operation) string {
	if op.ResponseStatus == "" {
		return ""
	}
	if op.ResponseMediaType == "" {
		return op.ResponseStatus
	}
	return op.ResponseStatus + " " + op.ResponseMediaType
}

// renderServices prints one titled table per service.
func renderServices(w io.Writer, records []serviceRecord) {
	title := cases.Title(language.English, cases.NoLower)
	for i, rec := range records {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		heading := title.String(rec.Name)
		if rec.Description != "" {
			heading += ": " + rec.Description
		}
		_, _ = fmt.Fprintln(w, heading)

		rows := make([][]string, 0, len(rec.Operations))
		for _, op := range rec.Operations {
			id := op.OperationID
			if op.Deprecated {
				id += " (deprecated)"
			}
			rows = append(rows, []string{op.Method, op.Path, id, dash(op.Request), dash(op.Response)})
		}
		RenderTable(w, []string{"METHOD", "PATH", "OPERATION ID", "REQUEST", "RESPONSE"}, rows)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
