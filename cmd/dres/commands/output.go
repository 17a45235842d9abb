package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
)

// tableColumns are the fields shown when a list is rendered as a table, in
// order, if any element has them.
var tableColumns = []string{"id", "name", "username", "type", "code", "content", "position"}

// DryRun is what --dry-run prints instead of executing a request.
type DryRun struct {
	Operation string              `json:"operation"        yaml:"operation"`
	Method    string              `json:"method"           yaml:"method"`
	Path      string              `json:"path"             yaml:"path"`
	Params    map[string]string   `json:"params,omitempty" yaml:"params,omitempty"`
	Query     map[string][]string `json:"query,omitempty"  yaml:"query,omitempty"`
	Reason    string              `json:"reason,omitempty" yaml:"reason,omitempty"`
	Body      interface{}         `json:"body,omitempty"   yaml:"body,omitempty"`
}

// ValidateOutput reports whether output names a supported format.
func ValidateOutput(output string) error {
	switch output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, output)
	}
}

// render writes v as JSON or YAML, or calls rows to fill a Property/Value
// table.
func render(w io.Writer, v interface{}, rows func(table *tablewriter.Table)) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(v)
	default:
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")
		rows(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// execute runs a request built by a leaf operation and prints the result. A
// validation error from the leaf operation is returned as is.
func execute(cmd *cobra.Command, req *discord.Request, err error) error {
	if err != nil {
		return err
	}

	if viper.GetBool("dry-run") {
		if reason := viper.GetString("reason"); reason != "" {
			err = discord.ReasonInterceptor(reason)(commandContext(cmd), req)
			if err != nil {
				return err
			}
		}

		return renderDryRun(cmd.OutOrStdout(), req)
	}

	resp, err := req.Exec(commandContext(cmd))
	if err != nil {
		return err
	}

	return renderResponse(cmd.OutOrStdout(), resp)
}

// executeEach runs one request per argument and reports every failure
// together.
func executeEach(cmd *cobra.Command, args []string, build func(arg string) (*discord.Request, error)) error {
	var result *multierror.Error

	for _, arg := range args {
		req, err := build(arg)
		if err == nil {
			err = execute(cmd, req, nil)
		}

		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", arg, err))
		}
	}

	return result.ErrorOrNil()
}

func newDryRun(req *discord.Request) DryRun {
	route := req.Route().Redacted()

	dryRun := DryRun{
		Operation: route.Name,
		Method:    route.Method,
		Path:      req.Route().RedactedPath(),
		Query:     req.Values(),
		Body:      req.Payload(),
		Reason:    req.Headers().Get(discord.HeaderAuditLogReason),
	}

	if reason, err := url.PathUnescape(dryRun.Reason); err == nil {
		dryRun.Reason = reason
	}

	if len(route.Params) > 0 {
		dryRun.Params = make(map[string]string, len(route.Params))
		for _, p := range route.Params {
			dryRun.Params[p.Name] = p.Value
		}
	}

	return dryRun
}

func renderDryRun(w io.Writer, req *discord.Request) error {
	dryRun := newDryRun(req)

	return render(w, dryRun, func(table *tablewriter.Table) {
		_ = table.Append("Operation", dryRun.Operation)
		_ = table.Append("Method", dryRun.Method)
		_ = table.Append("Path", dryRun.Path)

		for _, name := range sortedKeys(dryRun.Params) {
			_ = table.Append("Param "+name, dryRun.Params[name])
		}

		for _, name := range sortedKeys(dryRun.Query) {
			_ = table.Append("Query "+name, strings.Join(dryRun.Query[name], ","))
		}

		if dryRun.Reason != "" {
			_ = table.Append("Reason", dryRun.Reason)
		}

		if dryRun.Body != nil {
			_ = table.Append("Body", compactJSON(dryRun.Body))
		}
	})
}

func renderResponse(w io.Writer, resp *discord.Response) error {
	var body interface{}

	err := resp.Decode(&body)
	if err != nil {
		return err
	}

	if body == nil {
		body = map[string]interface{}{"status": resp.StatusCode, "result": http.StatusText(resp.StatusCode)}
	}

	switch viper.GetString("output") {
	case constants.FormatJSON, constants.FormatYAML:
		return render(w, body, nil)
	}

	list, ok := body.([]interface{})
	if !ok {
		return render(w, body, func(table *tablewriter.Table) {
			object, _ := body.(map[string]interface{})
			for _, key := range sortedKeys(object) {
				_ = table.Append(key, scalar(object[key]))
			}
		})
	}

	return renderList(w, list)
}

func renderList(w io.Writer, list []interface{}) error {
	columns := listColumns(list)
	table := tablewriter.NewWriter(w)

	if len(columns) == 0 {
		table.Header("Value")

		for _, item := range list {
			_ = table.Append(compactJSON(item))
		}
	} else {
		header := make([]interface{}, len(columns))
		for i, column := range columns {
			header[i] = strings.ToUpper(column)
		}

		table.Header(header...)

		for _, item := range list {
			object, _ := item.(map[string]interface{})
			row := make([]string, len(columns))

			for i, column := range columns {
				row[i] = scalar(object[column])
			}

			_ = table.Append(row)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func listColumns(list []interface{}) []string {
	var columns []string

	for _, column := range tableColumns {
		for _, item := range list {
			object, ok := item.(map[string]interface{})
			if !ok {
				continue
			}

			if _, found := object[column]; found {
				columns = append(columns, column)

				break
			}
		}
	}

	return columns
}

func scalar(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case map[string]interface{}, []interface{}:
		return compactJSON(value)
	default:
		return fmt.Sprint(value)
	}
}

func compactJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
