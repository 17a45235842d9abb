package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// resetViper clears global viper state before and after a test.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// setDryRun configures viper for a JSON dry run.
func setDryRun(t *testing.T) {
	t.Helper()

	resetViper(t)
	viper.Set("dry-run", true)
	viper.Set("output", "json")
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// decodeDryRuns reads every JSON dry run written to output.
func decodeDryRuns(t *testing.T, output string) []DryRun {
	t.Helper()

	var dryRuns []DryRun

	decoder := json.NewDecoder(bytes.NewBufferString(output))

	for {
		var dryRun DryRun

		err := decoder.Decode(&dryRun)
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		dryRuns = append(dryRuns, dryRun)
	}

	return dryRuns
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}

	return nil
}
