//go:build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/discord-resource/pkg/discordclient"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Token     string
	ChannelID id.ChannelID
	DresPath  string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	channelID, _ := strconv.ParseUint(os.Getenv("DISCORD_CHANNEL_ID"), 10, 64)

	return &TestConfig{
		Token:     os.Getenv("DISCORD_TOKEN"),
		ChannelID: id.NewChannelID(channelID),
		DresPath:  getDresPath(),
		Verbose:   os.Getenv("DRES_VERBOSE") == "true",
	}
}

func getDresPath() string {
	if path := os.Getenv("DRES_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../dres", "./dres", "../dres"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "dres"
}

// SkipIfMissingConfig skips the test unless a token and a channel are set.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("DISCORD_TOKEN not set, skipping integration test")
	}

	if config.ChannelID.IsZero() {
		t.Skip("DISCORD_CHANNEL_ID not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the dres binary can't be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.DresPath); err != nil {
		t.Skipf("dres binary not found at %s, skipping integration test", config.DresPath)
	}
}

// NewRoot creates a resource tree authenticated with the bot token.
func (config *TestConfig) NewRoot(ctx context.Context) (resource.Root, error) {
	return discordclient.NewWithBotToken(ctx, config.Token)
}

// CommandRunner runs dres with an isolated home directory.
type CommandRunner struct {
	config *TestConfig
	home   string
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		home:   t.TempDir(),
		t:      t,
	}
}

// Run executes a dres command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.DresPath, args...) // #nosec G204 -- test binary
	cmd.Env = append(os.Environ(),
		"HOME="+runner.home,
		"DRES_TOKEN="+runner.config.Token,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.DresPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestContent creates unique message content.
func GenerateTestContent(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput verifies command output looks like JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}
