package commands

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
)

// hclogAdapter exposes an hclog.Logger as a discord.Logger.
type hclogAdapter struct {
	logger hclog.Logger
}

var _ discord.Logger = (*hclogAdapter)(nil)

// NewLogger returns the CLI logger. --verbose lowers the level to debug.
func NewLogger(output io.Writer) discord.Logger {
	if output == nil {
		output = os.Stderr
	}

	level := hclog.Warn
	if viper.GetBool("verbose") {
		level = hclog.Debug
	}

	return &hclogAdapter{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "dres",
			Level:  level,
			Output: output,
		}),
	}
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

// flatten turns a field map into hclog's alternating key/value arguments,
// sorted by key so log lines are stable.
func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)

	for _, key := range sortedKeys(fields) {
		args = append(args, key, fields[key])
	}

	return args
}
