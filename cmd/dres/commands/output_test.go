package commands

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
)

func TestRenderResponse(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		resp     *discord.Response
		contains []string
	}{
		{
			name:     "no content",
			output:   "json",
			resp:     &discord.Response{StatusCode: http.StatusNoContent},
			contains: []string{`"status": 204`, `"result": "No Content"`},
		},
		{
			name:     "object as yaml",
			output:   "yaml",
			resp:     &discord.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":"123","name":"general"}`)},
			contains: []string{"id: \"123\"", "name: general"},
		},
		{
			name:     "object as table",
			output:   "table",
			resp:     &discord.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":"123","topic":{"a":1}}`)},
			contains: []string{"123", `{"a":1}`},
		},
		{
			name:   "list as table",
			output: "table",
			resp: &discord.Response{StatusCode: http.StatusOK,
				Body: []byte(`[{"id":"1","name":"general","nsfw":false},{"id":"2","name":"random"}]`)},
			contains: []string{"ID", "NAME", "general", "random"},
		},
		{
			name:     "scalar list as table",
			output:   "table",
			resp:     &discord.Response{StatusCode: http.StatusOK, Body: []byte(`["a","b"]`)},
			contains: []string{`"a"`, `"b"`},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			resetViper(t)
			viper.Set("output", testCase.output)

			var out bytes.Buffer

			require.NoError(t, renderResponse(&out, testCase.resp))

			for _, want := range testCase.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestListColumns(t *testing.T) {
	t.Parallel()

	list := []interface{}{
		map[string]interface{}{"id": "1", "position": 3},
		map[string]interface{}{"id": "2", "name": "mods"},
		"not an object",
	}

	assert.Equal(t, []string{"id", "name", "position"}, listColumns(list))
	assert.Empty(t, listColumns([]interface{}{"a", "b"}))
}

func TestValidateOutput(t *testing.T) {
	t.Parallel()

	for _, output := range []string{"table", "json", "yaml"} {
		assert.NoError(t, ValidateOutput(output))
	}

	assert.Error(t, ValidateOutput("xml"))
}
