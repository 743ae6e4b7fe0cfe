package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/toolbelt/pkg/adapters/memory"
	mcpAdapter "github.com/aretw0/toolbelt/pkg/adapters/mcp"
	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/aretw0/toolbelt/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, opts ...mcpAdapter.Option) *mcpAdapter.Server {
	t.Helper()
	reg := registry.NewRegistry()
	require.NoError(t, tools.Register(reg))
	return mcpAdapter.NewServer(reg, "test", opts...)
}

func callTool(t *testing.T, s *mcpAdapter.Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.MCPServer().GetTool(name)
	require.NotNil(t, tool, name)

	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestServer_ExposesEveryTool(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, tools.Register(reg))
	s := mcpAdapter.NewServer(reg, "test")

	exposed := s.MCPServer().ListTools()
	assert.Len(t, exposed, len(reg.List()))

	clamp := exposed["number.clamp"]
	require.NotNil(t, clamp)
	assert.ElementsMatch(t, []string{"value", "min", "max"}, clamp.Tool.InputSchema.Required)
	assert.Contains(t, clamp.Tool.InputSchema.Properties, "value")
}

func TestServer_CallTool(t *testing.T) {
	s := newServer(t)

	res := callTool(t, s, "text.initials", map[string]any{"value": "ada lovelace"})
	assert.False(t, res.IsError)
	assert.Equal(t, `"AL"`, text(t, res))

	res = callTool(t, s, "array.chunk", map[string]any{"values": []any{1, 2, 3}, "size": 2})
	assert.JSONEq(t, `[[1, 2], [3]]`, text(t, res))
}

func TestServer_ToolErrorsAreResults(t *testing.T) {
	s := newServer(t)

	res := callTool(t, s, "array.steps", map[string]any{"min": 0, "max": 1, "steps": 1})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), tools.ErrInvalidArguments.Error())
}

func readResource(t *testing.T, s *mcpAdapter.Server, uri string) string {
	t.Helper()
	msg := `{"jsonrpc":"2.0","id":1,"method":"resources/read","params":{"uri":"` + uri + `"}}`
	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Contents []struct {
				Text string `json:"text"`
			} `json:"contents"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	require.Len(t, decoded.Result.Contents, 1, string(raw))
	return decoded.Result.Contents[0].Text
}

func TestServer_Resources(t *testing.T) {
	brand, err := color.ParsePalette("brand", []string{"#112233"})
	require.NoError(t, err)
	s := newServer(t, mcpAdapter.WithPalettes(memory.NewPalettes(brand)))

	var catalogue []registry.Tool
	require.NoError(t, json.Unmarshal([]byte(readResource(t, s, mcpAdapter.CatalogueURI)), &catalogue))
	assert.NotEmpty(t, catalogue)
	assert.Equal(t, "array.chunk", catalogue[0].Name)

	assert.JSONEq(t, `{"brand": ["#112233"]}`, readResource(t, s, mcpAdapter.PalettesURI))
}
