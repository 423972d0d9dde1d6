package kubectl

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kubechat/pkg/logging"
)

// Tools bundles the kubectl tool handlers around a single Runner.
type Tools struct {
	runner Runner
}

// NewTools creates the handler set for the given runner.
func NewTools(runner Runner) *Tools {
	return &Tools{runner: runner}
}

// ServerTools returns the tool descriptors bound to their handlers, in
// registration order.
func (t *Tools) ServerTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: getAPIResourcesTool(), Handler: t.HandleGetAPIResources},
		{Tool: getResourceTool(), Handler: t.HandleGetResource},
		{Tool: describeResourceTool(), Handler: t.HandleDescribeResource},
	}
}

// HandleGetAPIResources handles the kubectl_get_api_resources tool call.
func (t *Tools) HandleGetAPIResources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.run(ctx, "api-resources")
}

// HandleGetResource handles the kubectl_get_resource tool call.
func (t *Tools) HandleGetResource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resource, err := req.RequireString("resource")
	if err != nil {
		return mcp.NewToolResultError("resource is required"), nil
	}

	args := []string{"get", resource}
	if namespace := req.GetString("namespace", ""); namespace != "" {
		args = append(args, "-n", namespace)
	}
	if format := req.GetString("output_format", ""); format != "" {
		args = append(args, "-o", format)
	}
	if selector := req.GetString("selector", ""); selector != "" {
		args = append(args, "--selector", selector)
	}

	return t.run(ctx, args...)
}

// HandleDescribeResource handles the kubectl_describe_resource tool call.
func (t *Tools) HandleDescribeResource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resourceType, err := req.RequireString("resource_type")
	if err != nil {
		return mcp.NewToolResultError("resource_type is required"), nil
	}

	args := []string{"describe", resourceType}
	if name := req.GetString("name", ""); name != "" {
		args = append(args, name)
	}
	if namespace := req.GetString("namespace", ""); namespace != "" {
		args = append(args, "-n", namespace)
	}
	if selector := req.GetString("selector", ""); selector != "" {
		args = append(args, "--selector", selector)
	}

	return t.run(ctx, args...)
}

// run executes kubectl and translates the Result into a tool result. Non-zero
// exits and spawn failures become error results; kubectl's "No resources
// found" notice, which arrives on stderr with exit zero, is still a success.
func (t *Tools) run(ctx context.Context, args ...string) (*mcp.CallToolResult, error) {
	result := t.runner.Run(ctx, args...)

	switch {
	case result.Err != nil:
		logging.Error(logSubsystem, result.Err, "kubectl %s failed to execute", args[0])
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", result.Err)), nil

	case result.ExitCode != 0:
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = strings.TrimSpace(result.Stdout)
		}
		logging.Debug(logSubsystem, "kubectl %s exited with code %d", args[0], result.ExitCode)
		return mcp.NewToolResultError(fmt.Sprintf("Error: kubectl exited with code %d: %s", result.ExitCode, detail)), nil

	case strings.TrimSpace(result.Stdout) == "":
		if notice := strings.TrimSpace(result.Stderr); notice != "" {
			return mcp.NewToolResultText(notice), nil
		}
		return mcp.NewToolResultText("(no output)"), nil

	default:
		return mcp.NewToolResultText(result.Stdout), nil
	}
}
