package kubectl

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names exposed by the server. They are part of the wire contract;
// clients dispatch on them verbatim.
const (
	ToolGetAPIResources  = "kubectl_get_api_resources"
	ToolGetResource      = "kubectl_get_resource"
	ToolDescribeResource = "kubectl_describe_resource"
)

// ServerInstructions is advertised to clients during the MCP handshake.
const ServerInstructions = "This server provides read-only Kubernetes cluster inspection tools."

func readOnlyAnnotation(title string) mcp.ToolOption {
	return mcp.WithToolAnnotation(mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
	})
}

func getAPIResourcesTool() mcp.Tool {
	return mcp.NewTool(ToolGetAPIResources,
		mcp.WithDescription("List all supported API resource types on the Kubernetes cluster, including their names, short names, API group and whether they are namespaced."),
		readOnlyAnnotation("List API resources"),
	)
}

func getResourceTool() mcp.Tool {
	return mcp.NewTool(ToolGetResource,
		mcp.WithDescription("Get Kubernetes resources of a given type. Returns the standard kubectl table output."),
		readOnlyAnnotation("Get resources"),
		mcp.WithString("resource",
			mcp.Required(),
			mcp.Description("Resource type to get, e.g. pods, nodes, deployments"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace to query; the cluster default namespace is used when omitted"),
		),
		mcp.WithString("selector",
			mcp.Description("Label selector to filter resources, e.g. app=nginx"),
		),
		mcp.WithString("output_format",
			mcp.Description("kubectl output format"),
			mcp.Enum("wide", "json", "yaml", "name"),
		),
	)
}

func describeResourceTool() mcp.Tool {
	return mcp.NewTool(ToolDescribeResource,
		mcp.WithDescription("Describe a Kubernetes resource or a class of resources, showing detailed state and recent events."),
		readOnlyAnnotation("Describe resources"),
		mcp.WithString("resource_type",
			mcp.Required(),
			mcp.Description("Resource type to describe, e.g. pod, node, deployment"),
		),
		mcp.WithString("name",
			mcp.Description("Name of a specific resource; all resources of the type are described when omitted"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace of the resource"),
		),
		mcp.WithString("selector",
			mcp.Description("Label selector to filter resources"),
		),
	)
}

// Definitions returns the tool descriptors in registration order. Discovery
// must present the same catalog in the same order every time, so the order
// here is fixed.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		getAPIResourcesTool(),
		getResourceTool(),
		describeResourceTool(),
	}
}
