package agent

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"kubechat/internal/llm"
)

// FunctionSpecs converts MCP tool descriptors into chat-completion function
// specs. Names, descriptions, and input schemas pass through verbatim, in
// catalog order.
func FunctionSpecs(tools []mcp.Tool) []llm.Tool {
	specs := make([]llm.Tool, 0, len(tools))
	for _, tool := range tools {
		parameters := map[string]interface{}{
			"type": tool.InputSchema.Type,
		}
		if len(tool.InputSchema.Properties) > 0 {
			parameters["properties"] = tool.InputSchema.Properties
		}
		if len(tool.InputSchema.Required) > 0 {
			parameters["required"] = tool.InputSchema.Required
		}
		specs = append(specs, llm.Tool{
			Type: "function",
			Function: llm.ToolFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  parameters,
			},
		})
	}
	return specs
}

// ValidateArguments checks args against the tool's input schema before
// dispatch. Every schema-required property must be present, and properties
// the schema declares as strings must arrive as JSON strings. Arguments the
// schema does not name pass through untouched.
func ValidateArguments(tool mcp.Tool, args map[string]interface{}) error {
	for _, required := range tool.InputSchema.Required {
		if _, ok := args[required]; !ok {
			return &MissingArgumentError{Tool: tool.Name, Argument: required}
		}
	}

	for name, value := range args {
		prop, ok := tool.InputSchema.Properties[name]
		if !ok {
			continue
		}
		spec, ok := prop.(map[string]interface{})
		if !ok {
			continue
		}
		declared, _ := spec["type"].(string)
		if declared != "string" {
			continue
		}
		if _, ok := value.(string); !ok {
			return &ArgumentTypeError{Tool: tool.Name, Argument: name, Want: "string", Got: jsonTypeName(value)}
		}
	}

	return nil
}

// jsonTypeName names a decoded JSON value's type the way a schema would.
func jsonTypeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
