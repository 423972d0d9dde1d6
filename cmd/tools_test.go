package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"kubechat/internal/kubectl"
)

func TestPrintToolTableHeader(t *testing.T) {
	var buf bytes.Buffer

	printToolTable(&buf, kubectl.Definitions())

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Errorf("Expected NAME header, got: %q", output)
	}
	if !strings.Contains(output, "DESCRIPTION") {
		t.Errorf("Expected DESCRIPTION header, got: %q", output)
	}
}

func TestPrintToolTableListsCatalog(t *testing.T) {
	var buf bytes.Buffer

	printToolTable(&buf, kubectl.Definitions())

	output := buf.String()
	for _, name := range []string{
		kubectl.ToolGetAPIResources,
		kubectl.ToolGetResource,
		kubectl.ToolDescribeResource,
	} {
		if !strings.Contains(output, name) {
			t.Errorf("Expected tool %s in table, got: %q", name, output)
		}
	}
}

func TestPrintToolTableTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("verbose ", 30) + "TAIL"
	tool := mcp.NewTool("example_tool", mcp.WithDescription(long))

	var buf bytes.Buffer
	printToolTable(&buf, []mcp.Tool{tool})

	output := buf.String()
	if !strings.Contains(output, "…") {
		t.Errorf("Expected truncated description, got: %q", output)
	}
	if strings.Contains(output, "TAIL") {
		t.Errorf("Expected tail of long description to be cut, got: %q", output)
	}
}

func TestPrintToolTableFlattensMultilineDescriptions(t *testing.T) {
	tool := mcp.NewTool("example_tool",
		mcp.WithDescription("First line.\nSecond line."))

	var buf bytes.Buffer
	printToolTable(&buf, []mcp.Tool{tool})

	output := buf.String()
	if !strings.Contains(output, "First line. Second line.") {
		t.Errorf("Expected flattened description, got: %q", output)
	}
}

func TestPrintToolTableEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer

	printToolTable(&buf, nil)

	// Header only
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("Expected header line only, got %d lines", len(lines))
	}
}
