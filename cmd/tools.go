package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"kubechat/internal/agent"
	"kubechat/internal/color"
	"kubechat/internal/config"
)

// descriptionWidth caps the DESCRIPTION column so each tool stays on one line.
const descriptionWidth = 80

var (
	toolsJSON   bool
	toolsServer []string
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	Long: `Connects to the tool server, discovers its tool catalog, and prints it.

By default this renders a table with tool names and descriptions;
--json prints the raw MCP tool descriptors instead, which is handy for
inspecting input schemas.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session := agent.NewSession(sessionOptions(&cfg, toolsServer))
	defer session.Close()

	ctx := cmd.Context()
	if err := session.Connect(ctx); err != nil {
		return err
	}
	tools, err := session.Tools(ctx)
	if err != nil {
		return err
	}

	if toolsJSON {
		data, err := json.MarshalIndent(tools, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printToolTable(cmd.OutOrStdout(), tools)
	return nil
}

// printToolTable renders the catalog as NAME and DESCRIPTION columns.
// Names set the column width; descriptions are flattened to one line and
// truncated.
func printToolTable(w io.Writer, tools []mcp.Tool) {
	nameWidth := runewidth.StringWidth("NAME")
	for _, tool := range tools {
		if n := runewidth.StringWidth(tool.Name); n > nameWidth {
			nameWidth = n
		}
	}

	fmt.Fprintf(w, "%s  %s\n",
		color.HeaderStyle.Render(runewidth.FillRight("NAME", nameWidth)),
		color.HeaderStyle.Render("DESCRIPTION"))

	for _, tool := range tools {
		description := strings.Join(strings.Fields(tool.Description), " ")
		description = runewidth.Truncate(description, descriptionWidth, "…")
		fmt.Fprintf(w, "%s  %s\n",
			color.ToolNameStyle.Render(runewidth.FillRight(tool.Name, nameWidth)),
			description)
	}
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print raw MCP tool descriptors as JSON")
	toolsCmd.Flags().StringSliceVar(&toolsServer, "server", nil, "Tool server command to spawn (default: this binary with 'serve')")
}
