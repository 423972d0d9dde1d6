// Package color provides terminal color theming for kubechat.
//
// Colors are organized semantically (primary, success, warning, error,
// muted) with light and dark variants; lipgloss resolves them against the
// detected terminal background and honors NO_COLOR. The exported styles are
// what the CLI commands use to render prompts, tool names, catalogs, and
// errors consistently.
//
// # Usage Example
//
//	fmt.Println(color.ToolNameStyle.Render("kubectl_get_resource"))
//	fmt.Fprintln(os.Stderr, color.ErrorStyle.Render("Error: "+err.Error()))
//
// Initialize pins the background mode once at startup so adaptive colors
// resolve the same way for the whole process.
package color
