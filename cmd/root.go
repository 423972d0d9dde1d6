package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kubechat/internal/color"
	"kubechat/pkg/logging"
)

// logLevel is the persistent verbosity flag, applied before any subcommand
// runs. All logging goes to stderr: the serve command's stdout belongs to
// the MCP protocol.
var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kubechat",
	Short: "Chat with your Kubernetes cluster through a local model",
	Long: `kubechat bridges a Kubernetes cluster and an OpenAI-compatible chat model.

It ships a stdio MCP tool server exposing read-only kubectl commands
('kubechat serve') and a client that hands those tools to the model,
executes the tool call the model picks, and prints the answer
('kubechat ask', 'kubechat chat').`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed connections, rejected tool calls)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(logLevel), os.Stderr)
		// Pin the detected background once so adaptive colors stay stable.
		color.Initialize(lipgloss.HasDarkBackground())
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "kubechat version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log verbosity (debug, info, warn, error)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
