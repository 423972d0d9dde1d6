package cmd

import (
	"github.com/spf13/cobra"

	"kubechat/internal/agent"
	"kubechat/internal/config"
)

var (
	askEndpoint       string
	askModel          string
	askAPIKey         string
	askServer         []string
	askShowToolOutput bool
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Ask the model one question about your cluster",
	Long: `Runs a single prompt round trip: the model sees the kubectl tools,
requests at most one call, kubechat executes it against the cluster,
and the model phrases the answer from the output.

The endpoint must speak the OpenAI chat-completions dialect; a local
Ollama (http://localhost:11434) works out of the box.

Examples:
  kubechat ask "how many pods are running in kube-system?"
  kubechat ask --model qwen2.5 "which nodes are not ready?"
  kubechat ask --endpoint https://api.openai.com --api-key $OPENAI_API_KEY \
      --model gpt-4o-mini "list the CRDs installed in this cluster"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session := agent.NewSession(sessionOptions(&cfg, askServer))
	defer session.Close()

	ctx := cmd.Context()
	if err := session.Connect(ctx); err != nil {
		return err
	}

	model := modelClient(&cfg, askEndpoint, askModel, askAPIKey)
	return agent.RunPrompt(ctx, session, model, args[0], cmd.OutOrStdout(), agent.PromptOptions{
		ShowToolOutput: askShowToolOutput,
	})
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askEndpoint, "endpoint", "", "Model endpoint base URL (default: from config, then http://localhost:11434)")
	askCmd.Flags().StringVar(&askModel, "model", "", "Model name (default: from config, then llama3.2)")
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "Bearer token for the model endpoint")
	askCmd.Flags().StringSliceVar(&askServer, "server", nil, "Tool server command to spawn (default: this binary with 'serve')")
	askCmd.Flags().BoolVar(&askShowToolOutput, "show-tool-output", false, "Print the raw tool output before the answer")
}
