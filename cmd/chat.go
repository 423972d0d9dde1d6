package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"kubechat/internal/agent"
	"kubechat/internal/color"
	"kubechat/internal/config"
)

var (
	chatEndpoint       string
	chatModel          string
	chatAPIKey         string
	chatServer         []string
	chatShowToolOutput bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive questions about your cluster",
	Long: `Opens an interactive prompt backed by one long-lived tool server
session. Every line runs as an independent round trip; there is no
conversation memory between prompts.

Type 'exit', 'quit', or press Ctrl-D to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session := agent.NewSession(sessionOptions(&cfg, chatServer))
	defer session.Close()

	ctx := cmd.Context()
	if err := session.Connect(ctx); err != nil {
		return err
	}

	model := modelClient(&cfg, chatEndpoint, chatModel, chatAPIKey)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, color.MutedStyle.Render(
		fmt.Sprintf("Connected. Model %s at %s. Type 'exit' or Ctrl-D to leave.", model.Model(), model.Endpoint())))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            color.PromptStyle.Render("kubechat> "),
		HistoryFile:       filepath.Join(os.TempDir(), ".kubechat_history"),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue
			}
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		opts := agent.PromptOptions{ShowToolOutput: chatShowToolOutput}
		if err := agent.RunPrompt(ctx, session, model, input, out, opts); err != nil {
			fmt.Fprintln(out, color.ErrorStyle.Render("Error: "+err.Error()))
		}
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatEndpoint, "endpoint", "", "Model endpoint base URL (default: from config, then http://localhost:11434)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model name (default: from config, then llama3.2)")
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Bearer token for the model endpoint")
	chatCmd.Flags().StringSliceVar(&chatServer, "server", nil, "Tool server command to spawn (default: this binary with 'serve')")
	chatCmd.Flags().BoolVar(&chatShowToolOutput, "show-tool-output", false, "Print the raw tool output before each answer")
}
