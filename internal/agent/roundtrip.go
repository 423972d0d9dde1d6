package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"kubechat/internal/llm"
	"kubechat/pkg/logging"
)

// systemPrompt frames the model as a read-only cluster inspector limited to
// the provided tools.
const systemPrompt = "You are a Kubernetes assistant with read-only access to a cluster " +
	"through the provided tools. Use them to inspect the cluster instead of guessing. " +
	"Answer concisely based on the tool output."

// PromptOptions tune RunPrompt's output.
type PromptOptions struct {
	// ShowToolOutput prints the raw tool output before the final answer.
	ShowToolOutput bool
}

// RunPrompt executes one strictly linear round trip: discover tools, send the
// prompt to the model, dispatch at most one requested tool call, relay its
// output, and write the final answer to out. There is no agent loop; if the
// follow-up reply asks for yet another tool, the raw tool output is printed
// instead.
func RunPrompt(ctx context.Context, session *Session, model *llm.Client, prompt string, out io.Writer, opts PromptOptions) error {
	tools, err := session.Tools(ctx)
	if err != nil {
		return err
	}
	specs := FunctionSpecs(tools)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}

	reply, err := model.Chat(ctx, messages, specs)
	if err != nil {
		return err
	}

	if len(reply.ToolCalls) == 0 {
		fmt.Fprintln(out, strings.TrimSpace(reply.Content))
		return nil
	}

	call := reply.ToolCalls[0]
	if len(reply.ToolCalls) > 1 {
		logging.Debug(logSubsystem, "Model requested %d tool calls, dispatching only the first", len(reply.ToolCalls))
	}

	args := map[string]interface{}{}
	if trimmed := strings.TrimSpace(call.Function.Arguments); trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
			return fmt.Errorf("model sent invalid arguments for %s: %w", call.Function.Name, err)
		}
	}

	logging.Info(logSubsystem, "Model requested tool %s", call.Function.Name)

	outcome, err := session.Call(ctx, call.Function.Name, args)
	if err != nil {
		return err
	}
	if !outcome.Success {
		logging.Warn(logSubsystem, "Tool %s reported an error", call.Function.Name)
	}

	if opts.ShowToolOutput {
		fmt.Fprintf(out, "[%s]\n%s\n\n", call.Function.Name, strings.TrimSpace(outcome.Text))
	}

	// Relay the output so the model can phrase the answer. Some endpoints
	// (Ollama among them) omit tool call ids; synthesize one so the tool
	// message can reference it.
	if call.ID == "" {
		call.ID = "call_" + uuid.NewString()
	}
	if call.Type == "" {
		call.Type = "function"
	}

	messages = append(messages,
		llm.Message{Role: llm.RoleAssistant, Content: reply.Content, ToolCalls: []llm.ToolCall{call}},
		llm.Message{Role: llm.RoleTool, Content: outcome.Text, ToolCallID: call.ID},
	)

	final, err := model.Chat(ctx, messages, specs)
	if err != nil {
		return err
	}

	if len(final.ToolCalls) > 0 || strings.TrimSpace(final.Content) == "" {
		fmt.Fprintln(out, strings.TrimSpace(outcome.Text))
		return nil
	}

	fmt.Fprintln(out, strings.TrimSpace(final.Content))
	return nil
}
