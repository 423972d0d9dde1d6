package agent

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubechat/internal/kubectl"
	"kubechat/pkg/logging"
)

func TestMain(m *testing.M) {
	logging.Init(logging.LevelError, io.Discard)
	os.Exit(m.Run())
}

// fakeRunner records the kubectl argv it was asked to run and returns a
// canned result.
type fakeRunner struct {
	lastArgs []string
	result   kubectl.Result
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) kubectl.Result {
	f.lastArgs = args
	return f.result
}

// countingClient counts tools/list requests that actually hit the wire.
type countingClient struct {
	client.MCPClient
	listToolsCalls int
}

func (c *countingClient) ListTools(ctx context.Context, request mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
	c.listToolsCalls++
	return c.MCPClient.ListTools(ctx, request)
}

// newTestSession wires a Session to an in-process tool server backed by the
// given runner, bypassing the stdio subprocess spawn.
func newTestSession(t *testing.T, runner kubectl.Runner) (*Session, *countingClient) {
	t.Helper()

	srv := kubectl.NewServer("test", runner)
	counting := &countingClient{}

	orig := newStdioClient
	newStdioClient = func(command string, env []string, args ...string) (client.MCPClient, error) {
		inProcess, err := client.NewInProcessClient(srv.MCPServer())
		if err != nil {
			return nil, err
		}
		if err := inProcess.Start(context.Background()); err != nil {
			return nil, err
		}
		counting.MCPClient = inProcess
		return counting, nil
	}
	t.Cleanup(func() { newStdioClient = orig })

	session := NewSession(Options{Command: []string{"kubechat", "serve"}})
	t.Cleanup(func() { _ = session.Close() })
	return session, counting
}

func TestNewSession_Defaults(t *testing.T) {
	session := NewSession(Options{Command: []string{"kubechat", "serve"}})

	assert.Equal(t, DefaultConnectTimeout, session.opts.ConnectTimeout)
	assert.Equal(t, DefaultRequestTimeout, session.opts.RequestTimeout)
	assert.Equal(t, DefaultCallTimeout, session.opts.CallTimeout)
	assert.Equal(t, "kubechat", session.opts.ClientName)

	session = NewSession(Options{
		Command:        []string{"kubechat", "serve"},
		ConnectTimeout: 5 * time.Second,
	})
	assert.Equal(t, 5*time.Second, session.opts.ConnectTimeout)
}

func TestSession_OperationsBeforeConnect(t *testing.T) {
	session := NewSession(Options{Command: []string{"kubechat", "serve"}})

	_, err := session.Tools(context.Background())
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	_, err = session.Call(context.Background(), kubectl.ToolGetAPIResources, nil)
	require.ErrorAs(t, err, &connErr)
}

func TestSession_ConnectAndDiscoverTools(t *testing.T) {
	session, _ := newTestSession(t, &fakeRunner{})
	require.NoError(t, session.Connect(context.Background()))

	tools, err := session.Tools(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		kubectl.ToolGetAPIResources,
		kubectl.ToolGetResource,
		kubectl.ToolDescribeResource,
	}, names)
}

func TestSession_ToolsCachedAfterFirstCall(t *testing.T) {
	session, counting := newTestSession(t, &fakeRunner{})
	require.NoError(t, session.Connect(context.Background()))

	first, err := session.Tools(context.Background())
	require.NoError(t, err)
	second, err := session.Tools(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.listToolsCalls, "tools/list should be issued once per session")
}

func TestSession_ConnectTwice(t *testing.T) {
	session, _ := newTestSession(t, &fakeRunner{})
	require.NoError(t, session.Connect(context.Background()))

	err := session.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already connected")
}

func TestSession_SpawnCommandAndEnv(t *testing.T) {
	srv := kubectl.NewServer("test", &fakeRunner{})

	var gotCommand string
	var gotArgs []string
	var gotEnv []string

	orig := newStdioClient
	newStdioClient = func(command string, env []string, args ...string) (client.MCPClient, error) {
		gotCommand, gotEnv, gotArgs = command, env, args
		inProcess, err := client.NewInProcessClient(srv.MCPServer())
		if err != nil {
			return nil, err
		}
		if err := inProcess.Start(context.Background()); err != nil {
			return nil, err
		}
		return inProcess, nil
	}
	t.Cleanup(func() { newStdioClient = orig })

	session := NewSession(Options{
		Command: []string{"kubechat", "serve", "--kubectl", "/usr/local/bin/kubectl"},
		Env:     map[string]string{"KUBECONFIG": "/tmp/kubeconfig", "A": "1"},
	})
	t.Cleanup(func() { _ = session.Close() })

	require.NoError(t, session.Connect(context.Background()))
	assert.Equal(t, "kubechat", gotCommand)
	assert.Equal(t, []string{"serve", "--kubectl", "/usr/local/bin/kubectl"}, gotArgs)
	assert.Equal(t, []string{"A=1", "KUBECONFIG=/tmp/kubeconfig"}, gotEnv)
}

func TestSession_Call(t *testing.T) {
	runner := &fakeRunner{result: kubectl.Result{
		Stdout:   "NAME    READY   STATUS\nweb-1   1/1     Running\n",
		ExitCode: 0,
	}}
	session, _ := newTestSession(t, runner)
	require.NoError(t, session.Connect(context.Background()))

	outcome, err := session.Call(context.Background(), kubectl.ToolGetResource, map[string]interface{}{
		"resource":  "pods",
		"namespace": "default",
	})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Contains(t, outcome.Text, "web-1")
	assert.Equal(t, []string{"get", "pods", "-n", "default"}, runner.lastArgs)
}

func TestSession_Call_UnknownTool(t *testing.T) {
	runner := &fakeRunner{}
	session, _ := newTestSession(t, runner)
	require.NoError(t, session.Connect(context.Background()))

	_, err := session.Call(context.Background(), "delete_everything", map[string]interface{}{})
	var unknownErr *UnknownToolError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "delete_everything", unknownErr.Tool)
	assert.Contains(t, err.Error(), "delete_everything")
	assert.Nil(t, runner.lastArgs, "nothing should reach the server for an unknown tool")
}

func TestSession_Call_MissingArgument(t *testing.T) {
	runner := &fakeRunner{}
	session, _ := newTestSession(t, runner)
	require.NoError(t, session.Connect(context.Background()))

	_, err := session.Call(context.Background(), kubectl.ToolGetResource, map[string]interface{}{})
	var missingErr *MissingArgumentError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, kubectl.ToolGetResource, missingErr.Tool)
	assert.Equal(t, "resource", missingErr.Argument)
	assert.Nil(t, runner.lastArgs)
}

func TestSession_Call_ArgumentTypeMismatch(t *testing.T) {
	session, _ := newTestSession(t, &fakeRunner{})
	require.NoError(t, session.Connect(context.Background()))

	var args map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"resource": 42}`), &args))

	_, err := session.Call(context.Background(), kubectl.ToolGetResource, args)
	var typeErr *ArgumentTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "resource", typeErr.Argument)
	assert.Equal(t, "string", typeErr.Want)
	assert.Equal(t, "number", typeErr.Got)
}

func TestSession_Call_SchemaSatisfyingArguments(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{
			name: "api resources without arguments",
			tool: kubectl.ToolGetAPIResources,
			args: map[string]interface{}{},
		},
		{
			name: "get with every argument",
			tool: kubectl.ToolGetResource,
			args: map[string]interface{}{
				"resource":      "pods",
				"namespace":     "kube-system",
				"selector":      "app=dns",
				"output_format": "wide",
			},
		},
		{
			name: "describe with every argument",
			tool: kubectl.ToolDescribeResource,
			args: map[string]interface{}{
				"resource_type": "deployment",
				"name":          "web",
				"namespace":     "default",
				"selector":      "app=web",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{result: kubectl.Result{Stdout: "ok\n"}}
			session, _ := newTestSession(t, runner)
			require.NoError(t, session.Connect(context.Background()))

			outcome, err := session.Call(context.Background(), tt.tool, tt.args)
			require.NoError(t, err)
			assert.True(t, outcome.Success)
		})
	}
}

func TestSession_Call_ToolFailure(t *testing.T) {
	runner := &fakeRunner{result: kubectl.Result{
		Stderr:   `error: the server doesn't have a resource type "bogus"`,
		ExitCode: 1,
	}}
	session, _ := newTestSession(t, runner)
	require.NoError(t, session.Connect(context.Background()))

	outcome, err := session.Call(context.Background(), kubectl.ToolGetResource, map[string]interface{}{
		"resource": "bogus",
	})
	require.NoError(t, err, "tool-level failures are not Go errors")
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Text, "exited with code 1")
	assert.Contains(t, outcome.Text, "bogus")
}

func TestSession_Close_Idempotent(t *testing.T) {
	session, _ := newTestSession(t, &fakeRunner{})
	require.NoError(t, session.Connect(context.Background()))

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())

	_, err := session.Tools(context.Background())
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestSession_CloseBeforeConnect(t *testing.T) {
	session := NewSession(Options{Command: []string{"kubechat", "serve"}})
	assert.NoError(t, session.Close())
}

func TestEnvSlice(t *testing.T) {
	assert.Nil(t, envSlice(nil))
	assert.Nil(t, envSlice(map[string]string{}))
	assert.Equal(t,
		[]string{"A=1", "B=2", "KUBECONFIG=/tmp/kc"},
		envSlice(map[string]string{"KUBECONFIG": "/tmp/kc", "B": "2", "A": "1"}),
	)
}
