package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"kubechat/internal/config"
	"kubechat/internal/kube"
	"kubechat/internal/kubectl"
	"kubechat/pkg/logging"
)

var (
	serveKubectlPath string
	serveKubeContext string
	serveTimeout     int
)

// serveCmd starts the stdio tool server. stdout carries the MCP protocol,
// so everything the server has to say goes to stderr.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the kubectl tool server on stdio",
	Long: `Runs the MCP tool server exposing read-only kubectl commands
(api-resources, get, describe) over stdio.

MCP clients spawn this command as a subprocess: 'kubechat ask' and
'kubechat chat' do so automatically, and AI assistants can point their
MCP settings at it. The server never mutates the cluster; kubectl does
the talking, so your kubeconfig decides what it can see.

Configuration:
  kubechat loads config.yaml from ~/.config/kubechat and ./.kubechat.
  Flags override the kubectl section of the config file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.Kubectl.Path
	if serveKubectlPath != "" {
		path = serveKubectlPath
	}
	kubeContext := cfg.Kubectl.Context
	if serveKubeContext != "" {
		kubeContext = serveKubeContext
	}
	timeout := time.Duration(cfg.Kubectl.TimeoutSeconds) * time.Second
	if serveTimeout > 0 {
		timeout = time.Duration(serveTimeout) * time.Second
	}

	runner := kubectl.NewRunner(kubectl.Options{
		Path:    path,
		Context: kubeContext,
		Timeout: timeout,
	})

	logServeStartup(path, kubeContext)

	return kubectl.NewServer(rootCmd.Version, runner).ServeStdio()
}

// logServeStartup reports the runner configuration and attempts a cluster
// preflight. The preflight is best effort: the server must come up without a
// reachable cluster, kubectl reports errors per call.
func logServeStartup(path, kubeContext string) {
	logging.Info("ToolServer", "Using kubectl at %q", path)

	if kubeContext == "" {
		if current, err := kube.CurrentContext(); err == nil && current != "" {
			kubeContext = current
		}
	}
	if kubeContext != "" {
		logging.Info("ToolServer", "Kube context: %s", kubeContext)
	}

	clientset, err := kube.NewClientset(kubeContext)
	if err != nil {
		logging.Warn("ToolServer", "Cluster preflight skipped: %v", err)
		return
	}
	ready, total, err := kube.NodeSummary(clientset)
	if err != nil {
		logging.Warn("ToolServer", "Cluster unreachable, continuing anyway: %v", err)
		return
	}
	logging.Info("ToolServer", "Cluster preflight: %d/%d nodes ready", ready, total)
}

// init registers the serve command and its flags with the root command.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveKubectlPath, "kubectl", "", "Path to the kubectl binary (default: from config, then PATH)")
	serveCmd.Flags().StringVar(&serveKubeContext, "kube-context", "", "Kubeconfig context passed to every kubectl call (default: current context)")
	serveCmd.Flags().IntVar(&serveTimeout, "timeout", 0, "Per-command kubectl timeout in seconds")
}
