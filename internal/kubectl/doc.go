// Package kubectl implements the tool server side of kubechat: a fixed,
// read-only catalog of kubectl operations exposed as MCP tools over stdio.
//
// The package has three layers:
//
//   - Runner: spawns the kubectl binary with a bounded timeout and captures
//     stdout, stderr and the exit code. Non-zero exits are data, not errors;
//     only spawn failures and timeouts surface as CommandExecutionError.
//   - Tools: the tool descriptors (names, descriptions, JSON-schema
//     parameters) and their handlers, which translate tool arguments into
//     kubectl command lines and command results into tool results.
//   - Server: the MCP server assembly and the stdio serve loop.
//
// The catalog is deliberately small and stable:
//
//	kubectl_get_api_resources   kubectl api-resources
//	kubectl_get_resource        kubectl get <resource> [-n ns] [-o fmt] [--selector sel]
//	kubectl_describe_resource   kubectl describe <type> [name] [-n ns] [--selector sel]
//
// Every tool is read-only. Anything that would mutate cluster state is out of
// scope for this server.
package kubectl
