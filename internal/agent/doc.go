// Package agent owns the client half of kubechat: a Session that launches
// the stdio tool server and speaks MCP to it, conversion of discovered tools
// into chat-completion function specs, argument validation against the tool
// input schemas, and the strictly linear prompt round trip (ask the model,
// dispatch at most one tool call, relay the output, print the answer).
package agent
