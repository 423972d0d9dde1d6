package agent

import "fmt"

// ConnectionError reports that the transport to the tool server failed, or
// that a session operation ran without a live connection.
type ConnectionError struct {
	Op    string // session operation that needed the connection
	cause error
}

func (e *ConnectionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("tool server connection failed during %s: %v", e.Op, e.cause)
	}
	return fmt.Sprintf("%s requires a connected session", e.Op)
}

func (e *ConnectionError) Unwrap() error { return e.cause }

// UnknownToolError reports a dispatch against a tool that is not in the
// discovered catalog.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Tool)
}

// MissingArgumentError reports a tool call missing a schema-required
// argument. Raised by validation, before anything reaches the server.
type MissingArgumentError struct {
	Tool     string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("tool %q requires argument %q", e.Tool, e.Argument)
}

// ArgumentTypeError reports an argument whose JSON type contradicts the
// tool's input schema.
type ArgumentTypeError struct {
	Tool     string
	Argument string
	Want     string
	Got      string
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("tool %q argument %q must be %s, got %s", e.Tool, e.Argument, e.Want, e.Got)
}
