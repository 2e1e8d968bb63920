// Package cli provides the interactive wanttogo command-line client.
//
// It wires configuration and the gRPC client into a small REPL: register,
// login, browse destinations, and manage the want-to-go list. A background
// watcher pings the server and shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
