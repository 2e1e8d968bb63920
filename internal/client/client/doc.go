// Package client is the CLI's connection to the wanttogo gRPC API.
//
// GRPCClient keeps the session token returned by Login and attaches it to
// every outgoing call under the session_token metadata key. Server status
// codes are mapped to the sentinel errors in errors.go so the CLI can print
// something useful without inspecting gRPC internals.
package client
