// Package liss implements the JSON-RPC client for the LISS timetable
// interchange endpoint.
//
// The client is the network-facing collaborator of the decode pipeline: it
// hands the core either a complete text blob or an explicit no-data error,
// never a partial buffer. Transient failures (rate limiting, 5xx, network
// errors) are retried with bounded exponential backoff; any other 4xx is
// terminal and fails immediately.
//
// Credentials come from the environment when the config names
// username_env/password_env variables, falling back to inline values.
package liss
