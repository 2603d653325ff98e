// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts and error types for the spsc-ring library.
//
// The package defines the byte-level ring buffer contract implemented by
// ring.Buffer, plus the structured error model shared by all packages.
package api
