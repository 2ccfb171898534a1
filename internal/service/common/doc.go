// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper for the alarm daemon with
// per-call timeouts and domain-typed results.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
