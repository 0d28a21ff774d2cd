// Package error provides the structured error type used across the raxe
// scan core.
//
// Package: error
// Title: raxe Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and integration with logging.
//              It provides the error taxonomy used across rule compilation, pack
//              loading, layer execution, suppression, and policy evaluation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent error classification
// - Stack trace capture for debugging
// - Integration with the structured logger
// - Error severity levels and categorization
//
// Usage:
//   import "github.com/raxe-ce/raxe-go/foundation/core/error"
//
//   // Create a new error with context
//   err := error.New("pack signature verification failed").
//     WithCode(error.CodeSignatureInvalid).
//     WithDetail("pack_id", "owasp-core").
//     WithSeverity(error.SeverityCritical)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to load rule pack").
//     WithCode(error.CodeConfigMalformed).
//     WithDetail("path", "/etc/raxe/packs/owasp-core")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeSignatureInvalid) {
//     // Handle signature failures specifically
//   }
package error