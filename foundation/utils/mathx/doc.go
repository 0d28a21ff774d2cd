// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides precise decimal arithmetic used for
//              confidence scores, ensemble weights, and policy thresholds
//              throughout the scan core, avoiding floating-point rounding
//              drift in repeated additions and comparisons.
// Author: msto63 with Claude Opus 4.0
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-01-26
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-01-26 v0.3.0: Dropped currency/business calculation helpers, kept Decimal only

// Package mathx provides precise decimal arithmetic for confidence and
// weight calculations.
//
// Package: mathx
// Title: Decimal Arithmetic for Confidence and Weight Calculations
// Description: This package provides arbitrary-precision decimal arithmetic
//              used wherever the scan core combines confidence scores, vote
//              weights, or policy thresholds. Floating-point arithmetic is
//              avoided because repeated weighted sums (ensemble voting,
//              pack-quality metrics) must be stable and reproducible.
// Author: msto63 with Claude Opus 4.0
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-01-26
//
// Overview
//
// The mathx package wraps math/big.Rat to provide a Decimal type with
// exact decimal-string construction, configurable rounding, and the
// arithmetic operations needed to combine per-head confidence scores
// into a single ensemble decision without drifting across repeated
// evaluation.
//
// Usage Examples
//
// Basic decimal arithmetic:
//
//	// Create decimal values from strings for exact precision
//	confidence := mathx.MustNewDecimal("0.873")
//	weight := mathx.MustNewDecimal("0.4")
//
//	weighted := confidence.Multiply(weight)
//
//	fmt.Printf("Weighted confidence: %s\n", weighted.String())
//
// Rounding modes:
//
//	value := mathx.MustNewDecimal("10.555")
//
//	// Commercial rounding (half up) for displayed confidence scores
//	commercial := value.Round(2, mathx.RoundingModeHalfUp) // 10.56
//
//	// Banker's rounding (half even) for accumulated ensemble sums
//	bankers := value.Round(2, mathx.RoundingModeHalfEven) // 10.56
//
// Best Practices
//
// 1. Always use string literals when creating decimal values for exact precision:
//
//	// Good - exact representation
//	exact := mathx.MustNewDecimal("0.1")
//
//	// Bad - may have precision issues
//	approx := mathx.NewDecimalFromFloat(0.1)
//
// 2. Choose appropriate rounding modes: banker's rounding for accumulated
//    ensemble weights, commercial rounding for values surfaced to a caller.
//
// Thread Safety
//
// All Decimal operations are thread-safe and can be used concurrently.
// The package uses sync.Pool for object pooling.
//
// See Also
//
//   - Package error: For error handling and wrapping
//   - Package log: For calculation logging and debugging
//   - Package validationx: For input validation
//   - math/big: Underlying precision arithmetic
//
package mathx
