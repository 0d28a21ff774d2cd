// Package slicex implements comprehensive slice utility functions for the raxe scan core.
//
// Package: slicex
// Title: Extended Slice Utilities for Go
// Description: This package provides a comprehensive collection of utility functions
//              for working with Go slices, including functional programming operations,
//              manipulation functions, search utilities, and performance-optimized
//              implementations. All functions are generic and work with any slice type,
//              providing type safety and excellent performance characteristics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-01-25
// Modified: 2025-01-26
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples and raxe integration
//
// Package Overview:
//
// The slicex package provides over 60 utility functions organized into logical categories:
//
// # Core Transformation Functions
//
// These functions transform slices using functional programming patterns:
//   - Filter: Select elements matching a predicate
//   - Map: Transform each element using a function
//   - MapWithIndex: Transform elements with index information
//   - Reduce: Reduce slice to single value
//   - ReduceWithIndex: Reduce with index information
//   - ForEach: Execute function for each element
//   - ForEachWithIndex: Execute function with index
//
// # Slice Manipulation Functions
//
// Functions for reorganizing and modifying slice structure:
//   - Chunk: Split slice into smaller chunks
//   - Flatten: Flatten nested slices
//   - Unique: Remove duplicate elements
//   - UniqueBy: Remove duplicates by key function
//   - Union: Combine slices without duplicates
//   - Intersect: Find common elements
//   - Difference: Find elements in first but not second slice
//   - Reverse: Reverse element order
//
// # Search and Validation Functions
//
// Functions for finding and validating slice contents:
//   - Contains: Check if slice contains element
//   - ContainsBy: Check using predicate function
//   - IndexOf: Find first index of element
//   - IndexOfBy: Find first index matching predicate
//   - LastIndexOf: Find last index of element
//   - Find: Find first element matching predicate
//   - FindLast: Find last element matching predicate
//   - Every: Check if all elements match predicate
//   - Some: Check if any element matches predicate
//
// # Utility Functions
//
// General purpose utility functions:
//   - IsEmpty: Check if slice is empty
//   - IsNotEmpty: Check if slice has elements
//   - Count: Count elements matching predicate
//   - Min/Max: Find minimum/maximum values
//   - MinBy/MaxBy: Find min/max using comparison function
//   - Sum: Calculate sum of numeric slice
//
// # Creation and Conversion Functions
//
// Functions for creating and converting slices:
//   - Range: Create integer range slice
//   - RangeStep: Create range with custom step
//   - Repeat: Create slice with repeated element
//   - Fill: Create slice using generator function
//   - Clone: Create shallow copy of slice
//   - Equal: Compare two slices for equality
//   - EqualBy: Compare using custom equality function
//
// # Advanced Operations
//
// Complex operations for specialized use cases:
//   - GroupBy: Group elements by key function
//   - Partition: Split slice into two based on predicate
//   - Take: Take first N elements
//   - TakeWhile: Take elements while predicate is true
//   - Drop: Drop first N elements
//   - DropWhile: Drop elements while predicate is true
//   - Zip: Combine two slices into pairs
//
// # Sorting Helpers
//
// Functions for sorting and sort validation:
//   - Sort: Create sorted copy of slice
//   - SortBy: Sort using comparison function
//   - IsSorted: Check if slice is sorted
//   - IsSortedBy: Check sorting using comparison function
//
// # String Conversion
//
// Functions for converting slices to strings:
//   - String: Get string representation
//   - Join: Join elements with separator
//
// # Performance Characteristics
//
// All functions are designed for optimal performance:
//   - Generic implementations provide type safety without runtime cost
//   - Memory allocations are minimized where possible
//   - Functions are nil-safe and handle edge cases gracefully
//   - Benchmarks ensure consistent performance across different slice sizes
//
// # Usage Examples
//
// Basic filtering and mapping:
//
//	numbers := []int{1, 2, 3, 4, 5, 6}
//	evens := slicex.Filter(numbers, func(n int) bool { return n%2 == 0 })
//	strings := slicex.Map(evens, func(n int) string { return fmt.Sprintf("Number: %d", n) })
//
// Data processing pipeline:
//
//	type Order struct {
//		ID     string
//		Amount float64
//		Status string
//	}
//
//	orders := []Order{...}
//
//	// Get completed orders, calculate total, extract IDs
//	completed := slicex.Filter(orders, func(o Order) bool { return o.Status == "completed" })
//	total := slicex.Reduce(completed, 0.0, func(acc float64, o Order) float64 { return acc + o.Amount })
//	ids := slicex.Map(completed, func(o Order) string { return o.ID })
//
// Set operations:
//
//	slice1 := []string{"a", "b", "c"}
//	slice2 := []string{"b", "c", "d"}
//	
//	union := slicex.Union(slice1, slice2)        // [a b c d]
//	intersection := slicex.Intersect(slice1, slice2) // [b c]
//	difference := slicex.Difference(slice1, slice2)  // [a]
//
// Advanced grouping and partitioning:
//
//	type Student struct {
//		Name  string
//		Grade string
//		Score int
//	}
//
//	students := []Student{...}
//
//	// Group by grade
//	byGrade := slicex.GroupBy(students, func(s Student) string { return s.Grade })
//
//	// Partition by passing score
//	passing, failing := slicex.Partition(students, func(s Student) bool { return s.Score >= 70 })
//
// # Common Use Cases
//
// 1. Data Transformation Pipeline
//
//	// Transform raw data through multiple stages
//	rawData := []RawRecord{...}
//	
//	result := slicex.Map(
//		slicex.Filter(
//			rawData,
//			func(r RawRecord) bool { return r.IsValid() },
//		),
//		func(r RawRecord) ProcessedRecord {
//			return r.Process()
//		},
//	)
//
// 2. Batch Processing
//
//	// Process large dataset in chunks
//	items := []Item{...}
//	chunks := slicex.Chunk(items, 100)
//	
//	for _, chunk := range chunks {
//		processBatch(chunk)
//	}
//
// 3. Data Aggregation
//
//	// Group and summarize data
//	transactions := []Transaction{...}
//	byCategory := slicex.GroupBy(transactions, func(t Transaction) string {
//		return t.Category
//	})
//	
//	for category, txns := range byCategory {
//		total := slicex.Reduce(txns, 0.0, func(sum float64, t Transaction) float64 {
//			return sum + t.Amount
//		})
//		fmt.Printf("%s: $%.2f\n", category, total)
//	}
//
// 4. Set-Based Operations
//
//	// Find common and unique elements
//	activeUsers := []string{"user1", "user2", "user3"}
//	premiumUsers := []string{"user2", "user3", "user4"}
//	
//	// Users who are both active and premium
//	activePremium := slicex.Intersect(activeUsers, premiumUsers)
//	
//	// Active users who are not premium
//	activeOnly := slicex.Difference(activeUsers, premiumUsers)
//
// 5. Data Validation
//
//	// Validate all elements meet criteria
//	emails := []string{...}
//	allValid := slicex.Every(emails, func(email string) bool {
//		return isValidEmail(email)
//	})
//	
//	// Find invalid entries
//	invalid := slicex.Filter(emails, func(email string) bool {
//		return !isValidEmail(email)
//	})
//
// # Best Practices
//
// 1. Prefer immutability - functions return new slices rather than modifying inputs
// 2. Use appropriate functions for your use case (e.g., Find vs Filter)
// 3. Consider performance implications for large slices
// 4. Chain operations for complex transformations
// 5. Use generic type constraints for compile-time safety
//
// # raxe Integration Examples
//
// 1. TCOL Command Processing
//
//	// Parse and validate TCOL commands
//	commands := []string{"CUSTOMER.LIST", "INVOICE.CREATE", "REPORT.GENERATE"}
//	valid := slicex.Filter(commands, func(cmd string) bool {
//		return tcol.IsValidCommand(cmd)
//	})
//
// 2. Permission Filtering
//
//	// Filter objects based on user permissions
//	objects := []BusinessObject{...}
//	accessible := slicex.Filter(objects, func(obj BusinessObject) bool {
//		return user.HasPermission(obj.RequiredPermission())
//	})
//
// 3. Batch Command Execution
//
//	// Execute commands in batches with error handling
//	commands := []Command{...}
//	batches := slicex.Chunk(commands, 50)
//	
//	results := slicex.Map(batches, func(batch []Command) BatchResult {
//		return executeBatch(batch)
//	})
//
// 4. Data Export Processing
//
//	// Transform business objects for export
//	customers := []Customer{...}
//	exportData := slicex.Map(customers, func(c Customer) map[string]any {
//		return c.ToExportFormat()
//	})
//
// # Performance Considerations
//
// 1. Memory Usage
//   - Most functions allocate new slices for results
//   - Use streaming/chunking for very large datasets
//   - Consider in-place operations where appropriate
//
// 2. Optimization Tips
//   - Chain operations to minimize intermediate allocations
//   - Use early termination functions (Find, Some) when possible
//   - Consider parallel processing for CPU-intensive operations
//
// 3. Benchmarking Results (typical performance)
//   - Filter: O(n) time, O(m) space where m <= n
//   - Map: O(n) time, O(n) space
//   - Sort: O(n log n) time, O(n) space
//   - GroupBy: O(n) time, O(n) space
//   - Set operations: O(n+m) time with efficient algorithms
//
// # Error Handling
//
// All functions handle edge cases gracefully:
//   - nil slices are handled safely (usually returning nil or false)
//   - nil function parameters are handled safely
//   - Empty slices are processed correctly
//   - No panics are generated from normal usage
//
// # Thread Safety
//
// All functions are thread-safe for concurrent reads of the input slice.
// However, if the input slice is being modified concurrently, appropriate
// synchronization must be used by the caller.
//
// # Related Packages
//
//   - mapx: Similar utilities for map operations
//   - stringx: String manipulation utilities
//   - mathx: Mathematical operations with slices
//   - core/log: Logging slice operations
//   - core/error: Error handling for slice processing
//
// # Integration with raxe Platform
//
// This package is designed as part of the raxe
// foundation library and follows raxe coding standards:
//   - Comprehensive documentation and examples
//   - Extensive test coverage (>95%)
//   - Performance benchmarks
//   - Consistent error handling
//   - English-only code and comments
//
// The package integrates seamlessly with other raxe foundation modules and
// provides the slice manipulation capabilities needed for TCOL (Terminal
// Command Object Language) processing and general business logic operations.
package slicex