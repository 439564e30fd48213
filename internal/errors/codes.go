package errors

// Error codes used in messages and documentation to provide consistent
// error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0200-E0299: Type system errors
// E0600-E0699: Flow control errors
// E0800-E0899: Warning codes
// E0900-E0999: Tooling and internal errors

const (
	// E0601: storage pointer variable accessed before any assignment
	ErrorUninitializedStorageAccess = "E0601"

	// E0999: internal compiler errors (violated preconditions, malformed
	// inputs from earlier phases)
	ErrorInternalCompiler = "E0999"
)
