package geodat

import "errors"

// Sentinel errors returned by the reader. Wrapped values can be classified
// with errors.Is.
var (
	// ErrNotFound means the address has no matching leaf in the search tree.
	// It is an expected outcome, not a database fault.
	ErrNotFound = errors.New("address not found")

	// ErrCorruptTrailer means the structure trailer sentinel was not found
	// within the search window at the end of the file.
	ErrCorruptTrailer = errors.New("structure trailer not found")

	// ErrUnsupportedEdition means the trailer names an edition outside the
	// recognized set.
	ErrUnsupportedEdition = errors.New("unsupported database edition")

	// ErrCorruptDatabase means tree traversal did not terminate within the
	// address bit length, or a node lies outside the file.
	ErrCorruptDatabase = errors.New("corrupt database")

	// ErrCorruptRecord means record decoding hit an out-of-bounds offset, a
	// non-backward reference, or an unterminated string. It is fatal for the
	// single lookup only; the handle stays valid.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrFamilyMismatch means the address family does not match the tree the
	// database was built for.
	ErrFamilyMismatch = errors.New("address family does not match database")

	// ErrNoDatabaseForFamily means the resolver has no database for the
	// parsed address family.
	ErrNoDatabaseForFamily = errors.New("no database for address family")

	// ErrParseAddress means the input text is not a valid IP address.
	ErrParseAddress = errors.New("invalid IP address")
)
