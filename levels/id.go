package levels

import "github.com/oklog/ulid/v2"

// NewID returns "<prefix>_<ulid>". ULIDs are monotonic enough within a process
// to keep ids unique across all three collections.
func NewID(prefix string) string {
	return prefix + "_" + ulid.Make().String()
}

// CopyID derives the id of a pasted copy.
func CopyID(original string) string {
	return original + "_copy_" + ulid.Make().String()
}
