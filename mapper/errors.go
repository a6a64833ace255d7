package mapper

import "fmt"

// DataError reports a JSON document that is well-formed but does not
// satisfy the binding plan: a required member is missing, or a null
// arrived for a non-nullable member. Path locates the offence in the
// document, e.g. "$.items[2].id".
type DataError struct {
	Msg  string
	Path string
}

func (e *DataError) Error() string {
	return e.Msg + " at " + e.Path
}

// NoAdapterError reports that no adapter could be resolved for a
// (type, qualifier set) key. It surfaces at first use of the key, not at
// mapper build time, since member types are resolved lazily.
type NoAdapterError struct {
	Key string
}

func (e *NoAdapterError) Error() string {
	return fmt.Sprintf("no adapter for %s", e.Key)
}
