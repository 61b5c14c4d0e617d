package tabular

import "strings"

// Input accumulates named scalar values for one logging cycle.
// Keys keep their insertion order, and Input tracks which keys each output
// actually persisted so callers can detect values that were set but never
// logged anywhere.
type Input struct {
	values   map[string]string
	order    []string
	recorded map[string]struct{}
	prefixes []string
}

// NewInput creates an empty tabular input.
func NewInput() *Input {
	return &Input{
		values:   make(map[string]string),
		recorded: make(map[string]struct{}),
	}
}

// Set records a named value for the current cycle, converting it to text.
// Setting an existing key overwrites its value and keeps its position.
func (in *Input) Set(key string, value interface{}) {
	full := in.prefix() + key
	if _, ok := in.values[full]; !ok {
		in.order = append(in.order, full)
	}
	in.values[full] = Primitive(value)
}

// WithPrefix runs fn with all keys set inside it prefixed by prefix.
// Prefixes nest; the prefix is prepended verbatim, so callers supply their
// own separator (e.g. "train/").
func (in *Input) WithPrefix(prefix string, fn func()) {
	in.prefixes = append(in.prefixes, prefix)
	defer func() {
		in.prefixes = in.prefixes[:len(in.prefixes)-1]
	}()
	fn()
}

// PrimitiveMap returns a copy of the current key/value snapshot.
func (in *Input) PrimitiveMap() map[string]string {
	snapshot := make(map[string]string, len(in.values))
	for k, v := range in.values {
		snapshot[k] = v
	}
	return snapshot
}

// Keys returns the current keys in insertion order.
func (in *Input) Keys() []string {
	keys := make([]string, len(in.order))
	copy(keys, in.order)
	return keys
}

// MarkRecorded marks a key as persisted by an output.
func (in *Input) MarkRecorded(key string) {
	in.recorded[key] = struct{}{}
}

// UnrecordedKeys returns, in insertion order, the keys that were set this
// cycle but never marked as recorded by any output.
func (in *Input) UnrecordedKeys() []string {
	var unrecorded []string
	for _, k := range in.order {
		if _, ok := in.recorded[k]; !ok {
			unrecorded = append(unrecorded, k)
		}
	}
	return unrecorded
}

// Clear resets values and recorded marks for the next cycle.
func (in *Input) Clear() {
	in.values = make(map[string]string)
	in.order = nil
	in.recorded = make(map[string]struct{})
}

func (in *Input) prefix() string {
	if len(in.prefixes) == 0 {
		return ""
	}
	return strings.Join(in.prefixes, "")
}
