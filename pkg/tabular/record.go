package tabular

import (
	"fmt"
	"strconv"
)

// Record is the narrow view of a tabular record source that outputs consume.
// An output reads the current values through PrimitiveMap and reports back
// every key it persisted through MarkRecorded.
type Record interface {
	// PrimitiveMap returns the current key/value snapshot with all values
	// converted to their text form.
	PrimitiveMap() map[string]string

	// MarkRecorded marks a key as having been persisted by an output.
	MarkRecorded(key string)
}

// Primitive converts a scalar value to its text form for CSV cells.
func Primitive(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
