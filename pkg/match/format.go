package match

import (
	"fmt"
	"reflect"
	"strconv"
)

// Format renders v the way failure messages print values: floating-point
// numbers with six decimal places, byte slices as text and everything else
// in its default form.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 6, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', 6, 64)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', 6, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', 6, 64)
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}
