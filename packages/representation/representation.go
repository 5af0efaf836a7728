package representation

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// NullString is how every strategy renders a nil value.
const NullString = "null"

// DefaultMaxElements is the number of collection elements printed before truncation.
const DefaultMaxElements = 1000

// Representation turns a value into the string embedded in failure messages.
// Implementations must be deterministic and must not panic.
type Representation interface {
	Format(v any) string
}

// Representer is implemented by wrapper types that render their contents
// through whichever strategy is active.
type Representer interface {
	Represent(format func(any) string) string
}

// Func adapts a plain function to the Representation interface.
type Func func(v any) string

func (f Func) Format(v any) string {
	if IsNil(v) {
		return NullString
	}
	return f(v)
}

// Standard is the default strategy.
type Standard struct {
	// MaxElements caps how many slice, array or map entries are printed.
	// Zero means DefaultMaxElements.
	MaxElements int

	quote func(string) string
}

// NewStandard returns a Standard strategy printing at most maxElements entries
// per collection.
func NewStandard(maxElements int) *Standard {
	return &Standard{MaxElements: maxElements}
}

// NewUnicode returns a strategy that escapes every non-ASCII rune in strings.
func NewUnicode(maxElements int) *Standard {
	return &Standard{MaxElements: maxElements, quote: unicodeQuote}
}

var (
	// StandardRepresentation is the shared default strategy.
	StandardRepresentation Representation = NewStandard(DefaultMaxElements)
	// UnicodeRepresentation is the shared unicode-escaping strategy.
	UnicodeRepresentation Representation = NewUnicode(DefaultMaxElements)
)

func (s *Standard) Format(v any) (out string) {
	defer func() {
		// String methods on user types may panic; fall back to fmt, which
		// recovers them into a readable marker.
		if r := recover(); r != nil {
			out = fmt.Sprintf("%v", v)
		}
	}()
	return s.format(reflect.ValueOf(v), 0)
}

func (s *Standard) maxElements() int {
	if s.MaxElements <= 0 {
		return DefaultMaxElements
	}
	return s.MaxElements
}

func (s *Standard) quoteString(str string) string {
	if s.quote != nil {
		return s.quote(str)
	}
	return `"` + str + `"`
}

// escape applies the unicode escaping to unquoted text when enabled.
func (s *Standard) escape(str string) string {
	if s.quote != nil {
		return escapeNonASCII(str)
	}
	return str
}

const maxDepth = 32

func (s *Standard) format(rv reflect.Value, depth int) string {
	if !rv.IsValid() {
		return NullString
	}
	if isNilValue(rv) {
		return NullString
	}
	if depth > maxDepth {
		return "..."
	}

	if rv.CanInterface() {
		switch v := rv.Interface().(type) {
		case Representer:
			return v.Represent(func(inner any) string {
				return s.format(reflect.ValueOf(inner), depth+1)
			})
		case string:
			return s.quoteString(v)
		case time.Time:
			return v.Format(time.RFC3339Nano)
		case time.Duration:
			return v.String()
		case reflect.Type:
			return v.String()
		case error:
			return s.escape(v.Error())
		case fmt.Stringer:
			return s.escape(v.String())
		}
	}

	switch rv.Kind() {
	case reflect.Interface:
		return s.format(rv.Elem(), depth)
	case reflect.Pointer:
		return s.format(rv.Elem(), depth+1)
	case reflect.String:
		return s.quoteString(rv.String())
	case reflect.Slice, reflect.Array:
		return s.formatList(rv, depth)
	case reflect.Map:
		return s.formatMap(rv, depth)
	case reflect.Struct:
		if rv.CanInterface() {
			return s.escape(fmt.Sprintf("%+v", rv.Interface()))
		}
		return rv.Type().String()
	case reflect.Func:
		return rv.Type().String()
	case reflect.Chan:
		return fmt.Sprintf("%s (len=%d)", rv.Type(), rv.Len())
	}

	if rv.CanInterface() {
		return fmt.Sprint(rv.Interface())
	}
	return rv.String()
}

func (s *Standard) formatList(rv reflect.Value, depth int) string {
	n := rv.Len()
	limit := min(n, s.maxElements())
	parts := make([]string, 0, limit+1)
	for i := 0; i < limit; i++ {
		parts = append(parts, s.format(rv.Index(i), depth+1))
	}
	if n > limit {
		parts = append(parts, "...")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (s *Standard) formatMap(rv reflect.Value, depth int) string {
	type entry struct{ key, value string }
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   s.format(iter.Key(), depth+1),
			value: s.format(iter.Value(), depth+1),
		})
	}
	// Go maps have no defined order; sort for stable messages.
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	limit := min(len(entries), s.maxElements())
	parts := make([]string, 0, limit+1)
	for _, e := range entries[:limit] {
		parts = append(parts, e.key+"="+e.value)
	}
	if len(entries) > limit {
		parts = append(parts, "...")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func unicodeQuote(str string) string {
	return `"` + escapeNonASCII(str) + `"`
}

func escapeNonASCII(str string) string {
	var b strings.Builder
	for _, r := range str {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			b.WriteString(`\U` + leftPad(strconv.FormatInt(int64(r), 16), 8))
		default:
			b.WriteString(`\u` + leftPad(strconv.FormatInt(int64(r), 16), 4))
		}
	}
	return b.String()
}

func leftPad(hex string, width int) string {
	hex = strings.ToUpper(hex)
	if len(hex) >= width {
		return hex
	}
	return strings.Repeat("0", width-len(hex)) + hex
}

// IsNil reports whether v is nil or a typed nil (pointer, map, slice, func,
// chan or interface).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
