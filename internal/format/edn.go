package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN with a trailing newline. Maps render with sorted
// keyword keys; JSON-integral floats render without a fractional part.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	norm, err := normalizeJSON(v)
	if err != nil {
		return err
	}
	var b strings.Builder
	writeEDNValue(&b, norm, pretty, 0)
	b.WriteByte('\n')
	_, err = io.WriteString(w, b.String())
	return err
}

// normalizeJSON round-trips v through encoding/json so structs, maps and
// slices all collapse to the generic shapes the renderer handles.
func normalizeJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func writeEDNValue(b *strings.Builder, v any, pretty bool, indent int) {
	switch t := v.(type) {
	case nil:
		b.WriteString("nil")
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case string:
		b.WriteString(strconv.Quote(t))
	case float64:
		b.WriteString(ednNumber(t))
	case json.Number:
		b.WriteString(t.String())
	case []any:
		b.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				ednSeparator(b, pretty, indent+1)
			}
			writeEDNValue(b, e, pretty, indent+1)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				ednSeparator(b, pretty, indent+1)
			}
			b.WriteString(ednKeyword(k))
			b.WriteByte(' ')
			writeEDNValue(b, t[k], pretty, indent+1)
		}
		b.WriteByte('}')
	default:
		// Shouldn't happen after normalizeJSON; render as a quoted literal.
		b.WriteString(strconv.Quote(fmt.Sprintf("%v", t)))
	}
}

func ednSeparator(b *strings.Builder, pretty bool, indent int) {
	if pretty {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", indent))
		return
	}
	b.WriteByte(' ')
}

// ednKeyword turns a JSON key into an EDN keyword, mapping whitespace to
// dashes (":sp ace" is not a valid keyword).
func ednKeyword(k string) string {
	return ":" + strings.Join(strings.Fields(k), "-")
}

// ednNumber prints integral floats as integers: JSON has only one number
// type, and 3.0 coming off the wire reads better as 3.
func ednNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
