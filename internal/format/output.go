// Package format renders command output. JSON is the default; EDN is kept
// for consumers that pipe the dashboard payloads into Clojure tooling.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Write renders v in the requested format ("json" or "edn").
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format %q (want json or edn)", format)
	}
}

// WriteJSON writes v as JSON with a trailing newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
