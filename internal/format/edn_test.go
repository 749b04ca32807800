package format

import (
	"bytes"
	"strings"
	"testing"

	"pcp360/internal/api"
)

func TestWriteEDN_SortsKeysAndKeywords(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"b":      2,
		"a":      1,
		"sp ace": "x",
	}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	// Keys must be sorted: :a then :b then :sp-ace
	if got != "{:a 1 :b 2 :sp-ace \"x\"}" {
		t.Fatalf("unexpected edn: %q", got)
	}
}

func TestWriteEDN_NumberRendering(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"i": 3.0, "f": 3.5}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	// JSON numbers become float64; encoder prints 3.0 as int.
	if got != "{:f 3.5 :i 3}" {
		t.Fatalf("unexpected edn: %q", got)
	}
}

func TestWriteEDN_PeggingPayload(t *testing.T) {
	cob := 4.2
	v := api.PeggingLite{
		Material:              "4011835-AA",
		CoberturaAtualDias:    &cob,
		TotalOrdensVinculadas: 1,
		Ordens: []api.PeggingOrder{
			{Ordem: "OP-1001", DataFim: "2026-09-01", Status: "LIB", DiasAtraso: 3},
		},
	}
	var buf bytes.Buffer
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	got := buf.String()
	// Backend field names pass through as keywords, underscores intact.
	for _, want := range []string{
		`:material "4011835-AA"`,
		":cobertura_atual_dias 4.2",
		":total_ordens_vinculadas 1",
		`:ordem "OP-1001"`,
		":dias_atraso 3",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("edn missing %q:\n%s", want, got)
		}
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"a": []any{1.0, "x"}}
	if err := WriteEDN(&buf, v, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected pretty output with newlines, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected trailing newline, got %q", got)
	}
}
