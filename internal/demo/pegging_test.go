package demo

import (
	"reflect"
	"testing"
)

func TestPegging_BlankMaterial(t *testing.T) {
	if got := Pegging(""); got != nil {
		t.Fatalf("expected nil for empty material, got %+v", got)
	}
	if got := Pegging("   "); got != nil {
		t.Fatalf("expected nil for blank material, got %+v", got)
	}
}

func TestPegging_CanonicalReturnsSeedUnchanged(t *testing.T) {
	want := seed()
	got := Pegging(CanonicalMaterial)
	if got == nil {
		t.Fatal("expected dataset")
	}
	if !reflect.DeepEqual(*got, want) {
		t.Fatalf("canonical dataset differs from seed:\ngot  %+v\nwant %+v", *got, want)
	}
}

func TestPegging_SubstitutesMaterialEverywhere(t *testing.T) {
	got := Pegging("MAT-0099")
	if got == nil {
		t.Fatal("expected dataset")
	}
	if got.Material != "MAT-0099" {
		t.Fatalf("top-level material not substituted: %q", got.Material)
	}
	ref := seed()
	if len(got.Ordens) != len(ref.Ordens) {
		t.Fatalf("expected %d orders, got %d", len(ref.Ordens), len(got.Ordens))
	}
	for i, o := range got.Ordens {
		if o.Material != "MAT-0099" {
			t.Fatalf("order %d material not substituted: %q", i, o.Material)
		}
		// Everything except the material must match the seed exactly.
		want := ref.Ordens[i]
		want.Material = "MAT-0099"
		if !reflect.DeepEqual(o, want) {
			t.Fatalf("order %d fields changed beyond material:\ngot  %+v\nwant %+v", i, o, want)
		}
	}
	if got.TotalOrdensVinculadas != ref.TotalOrdensVinculadas ||
		got.OrdensAtrasadas != ref.OrdensAtrasadas ||
		got.MaiorAtrasoDias != ref.MaiorAtrasoDias {
		t.Fatalf("counters changed: %+v", got)
	}
}

func TestPegging_CloneIsIdempotentAndIsolated(t *testing.T) {
	a := Pegging("MAT-0099")
	b := Pegging("MAT-0099")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("cloning twice with the same code must be structurally equal")
	}

	// Mutating one clone must not leak into later calls.
	a.Ordens[0].Status = "TECO"
	*a.CoberturaAtualDias = -1
	c := Pegging("MAT-0099")
	if c.Ordens[0].Status == "TECO" || *c.CoberturaAtualDias == -1 {
		t.Fatal("clones share backing storage with the seed")
	}
}
