// Package demo supplies the deterministic pegging dataset shown when the
// backend cannot serve /pegging/ia-lite. Only the pegging panel falls back
// to it; every other panel surfaces the failure.
package demo

import (
	"strings"

	"pcp360/internal/api"
)

// CanonicalMaterial keys the seed dataset. Any other requested material
// gets a templated clone of the seed with the code substituted.
const CanonicalMaterial = "4011835-AA"

func score(v float64) *float64 { return &v }

func seed() api.PeggingLite {
	cobertura := 4.2
	return api.PeggingLite{
		Material:              CanonicalMaterial,
		Descricao:             "MODULO AIRBAG MOTORISTA - LINHA 3101",
		CoberturaAtualDias:    &cobertura,
		TotalOrdensVinculadas: 5,
		OrdensAtrasadas:       3,
		MaiorAtrasoDias:       12,
		Ordens: []api.PeggingOrder{
			{
				Ordem:            "000100234501",
				Material:         CanonicalMaterial,
				DataFim:          "2026-08-11",
				Status:           "REL  MSPT SETC",
				DiasAtraso:       12,
				Quantidade:       240,
				CriticidadeScore: score(88),
			},
			{
				Ordem:            "000100234552",
				Material:         CanonicalMaterial,
				DataFim:          "2026-08-15",
				Status:           "REL  CONF",
				DiasAtraso:       8,
				Quantidade:       360,
				CriticidadeScore: score(74),
			},
			{
				Ordem:            "000100234617",
				Material:         CanonicalMaterial,
				DataFim:          "2026-08-20",
				Status:           "REL  MACM",
				DiasAtraso:       3,
				Quantidade:       120,
				CriticidadeScore: score(55),
			},
			{
				Ordem:            "000100234702",
				Material:         CanonicalMaterial,
				DataFim:          "2026-08-27",
				Status:           "REL",
				DiasAtraso:       0,
				Quantidade:       480,
				CriticidadeScore: score(32),
			},
			{
				Ordem:            "000100234790",
				Material:         CanonicalMaterial,
				DataFim:          "2026-09-03",
				Status:           "CRTD",
				DiasAtraso:       0,
				Quantidade:       240,
				CriticidadeScore: score(18),
			},
		},
	}
}

// Pegging returns the demo dataset for material, or nil when material is
// blank after trimming. The canonical code gets the seed as-is; any other
// code gets a deep clone with the material substituted at the top level and
// in every order, all other fields untouched.
func Pegging(material string) *api.PeggingLite {
	code := strings.TrimSpace(material)
	if code == "" {
		return nil
	}

	p := seed()
	out := p
	out.Ordens = make([]api.PeggingOrder, len(p.Ordens))
	for i, o := range p.Ordens {
		if o.CriticidadeScore != nil {
			s := *o.CriticidadeScore
			o.CriticidadeScore = &s
		}
		o.Material = code
		out.Ordens[i] = o
	}
	if p.CoberturaAtualDias != nil {
		c := *p.CoberturaAtualDias
		out.CoberturaAtualDias = &c
	}
	out.Material = code
	return &out
}
