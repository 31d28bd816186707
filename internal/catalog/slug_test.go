package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "boa-viagem", want: "boa-viagem"},
		{name: "uppercase", input: "Recife", want: "recife"},
		{name: "diacritics", input: "Tamandaré", want: "tamandare"},
		{name: "diacritics and spaces", input: "Jaboatão dos Guararapes", want: "jaboatao-dos-guararapes"},
		{name: "multiple spaces collapse", input: "cabo  de   santo agostinho", want: "cabo-de-santo-agostinho"},
		{name: "tilde and acute", input: "Sirinhaém", want: "sirinhaem"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Praia de Boa Viagem",
		"Tamandaré",
		"porto-de-galinhas",
		"ILHA DE ITAMARACÁ",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}

func TestNormalizeBeachForTides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "slugged praia-de prefix dropped", input: "praia-de-boa-viagem", want: "boa-viagem"},
		{name: "slugged praia-do prefix dropped", input: "praia-do-paiva", want: "paiva"},
		{name: "spaced name keeps words", input: "Praia de Boa Viagem", want: "praia-de-boa-viagem"},
		{name: "plain slug unchanged", input: "carneiros", want: "carneiros"},
		{name: "diacritics", input: "praia-de-maracaípe", want: "maracaipe"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeBeachForTides(tt.input))
		})
	}
}
