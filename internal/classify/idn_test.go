package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIDN(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"economie.gouv.fr", false},
		{"service-public.fr", false},
		// Accented label kept as-is by the normalizer.
		{"région-normandie.fr", true},
		// Punycode form of "café.fr".
		{"xn--caf-dma.fr", true},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIDN(tt.domain))
		})
	}
}
