package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

func TestDecode_Corrupto(t *testing.T) {
	cases := map[string]string{
		"json truncado":   "{",
		"solo espacios":   "   ",
		"null":            "null",
		"objeto vacío":    "{}",
		"arreglo":         "[]",
		"basura al final": `{"products":[]} trailing-garbage`,
		"segundo objeto":  `{"settings":{"companyName":"A"}} {"settings":{"companyName":"B"}}`,
		"llave sobrante":  `{"settings":{"companyName":"A"}}}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := document.Decode([]byte(src))
			assert.ErrorIs(t, err, domain.ErrStoreCorrupt)
			assert.Nil(t, doc)
		})
	}
}

func TestDecode_EspaciosFinalesPermitidos(t *testing.T) {
	doc, err := document.Decode([]byte("{\"settings\":{\"companyName\":\"Externo\"}}\n\t "))
	require.NoError(t, err)
	assert.Equal(t, "Externo", doc.Settings.CompanyName)
	assert.NotNil(t, doc.Products, "las colecciones ausentes quedan como slices vacíos")
}

func TestEncodeDecode_DatosSemilla(t *testing.T) {
	data, err := document.Encode(document.Default(now))
	require.NoError(t, err)
	doc, err := document.Decode(data)
	require.NoError(t, err)
	assert.Len(t, doc.Users, 2)
	assert.Equal(t, 10, doc.Settings.LowStockThreshold)
}
