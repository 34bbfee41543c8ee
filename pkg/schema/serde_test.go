package schema_test

import (
	"testing"

	"github.com/glamourbeauty/storefront/internal/catalog"
	"github.com/glamourbeauty/storefront/pkg/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCatalogSerdeRoundTrip(t *testing.T) {
	serde, err := schema.NewCatalogSerde()
	require.NoError(t, err)

	seed := catalog.Seed()

	data, err := serde.Encode(seed)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := serde.Decode(data)
	require.NoError(t, err)

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	diff := cmp.Diff(seed, decoded, currencyComparer)
	assert.Empty(t, diff)
}

func TestCatalogSerdeDecodeInvalid(t *testing.T) {
	serde, err := schema.NewCatalogSerde()
	require.NoError(t, err)

	avroSchema, err := avro.Parse(schema.CatalogSchemaTextV1)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mutate    func(*schema.ProductV1)
		wantError string
	}{
		{
			name:      "unknown currency: error",
			mutate:    func(p *schema.ProductV1) { p.Currency = "GLAM" },
			wantError: "currency[GLAM] is not valid",
		},
		{
			name:      "malformed price: error",
			mutate:    func(p *schema.ProductV1) { p.Price = "a-lot" },
			wantError: "price[a-lot] is not valid",
		},
		{
			name:      "malformed rating: error",
			mutate:    func(p *schema.ProductV1) { p.Rating = "five stars" },
			wantError: "rating[five stars] is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := schema.ProductV1{
				ID:            "1",
				Name:          "Luxury Foundation",
				Category:      "makeup",
				Price:         "45.99",
				OriginalPrice: "59.99",
				Currency:      "USD",
				Rating:        "4.8",
				ReviewCount:   1247,
			}
			tt.mutate(&wire)

			data, err := avro.Marshal(avroSchema, []schema.ProductV1{wire})
			require.NoError(t, err)

			_, err = serde.Decode(data)
			require.ErrorContains(t, err, tt.wantError)
		})
	}
}
