// Package schema is the interchange format between the external
// data-acquisition collaborator and the catalog engine: an Avro-encoded
// snapshot of the full product catalog.
package schema

import (
	"fmt"

	"github.com/glamourbeauty/storefront/internal/domain"
	"github.com/hamba/avro/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type CatalogSerde struct {
	avroSchema avro.Schema
}

func NewCatalogSerde() (CatalogSerde, error) {
	avroSchema, err := avro.Parse(CatalogSchemaTextV1)
	if err != nil {
		return CatalogSerde{}, fmt.Errorf("avro.Parse: %w", err)
	}

	return CatalogSerde{avroSchema: avroSchema}, nil
}

func (s CatalogSerde) Encode(products []domain.Product) ([]byte, error) {
	wire := make([]ProductV1, 0, len(products))
	for _, p := range products {
		wire = append(wire, fromDomain(p))
	}

	data, err := avro.Marshal(s.avroSchema, wire)
	if err != nil {
		return nil, fmt.Errorf("avro.Marshal: %w", err)
	}

	return data, nil
}

func (s CatalogSerde) Decode(data []byte) ([]domain.Product, error) {
	var wire []ProductV1
	if err := avro.Unmarshal(s.avroSchema, data, &wire); err != nil {
		return nil, fmt.Errorf("avro.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		p, err := toDomain(w)
		if err != nil {
			return nil, fmt.Errorf("toDomain: %w", err)
		}

		products = append(products, p)
	}

	return products, nil
}

func fromDomain(p domain.Product) ProductV1 {
	return ProductV1{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price.Amount.String(),
		OriginalPrice: p.OriginalPrice.Amount.String(),
		Currency:      p.Price.Currency.String(),
		Rating:        p.Rating.String(),
		ReviewCount:   p.ReviewCount,
		IsNew:         p.IsNew,
		IsSale:        p.IsSale,
	}
}

func toDomain(w ProductV1) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(w.Currency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", w.Currency, err)
	}

	price, err := decimal.NewFromString(w.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", w.Price, err)
	}

	originalPrice, err := decimal.NewFromString(w.OriginalPrice)
	if err != nil {
		return domain.Product{}, fmt.Errorf("original_price[%s] is not valid: %w", w.OriginalPrice, err)
	}

	rating, err := decimal.NewFromString(w.Rating)
	if err != nil {
		return domain.Product{}, fmt.Errorf("rating[%s] is not valid: %w", w.Rating, err)
	}

	return domain.Product{
		ID:            w.ID,
		Name:          w.Name,
		Category:      w.Category,
		Description:   w.Description,
		Price:         domain.NewMoney(price, parsedCurrency),
		OriginalPrice: domain.NewMoney(originalPrice, parsedCurrency),
		Rating:        rating,
		ReviewCount:   w.ReviewCount,
		IsNew:         w.IsNew,
		IsSale:        w.IsSale,
	}, nil
}
