package schema

// Decimal fields travel as strings so no precision is lost between
// the data-acquisition side and the engine.
const CatalogSchemaTextV1 = `{
	"type": "array",
	"items": {
		"type": "record",
		"namespace": "storefront",
		"name": "product",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "category", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "price", "type": "string"},
			{"name": "original_price", "type": "string"},
			{"name": "currency", "type": "string"},
			{"name": "rating", "type": "string"},
			{"name": "review_count", "type": "long"},
			{"name": "is_new", "type": "boolean"},
			{"name": "is_sale", "type": "boolean"}
		]
	}
}`

type ProductV1 struct {
	ID            string `avro:"id"`
	Name          string `avro:"name"`
	Category      string `avro:"category"`
	Description   string `avro:"description"`
	Price         string `avro:"price"`
	OriginalPrice string `avro:"original_price"`
	Currency      string `avro:"currency"`
	Rating        string `avro:"rating"`
	ReviewCount   int    `avro:"review_count"`
	IsNew         bool   `avro:"is_new"`
	IsSale        bool   `avro:"is_sale"`
}
