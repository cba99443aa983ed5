package vinmonopoletdomain

type PriceConditionsReport map[string]PriceConditions

type PriceConditions struct {
	PriceElements []PriceElement `json:"priceElements"`
}

// PriceElement traz os componentes do preço de um produto.
// Nenhum campo é derivado dos demais.
type PriceElement struct {
	SalesPrice        float64 `json:"salesPrice"`
	Markup            float64 `json:"markup"`
	DDUPrice          float64 `json:"dduPrice"`
	SalesPricePrLiter float64 `json:"salesPricePrLiter"`
	ValueAddedTax     float64 `json:"valueAddedTax"`
	AlcoholTax        float64 `json:"alcoholTax"`
	EcoTax            float64 `json:"ecoTax"`
	PackagingTax      float64 `json:"packagingTax"`
	BottleReturnValue float64 `json:"bottleReturnValue"`
}
