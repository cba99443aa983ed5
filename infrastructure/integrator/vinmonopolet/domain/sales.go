package vinmonopoletdomain

// SalesMonthRange delimita o período da consulta de vendas mensais.
// Os meses seguem o formato YYYY-MM e são repassados sem validação.
type SalesMonthRange struct {
	From string
	To   string
}

// MonthlySalesReport é indexado pela chave devolvida pela API
type MonthlySalesReport map[string][]StoreSales

type StoreSales struct {
	StoreID string         `json:"storeId"`
	Sales   []ProductSales `json:"sales"`
}

type ProductSales struct {
	ProductID     string      `json:"productId"`
	SalesVolume   float64     `json:"salesVolume"`
	SalesQuantity int         `json:"salesQuantity"`
	LastChanged   LastChanged `json:"lastChanged"`
}

// LastChanged mantém data e hora como texto, exatamente como recebidos
type LastChanged struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
