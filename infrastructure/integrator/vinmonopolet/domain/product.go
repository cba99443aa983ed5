package vinmonopoletdomain

type ProductDetailsReport map[string]ProductDetails

type ProductDetails struct {
	Basic       BasicDetails `json:"basic"`
	LastChanged LastChanged  `json:"lastChanged"`
}

type BasicDetails struct {
	ProductID        string `json:"productId"`
	ProductShortName string `json:"productShortName"`
}
