package domain

type ProductRecommendation struct {
	Rank        int     `json:"rank"`
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
}
