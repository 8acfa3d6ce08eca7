package domain

// CREATE TABLE public.product_similarities (
//     product   TEXT NOT NULL,
//     neighbor  TEXT NOT NULL,
//     score     DOUBLE PRECISION NOT NULL,
//     PRIMARY KEY (product, neighbor)
// );

type ProductSimilarity struct {
	Product  string  `gorm:"column:product;primaryKey;type:text"`
	Neighbor string  `gorm:"column:neighbor;primaryKey;type:text"`
	Score    float64 `gorm:"column:score;not null"`
}

func (ProductSimilarity) TableName() string {
	return "product_similarities"
}
