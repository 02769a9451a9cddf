package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID     int    `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex:uq_product_name"`
	ProductNumber string `gorm:"uniqueIndex:uq_product_number"`
	Color         string
	StandardCost  decimal.Decimal `gorm:"type:numeric(19,4)"`
	ListPrice     decimal.Decimal `gorm:"type:numeric(19,4)"`
	SellStartDate time.Time
	SellEndDate   *time.Time
	ModifiedDate  time.Time
}

func (Product) TableName() string { return "products" }
