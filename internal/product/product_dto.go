package product

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	ProductNumber string          `json:"product_number" binding:"required"`
	Color         string          `json:"color"`
	StandardCost  decimal.Decimal `json:"standard_cost" binding:"required"`
	ListPrice     decimal.Decimal `json:"list_price" binding:"required"`
	SellStartDate string          `json:"sell_start_date" binding:"required"`
}

type UpdateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	Color        string          `json:"color"`
	StandardCost decimal.Decimal `json:"standard_cost" binding:"required"`
	ListPrice    decimal.Decimal `json:"list_price" binding:"required"`
	SellEndDate  *string         `json:"sell_end_date"`
}

type ProductResponse struct {
	ProductID     int             `json:"product_id"`
	Name          string          `json:"name"`
	ProductNumber string          `json:"product_number"`
	Color         string          `json:"color,omitempty"`
	StandardCost  decimal.Decimal `json:"standard_cost"`
	ListPrice     decimal.Decimal `json:"list_price"`
	SellStartDate string          `json:"sell_start_date"`
	SellEndDate   *string         `json:"sell_end_date"`
}
