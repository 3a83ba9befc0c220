package models

import (
	"time"
)

// Product model corresponds to the 'products' table in the database.
type Product struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null;index" json:"name"`
	Description string     `gorm:"size:500" json:"description"`
	Price       float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	InStock     bool       `json:"inStock"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// ProductInput is the JSON payload accepted by create and update requests.
// InStock is a pointer so an omitted field can fall back to the default (true).
type ProductInput struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"required,gt=0,lte=999999.99"`
	InStock     *bool   `json:"inStock"`
}

// ToProduct builds a Product from the payload, applying defaults.
func (in ProductInput) ToProduct() Product {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	return Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		InStock:     inStock,
	}
}
