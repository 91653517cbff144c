package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is an immutable catalog entry. Products are created by seeding and
// are never mutated or deleted in normal operation.
type Product struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
	Description string  `json:"description" bson:"description"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image" binding:"required,url"`
	Description string  `json:"description" binding:"max=2000"`
}

func (req *CreateProductRequest) ToProduct() *Product {
	return &Product{
		ID:          NewID(),
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	}
}

// NewID returns a fresh unique identifier. ObjectID hex keeps identifiers the
// same shape across the Mongo and in-memory stores.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// DefaultCatalog is the sample product set used by the seed tool and as the
// initial catalog of the in-memory store. IDs are fixed so both stores serve
// the same catalog.
func DefaultCatalog() []*Product {
	return []*Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Price:       99.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
			Description: "High-quality wireless headphones with noise cancellation",
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
			Description: "Fitness tracking smartwatch with heart rate monitor",
		},
		{
			ID:          "3",
			Name:        "Gaming Keyboard",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=300&h=300&fit=crop",
			Description: "Mechanical gaming keyboard with RGB lighting",
		},
		{
			ID:          "4",
			Name:        "Bluetooth Speaker",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop",
			Description: "Portable Bluetooth speaker with 360-degree sound",
		},
		{
			ID:          "5",
			Name:        "Laptop Stand",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300&h=300&fit=crop",
			Description: "Adjustable aluminum laptop stand for better ergonomics",
		},
		{
			ID:          "6",
			Name:        "Phone Case",
			Price:       19.99,
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop",
			Description: "Protective phone case with shock absorption",
		},
		{
			ID:          "7",
			Name:        "USB-C Cable",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=300&h=300&fit=crop",
			Description: "High-speed USB-C cable for fast charging and data transfer",
		},
		{
			ID:          "8",
			Name:        "Desk Lamp",
			Price:       39.99,
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop",
			Description: "LED desk lamp with adjustable brightness and color temperature",
		},
	}
}
