package model

import "github.com/shopspring/decimal"

type ItemAddedToCart struct {
	ProductID string
	Quantity  int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type ItemRemovedFromCart struct {
	ProductID string
}

func (e ItemRemovedFromCart) Type() string { return "ItemRemovedFromCart" }

type CartCleared struct{}

func (e CartCleared) Type() string { return "CartCleared" }

type OrderPlaced struct {
	OrderID    string
	UserID     string
	TotalPrice decimal.Decimal
	ItemCount  int
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }
