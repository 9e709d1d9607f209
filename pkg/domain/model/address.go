package model

import (
	"context"
	"time"
)

type ShippingAddress struct {
	ID            string    `json:"id,omitempty"`
	ProfileID     string    `json:"profile_id"`
	RecipientName string    `json:"recipient_name"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

type AddressRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]ShippingAddress, error)
	Insert(ctx context.Context, address ShippingAddress) (ShippingAddress, error)
}
