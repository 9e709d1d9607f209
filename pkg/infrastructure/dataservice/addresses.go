package dataservice

import (
	"context"

	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

type AddressRepository struct {
	client *Client
}

func NewAddressRepository(client *Client) *AddressRepository {
	return &AddressRepository{client: client}
}

func (r *AddressRepository) ListByProfile(ctx context.Context, profileID string) ([]model.ShippingAddress, error) {
	var addresses []model.ShippingAddress
	err := r.client.Table("shipping_addresses").
		Select("*").
		Eq("profile_id", profileID).
		OrderBy("created_at", true).
		Get(ctx, &addresses)
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *AddressRepository) Insert(ctx context.Context, address model.ShippingAddress) (model.ShippingAddress, error) {
	var inserted []model.ShippingAddress
	if err := r.client.Table("shipping_addresses").Insert(ctx, []model.ShippingAddress{address}, &inserted); err != nil {
		return model.ShippingAddress{}, err
	}
	if len(inserted) == 0 {
		return model.ShippingAddress{}, errors.New("data service: address insert returned no representation")
	}
	return inserted[0], nil
}
