package dataservice

import (
	"context"

	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

type ProfileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func (r *ProfileRepository) Find(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.client.Table("profiles").Select("*").Eq("id", id).GetSingle(ctx, &profile)
	if errors.Is(err, ErrNoRows) {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
