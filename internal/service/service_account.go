package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/models"
)

type accountService struct {
	adapter adapter.InstanceAdapter
}

func NewAccountService(instance adapter.InstanceAdapter) AccountService {
	return &accountService{adapter: instance}
}

func (a *accountService) Me(ctx context.Context) (models.Account, error) {
	me, err := a.adapter.VerifyCredentials(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("verify credentials: %w", err)
	}
	return me, nil
}

func (a *accountService) Lookup(ctx context.Context, acct string) (models.Account, error) {
	account, err := a.adapter.LookupAccount(ctx, acct)
	if err != nil {
		return models.Account{}, fmt.Errorf("lookup %s: %w", acct, err)
	}
	return account, nil
}

func (a *accountService) Relationship(ctx context.Context, id string) (models.Relationship, error) {
	rels, err := a.adapter.Relationships(ctx, []string{id})
	if err != nil {
		return models.Relationship{}, fmt.Errorf("relationship with %s: %w", id, err)
	}
	for _, rel := range rels {
		if rel.ID == id {
			return rel, nil
		}
	}
	return models.Relationship{}, fmt.Errorf("%w: %s", ErrRelationshipMissing, id)
}

func (a *accountService) ToggleFollow(ctx context.Context, id string) (models.Relationship, error) {
	rel, err := a.Relationship(ctx, id)
	if err != nil {
		return models.Relationship{}, err
	}

	if rel.Following || rel.Requested {
		rel, err = a.adapter.Unfollow(ctx, id)
	} else {
		rel, err = a.adapter.Follow(ctx, id)
	}
	if err != nil {
		return models.Relationship{}, fmt.Errorf("toggle follow %s: %w", id, err)
	}
	return rel, nil
}
