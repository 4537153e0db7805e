// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository/dao"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./offer.go -package=repomocks -destination=./mocks/offer.mock.go OfferRepository
type OfferRepository interface {
	CreateWithApplication(ctx context.Context, o domain.Offer, app domain.Application) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)
	FindByApplicationID(ctx context.Context, tenantID, applicationID uuid.UUID) (domain.Offer, error)
	Save(ctx context.Context, o domain.Offer) error
	Accept(ctx context.Context, o domain.Offer, app domain.Application) error
	// FindExpirable 返回 id 大于 afterID 的一批已过期 offer，不区分租户
	FindExpirable(ctx context.Context, now time.Time, afterID string, limit int) ([]domain.Offer, error)
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) CreateWithApplication(ctx context.Context, o domain.Offer, app domain.Application) error {
	return r.dao.CreateWithApplication(ctx, offerToEntity(o), applicationToEntity(app))
}

func (r *offerRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
	res, err := r.dao.FindByID(ctx, tenantID.String(), id.String())
	if err != nil {
		return domain.Offer{}, err
	}
	return offerToDomain(res), nil
}

func (r *offerRepository) FindByApplicationID(ctx context.Context, tenantID, applicationID uuid.UUID) (domain.Offer, error) {
	res, err := r.dao.FindByApplicationID(ctx, tenantID.String(), applicationID.String())
	if err != nil {
		return domain.Offer{}, err
	}
	return offerToDomain(res), nil
}

func (r *offerRepository) Save(ctx context.Context, o domain.Offer) error {
	return r.dao.Save(ctx, offerToEntity(o))
}

func (r *offerRepository) Accept(ctx context.Context, o domain.Offer, app domain.Application) error {
	return r.dao.Accept(ctx, offerToEntity(o), applicationToEntity(app))
}

func (r *offerRepository) FindExpirable(ctx context.Context, now time.Time, afterID string, limit int) ([]domain.Offer, error) {
	statuses := slice.Map(domain.ActiveOfferStatuses, func(_ int, src domain.OfferStatus) string {
		return src.String()
	})
	res, err := r.dao.FindExpirable(ctx, now.UnixMilli(), statuses, afterID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Offer) domain.Offer {
		return offerToDomain(src)
	}), nil
}

func offerToEntity(o domain.Offer) dao.Offer {
	return dao.Offer{
		Id:               o.ID.String(),
		TenantId:         o.TenantID.String(),
		ApplicationId:    o.ApplicationID.String(),
		OfferNumber:      o.OfferNumber,
		Status:           o.Status.String(),
		BaseSalary:       o.Terms.BaseSalary,
		Bonus:            o.Terms.Bonus,
		Currency:         o.Terms.Currency,
		StartDate:        toNullDate(o.Terms.StartDate),
		Benefits:         o.Terms.Benefits,
		ExpiresAt:        toMillis(o.ExpiresAt),
		ApproverId:       uuidToString(o.ApproverID),
		ApprovedAt:       toMillis(o.ApprovedAt),
		SentAt:           toMillis(o.SentAt),
		RespondedAt:      toMillis(o.RespondedAt),
		DeclineReason:    o.DeclineReason,
		NegotiationNotes: o.NegotiationNotes,
		Version:          o.Version,
		Ctime:            toMillis(o.Ctime),
		Utime:            toMillis(o.Utime),
	}
}

func offerToDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		ID:            toUUID(o.Id),
		TenantID:      toUUID(o.TenantId),
		ApplicationID: toUUID(o.ApplicationId),
		OfferNumber:   o.OfferNumber,
		Status:        domain.OfferStatus(o.Status),
		Terms: domain.Terms{
			BaseSalary: o.BaseSalary,
			Bonus:      o.Bonus,
			Currency:   o.Currency,
			StartDate:  fromNullDate(o.StartDate),
			Benefits:   o.Benefits,
		},
		ExpiresAt:        fromMillis(o.ExpiresAt),
		ApproverID:       toUUID(o.ApproverId),
		ApprovedAt:       fromMillis(o.ApprovedAt),
		SentAt:           fromMillis(o.SentAt),
		RespondedAt:      fromMillis(o.RespondedAt),
		DeclineReason:    o.DeclineReason,
		NegotiationNotes: o.NegotiationNotes,
		Version:          o.Version,
		Ctime:            fromMillis(o.Ctime),
		Utime:            fromMillis(o.Utime),
	}
}
