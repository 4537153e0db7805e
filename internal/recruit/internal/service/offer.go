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

package service

import (
	"context"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./offer.go -package=svcmocks -destination=./mocks/offer.mock.go OfferService
type OfferService interface {
	// Create 申请必须已经通过面试，一个申请只能有一个 offer
	Create(ctx context.Context, tenantID, applicationID uuid.UUID, terms domain.Terms, expiresAt time.Time) (domain.Offer, error)
	SubmitForApproval(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)
	Approve(ctx context.Context, tenantID, id, approverID uuid.UUID) (domain.Offer, error)
	Send(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)
	// Accept 同一个事务里录用候选人，并且职位的已录用人数加一
	Accept(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)
	Decline(ctx context.Context, tenantID, id uuid.UUID, reason string) (domain.Offer, error)
	Negotiate(ctx context.Context, tenantID, id uuid.UUID, notes string) (domain.Offer, error)
	Revise(ctx context.Context, tenantID, id uuid.UUID, terms domain.Terms) (domain.Offer, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)
	Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)

	// FindExpirable 给过期任务用，不区分租户
	FindExpirable(ctx context.Context, now time.Time, afterID string, limit int) ([]domain.Offer, error)
	// Expire 幂等，返回这一次是否真的把 offer 置为过期
	Expire(ctx context.Context, o domain.Offer) (bool, error)
}

type offerService struct {
	statusNotifier
	repo    repository.OfferRepository
	appRepo repository.ApplicationRepository
	seq     SequenceGenerator
	now     func() time.Time
}

func NewOfferService(
	repo repository.OfferRepository,
	appRepo repository.ApplicationRepository,
	seq SequenceGenerator,
	producer event.RecruitmentEventProducer) OfferService {
	return &offerService{
		statusNotifier: statusNotifier{producer: producer, logger: elog.DefaultLogger},
		repo:           repo,
		appRepo:        appRepo,
		seq:            seq,
		now:            time.Now,
	}
}

func (s *offerService) Create(ctx context.Context, tenantID, applicationID uuid.UUID, terms domain.Terms, expiresAt time.Time) (domain.Offer, error) {
	app, err := s.appRepo.FindByID(ctx, tenantID, applicationID)
	if err != nil {
		return domain.Offer{}, err
	}
	now := s.now()
	from := app.Status
	if err = app.MakeOffer(now); err != nil {
		return domain.Offer{}, err
	}
	o, err := domain.NewOffer(tenantID, applicationID, terms, expiresAt, now)
	if err != nil {
		return domain.Offer{}, err
	}
	o.OfferNumber, err = s.seq.Next(ctx, tenantID, sequencenumber.BizOffer)
	if err != nil {
		return domain.Offer{}, err
	}
	o.Version = 1
	if err = s.repo.CreateWithApplication(ctx, o, app); err != nil {
		return domain.Offer{}, err
	}
	app.Version++
	countTransition(domain.ApplicationEntity, domain.ActionMakeOffer)
	s.notify(ctx, domain.StatusChange{Application: app, From: from})
	return o, nil
}

func (s *offerService) SubmitForApproval(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionSubmitForApproval, (*domain.Offer).SubmitForApproval)
}

func (s *offerService) Approve(ctx context.Context, tenantID, id, approverID uuid.UUID) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionApprove, func(o *domain.Offer, now time.Time) error {
		return o.Approve(approverID, now)
	})
}

func (s *offerService) Send(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionSend, (*domain.Offer).Send)
}

func (s *offerService) Decline(ctx context.Context, tenantID, id uuid.UUID, reason string) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionDecline, func(o *domain.Offer, now time.Time) error {
		return o.Decline(reason, now)
	})
}

func (s *offerService) Negotiate(ctx context.Context, tenantID, id uuid.UUID, notes string) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionNegotiate, func(o *domain.Offer, now time.Time) error {
		return o.Negotiate(notes, now)
	})
}

func (s *offerService) Revise(ctx context.Context, tenantID, id uuid.UUID, terms domain.Terms) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionRevise, func(o *domain.Offer, now time.Time) error {
		return o.Revise(terms, now)
	})
}

func (s *offerService) Cancel(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
	return s.transit(ctx, tenantID, id, domain.ActionCancel, (*domain.Offer).Cancel)
}

func (s *offerService) transit(ctx context.Context, tenantID, id uuid.UUID, action string,
	fn func(o *domain.Offer, now time.Time) error) (domain.Offer, error) {
	o, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Offer{}, err
	}
	if err = fn(&o, s.now()); err != nil {
		return domain.Offer{}, err
	}
	if err = s.repo.Save(ctx, o); err != nil {
		return domain.Offer{}, err
	}
	o.Version++
	countTransition(domain.OfferEntity, action)
	return o, nil
}

func (s *offerService) Accept(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
	o, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Offer{}, err
	}
	now := s.now()
	if err = o.Accept(now); err != nil {
		return domain.Offer{}, err
	}
	app, err := s.appRepo.FindByID(ctx, tenantID, o.ApplicationID)
	if err != nil {
		return domain.Offer{}, err
	}
	from := app.Status
	if err = app.Hire(now); err != nil {
		return domain.Offer{}, err
	}
	if err = s.repo.Accept(ctx, o, app); err != nil {
		return domain.Offer{}, err
	}
	o.Version++
	app.Version++
	countTransition(domain.OfferEntity, domain.ActionAccept)
	countTransition(domain.ApplicationEntity, domain.ActionHire)
	s.notify(ctx, domain.StatusChange{Application: app, From: from})
	return o, nil
}

func (s *offerService) Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *offerService) FindExpirable(ctx context.Context, now time.Time, afterID string, limit int) ([]domain.Offer, error) {
	return s.repo.FindExpirable(ctx, now, afterID, limit)
}

func (s *offerService) Expire(ctx context.Context, o domain.Offer) (bool, error) {
	ok, err := o.Expire(s.now())
	if err != nil || !ok {
		return false, err
	}
	if err = s.repo.Save(ctx, o); err != nil {
		return false, err
	}
	countTransition(domain.OfferEntity, domain.ActionExpire)
	return true, nil
}
