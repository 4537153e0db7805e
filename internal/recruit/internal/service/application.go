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
	"errors"
	"time"

	"github.com/ecodeclub/hirebook/internal/applicant"
	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./application.go -package=svcmocks -destination=./mocks/application.mock.go ApplicationService
type ApplicationService interface {
	// Submit 候选人投递。职位必须开放，候选人不能在黑名单里，同一个职位只能投一次
	Submit(ctx context.Context, app domain.Application) (domain.Application, error)
	Screen(ctx context.Context, tenantID, id uuid.UUID, s domain.Screening, passed bool) (domain.Application, error)
	StartInterview(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error)
	// Reject 和 Withdraw 会一并取消还没有结束的 offer
	Reject(ctx context.Context, tenantID, id uuid.UUID, reason string) (domain.Application, error)
	Withdraw(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error)
	MoveStage(ctx context.Context, tenantID, id uuid.UUID, name string, order int) (domain.Application, error)
	Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ApplicationFilter, offset, limit int) ([]domain.Application, int64, error)
}

type applicationService struct {
	statusNotifier
	repo         repository.ApplicationRepository
	reqRepo      repository.RequisitionRepository
	offerRepo    repository.OfferRepository
	applicantSvc applicant.Service
	seq          SequenceGenerator
	now          func() time.Time
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	reqRepo repository.RequisitionRepository,
	offerRepo repository.OfferRepository,
	applicantSvc applicant.Service,
	seq SequenceGenerator,
	producer event.RecruitmentEventProducer) ApplicationService {
	return &applicationService{
		statusNotifier: statusNotifier{producer: producer, logger: elog.DefaultLogger},
		repo:           repo,
		reqRepo:        reqRepo,
		offerRepo:      offerRepo,
		applicantSvc:   applicantSvc,
		seq:            seq,
		now:            time.Now,
	}
}

func (s *applicationService) Submit(ctx context.Context, app domain.Application) (domain.Application, error) {
	now := s.now()
	req, err := s.reqRepo.FindByID(ctx, app.TenantID, app.RequisitionID)
	if err != nil {
		return domain.Application{}, err
	}
	if !req.IsOpen(now) {
		return domain.Application{}, errs.Invalid("职位 %s 当前不接受申请", req.Code)
	}
	candidate, err := s.applicantSvc.Detail(ctx, app.TenantID, app.ApplicantID)
	if err != nil {
		return domain.Application{}, err
	}
	if candidate.Blacklisted {
		return domain.Application{}, errs.Invalid("候选人 %s 在黑名单中", app.ApplicantID)
	}
	number, err := s.seq.Next(ctx, app.TenantID, sequencenumber.BizApplication)
	if err != nil {
		return domain.Application{}, err
	}
	res := domain.NewApplication(app.TenantID, app.RequisitionID, app.ApplicantID, now)
	res.ApplicationNumber = number
	res.CoverLetter = app.CoverLetter
	res.ResumeURL = app.ResumeURL
	if res.ResumeURL == "" {
		res.ResumeURL = candidate.ResumeURL
	}
	res.Source = app.Source
	res.Version = 1
	// 职位是否开放在事务里面还会再检查一次
	if err = s.repo.Create(ctx, res, domain.Today(now)); err != nil {
		return domain.Application{}, err
	}
	s.notify(ctx, domain.StatusChange{Application: res})
	return res, nil
}

func (s *applicationService) Screen(ctx context.Context, tenantID, id uuid.UUID, sc domain.Screening, passed bool) (domain.Application, error) {
	return s.transit(ctx, tenantID, id, domain.ActionScreen, func(app *domain.Application, now time.Time) error {
		return app.Screen(sc, passed, now)
	})
}

func (s *applicationService) StartInterview(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error) {
	return s.transit(ctx, tenantID, id, domain.ActionStartInterview, (*domain.Application).StartInterview)
}

func (s *applicationService) transit(ctx context.Context, tenantID, id uuid.UUID, action string,
	fn func(app *domain.Application, now time.Time) error) (domain.Application, error) {
	app, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Application{}, err
	}
	from := app.Status
	if err = fn(&app, s.now()); err != nil {
		return domain.Application{}, err
	}
	if err = s.repo.Save(ctx, app); err != nil {
		return domain.Application{}, err
	}
	app.Version++
	countTransition(domain.ApplicationEntity, action)
	s.notify(ctx, domain.StatusChange{Application: app, From: from})
	return app, nil
}

func (s *applicationService) Reject(ctx context.Context, tenantID, id uuid.UUID, reason string) (domain.Application, error) {
	return s.terminate(ctx, tenantID, id, domain.ActionReject, func(app *domain.Application, now time.Time) error {
		return app.Reject(reason, now)
	})
}

func (s *applicationService) Withdraw(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error) {
	return s.terminate(ctx, tenantID, id, domain.ActionWithdraw, (*domain.Application).Withdraw)
}

// terminate 终结申请。如果有进行中的 offer，两者在同一个事务里更新
func (s *applicationService) terminate(ctx context.Context, tenantID, id uuid.UUID, action string,
	fn func(app *domain.Application, now time.Time) error) (domain.Application, error) {
	app, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Application{}, err
	}
	from := app.Status
	now := s.now()
	if err = fn(&app, now); err != nil {
		return domain.Application{}, err
	}
	offer, err := s.offerRepo.FindByApplicationID(ctx, tenantID, id)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		err = s.repo.Save(ctx, app)
	case err != nil:
		return domain.Application{}, err
	case offer.IsTerminal():
		err = s.repo.Save(ctx, app)
	default:
		if err = offer.Cancel(now); err != nil {
			return domain.Application{}, err
		}
		err = s.repo.SaveWithOffer(ctx, app, offer)
		if err == nil {
			countTransition(domain.OfferEntity, domain.ActionCancel)
		}
	}
	if err != nil {
		return domain.Application{}, err
	}
	app.Version++
	countTransition(domain.ApplicationEntity, action)
	s.notify(ctx, domain.StatusChange{Application: app, From: from})
	return app, nil
}

func (s *applicationService) MoveStage(ctx context.Context, tenantID, id uuid.UUID, name string, order int) (domain.Application, error) {
	return s.transit(ctx, tenantID, id, domain.ActionMoveStage, func(app *domain.Application, now time.Time) error {
		return app.MoveToNextStage(name, order, now)
	})
}

func (s *applicationService) Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *applicationService) List(ctx context.Context, tenantID uuid.UUID, filter domain.ApplicationFilter, offset, limit int) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, tenantID, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, tenantID, filter)
		return err
	})
	return list, total, eg.Wait()
}
