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

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const actionEdit = "edit"

//go:generate mockgen -source=./requisition.go -package=svcmocks -destination=./mocks/requisition.mock.go RequisitionService
type RequisitionService interface {
	// Save ID 为空的时候创建草稿，否则编辑
	Save(ctx context.Context, r domain.Requisition) (domain.Requisition, error)
	Submit(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	Publish(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	Close(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	Complete(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	List(ctx context.Context, tenantID uuid.UUID, statuses []domain.RequisitionStatus, offset, limit int) ([]domain.Requisition, int64, error)

	// PubList 候选人看到的职位，只包含还能申请的
	PubList(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Requisition, int64, error)
	// PubDetail 不开放的职位对候选人来说就是不存在
	PubDetail(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)

	// CloseIfFulfilled 已录用人数达到招聘人数时关闭职位，返回是否关闭
	CloseIfFulfilled(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
}

type requisitionService struct {
	repo   repository.RequisitionRepository
	now    func() time.Time
	logger *elog.Component
}

func NewRequisitionService(repo repository.RequisitionRepository) RequisitionService {
	return &requisitionService{
		repo:   repo,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (s *requisitionService) Save(ctx context.Context, r domain.Requisition) (domain.Requisition, error) {
	if r.ID == uuid.Nil {
		return s.create(ctx, r)
	}
	old, err := s.repo.FindByID(ctx, r.TenantID, r.ID)
	if err != nil {
		return domain.Requisition{}, err
	}
	if !old.Editable() {
		return domain.Requisition{}, errs.NewStateTransitionError(domain.RequisitionEntity, actionEdit, old.Status.String())
	}
	old.Code = r.Code
	old.Title = r.Title
	old.DepartmentID = r.DepartmentID
	old.PositionID = r.PositionID
	old.Description = r.Description
	old.Location = r.Location
	old.SalaryMin = r.SalaryMin
	old.SalaryMax = r.SalaryMax
	old.Currency = r.Currency
	old.Headcount = r.Headcount
	old.OpenDate = r.OpenDate
	old.CloseDate = r.CloseDate
	if err = old.Validate(); err != nil {
		return domain.Requisition{}, err
	}
	old.Utime = s.now()
	if err = s.repo.Save(ctx, old); err != nil {
		return domain.Requisition{}, err
	}
	old.Version++
	return old, nil
}

func (s *requisitionService) create(ctx context.Context, r domain.Requisition) (domain.Requisition, error) {
	if err := r.Validate(); err != nil {
		return domain.Requisition{}, err
	}
	now := s.now()
	r.ID = uuid.New()
	r.Status = domain.RequisitionStatusDraft
	r.ApplicationCount, r.ViewCount, r.HiredCount = 0, 0, 0
	r.Version = 1
	r.Ctime, r.Utime = now, now
	if err := s.repo.Create(ctx, r); err != nil {
		return domain.Requisition{}, err
	}
	return r, nil
}

func (s *requisitionService) Submit(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	return s.transit(ctx, tenantID, id, domain.ActionSubmit, (*domain.Requisition).Submit)
}

func (s *requisitionService) Publish(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	return s.transit(ctx, tenantID, id, domain.ActionPublish, (*domain.Requisition).Publish)
}

func (s *requisitionService) Close(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	return s.transit(ctx, tenantID, id, domain.ActionClose, (*domain.Requisition).Close)
}

func (s *requisitionService) Complete(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	return s.transit(ctx, tenantID, id, domain.ActionComplete, (*domain.Requisition).Complete)
}

func (s *requisitionService) Cancel(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	return s.transit(ctx, tenantID, id, domain.ActionCancel, (*domain.Requisition).Cancel)
}

func (s *requisitionService) transit(ctx context.Context, tenantID, id uuid.UUID, action string,
	fn func(r *domain.Requisition, now time.Time) error) (domain.Requisition, error) {
	r, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Requisition{}, err
	}
	if err = fn(&r, s.now()); err != nil {
		return domain.Requisition{}, err
	}
	if err = s.repo.Save(ctx, r); err != nil {
		return domain.Requisition{}, err
	}
	r.Version++
	countTransition(domain.RequisitionEntity, action)
	return r, nil
}

func (s *requisitionService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}

func (s *requisitionService) Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *requisitionService) List(ctx context.Context, tenantID uuid.UUID, statuses []domain.RequisitionStatus, offset, limit int) ([]domain.Requisition, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Requisition
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, tenantID, statuses, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, tenantID, statuses)
		return err
	})
	return list, total, eg.Wait()
}

func (s *requisitionService) PubList(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Requisition, int64, error) {
	today := domain.Today(s.now())
	var (
		eg    errgroup.Group
		list  []domain.Requisition
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListOpen(ctx, tenantID, today, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOpen(ctx, tenantID, today)
		return err
	})
	return list, total, eg.Wait()
}

func (s *requisitionService) PubDetail(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	r, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Requisition{}, err
	}
	if !r.IsOpen(s.now()) {
		return domain.Requisition{}, errs.NotFound("职位 %s", id)
	}
	// 浏览数不影响业务，失败了也照常返回
	if err = s.repo.IncrViewCount(ctx, tenantID, id); err != nil {
		s.logger.Warn("累加职位浏览数失败",
			elog.FieldErr(err),
			elog.String("requisition", id.String()))
		return r, nil
	}
	r.ViewCount++
	return r, nil
}

func (s *requisitionService) CloseIfFulfilled(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	r, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return false, err
	}
	if r.Status != domain.RequisitionStatusPublished || !r.Fulfilled() {
		return false, nil
	}
	if err = r.Close(s.now()); err != nil {
		return false, err
	}
	if err = s.repo.Save(ctx, r); err != nil {
		return false, err
	}
	countTransition(domain.RequisitionEntity, domain.ActionClose)
	s.logger.Info("职位已招满，自动关闭",
		elog.String("tenant", tenantID.String()),
		elog.String("requisition", id.String()),
		elog.Int64("hired", r.HiredCount),
		elog.Int("headcount", r.Headcount))
	return true, nil
}
