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

	"github.com/ecodeclub/hirebook/internal/applicant/internal/domain"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=applicantmocks -destination=../../mocks/applicant.mock.go Service
type Service interface {
	// Submit 候选人自己投递档案
	Submit(ctx context.Context, a domain.Applicant) (domain.Applicant, error)
	Update(ctx context.Context, a domain.Applicant) error
	Blacklist(ctx context.Context, tenantID, id uuid.UUID, reason string) error
	Unblacklist(ctx context.Context, tenantID, id uuid.UUID) error
	Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Applicant, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Applicant, int64, error)
}

type service struct {
	repo   repository.ApplicantRepository
	now    func() time.Time
	logger *elog.Component
}

func NewService(repo repository.ApplicantRepository) Service {
	return &service{
		repo:   repo,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, a domain.Applicant) (domain.Applicant, error) {
	if err := a.Normalize(); err != nil {
		return domain.Applicant{}, err
	}
	now := s.now()
	a.ID = uuid.New()
	// 新投递的档案不可能是黑名单
	a.Blacklisted, a.BlacklistReason, a.BlacklistedAt = false, "", time.Time{}
	a.Version = 1
	a.Ctime, a.Utime = now, now
	if err := s.repo.Create(ctx, a); err != nil {
		return domain.Applicant{}, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, a domain.Applicant) error {
	old, err := s.repo.FindByID(ctx, a.TenantID, a.ID)
	if err != nil {
		return err
	}
	if err = old.UpdateProfile(a, s.now()); err != nil {
		return err
	}
	return s.repo.UpdateProfile(ctx, old)
}

func (s *service) Blacklist(ctx context.Context, tenantID, id uuid.UUID, reason string) error {
	a, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err = a.Blacklist(reason, s.now()); err != nil {
		return err
	}
	err = s.repo.UpdateBlacklist(ctx, a)
	if err == nil {
		s.logger.Info("候选人被拉黑",
			elog.String("tenant", tenantID.String()),
			elog.String("applicant", id.String()),
			elog.String("reason", a.BlacklistReason))
	}
	return err
}

func (s *service) Unblacklist(ctx context.Context, tenantID, id uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !a.Blacklisted {
		return nil
	}
	a.Unblacklist(s.now())
	return s.repo.UpdateBlacklist(ctx, a)
}

func (s *service) Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Applicant, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Applicant, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Applicant
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, tenantID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, tenantID)
		return err
	})
	return list, total, eg.Wait()
}
