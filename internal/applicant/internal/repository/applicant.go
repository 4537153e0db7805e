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
	"github.com/ecodeclub/hirebook/internal/applicant/internal/domain"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/repository/dao"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./applicant.go -package=repomocks -destination=./mocks/applicant.mock.go ApplicantRepository
type ApplicantRepository interface {
	Create(ctx context.Context, a domain.Applicant) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Applicant, error)
	UpdateProfile(ctx context.Context, a domain.Applicant) error
	UpdateBlacklist(ctx context.Context, a domain.Applicant) error
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Applicant, error)
	Count(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type applicantRepository struct {
	dao dao.ApplicantDAO
}

func NewApplicantRepository(d dao.ApplicantDAO) ApplicantRepository {
	return &applicantRepository{dao: d}
}

func (r *applicantRepository) Create(ctx context.Context, a domain.Applicant) error {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *applicantRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Applicant, error) {
	res, err := r.dao.FindByID(ctx, tenantID.String(), id.String())
	if err != nil {
		return domain.Applicant{}, err
	}
	return r.toDomain(res), nil
}

func (r *applicantRepository) UpdateProfile(ctx context.Context, a domain.Applicant) error {
	return r.dao.UpdateProfile(ctx, r.toEntity(a))
}

func (r *applicantRepository) UpdateBlacklist(ctx context.Context, a domain.Applicant) error {
	return r.dao.UpdateBlacklist(ctx, r.toEntity(a))
}

func (r *applicantRepository) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Applicant, error) {
	res, err := r.dao.List(ctx, tenantID.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Applicant) domain.Applicant {
		return r.toDomain(src)
	}), nil
}

func (r *applicantRepository) Count(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	return r.dao.Count(ctx, tenantID.String())
}

func (r *applicantRepository) toEntity(a domain.Applicant) dao.Applicant {
	var blacklistedAt int64
	if !a.BlacklistedAt.IsZero() {
		blacklistedAt = a.BlacklistedAt.UnixMilli()
	}
	return dao.Applicant{
		Id:        a.ID.String(),
		TenantId:  a.TenantID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		ResumeUrl: a.ResumeURL,
		Education: slice.Map(a.Education, func(_ int, src domain.Education) dao.Education {
			return dao.Education(src)
		}),
		Experience: slice.Map(a.Experience, func(_ int, src domain.Experience) dao.Experience {
			return dao.Experience(src)
		}),
		Skills:          a.Skills,
		Certificates:    a.Certificates,
		Languages:       a.Languages,
		Blacklisted:     a.Blacklisted,
		BlacklistReason: a.BlacklistReason,
		BlacklistedAt:   blacklistedAt,
		Version:         a.Version,
		Ctime:           a.Ctime.UnixMilli(),
		Utime:           a.Utime.UnixMilli(),
	}
}

func (r *applicantRepository) toDomain(a dao.Applicant) domain.Applicant {
	var blacklistedAt time.Time
	if a.BlacklistedAt > 0 {
		blacklistedAt = time.UnixMilli(a.BlacklistedAt)
	}
	return domain.Applicant{
		ID:        parseUUID(a.Id),
		TenantID:  parseUUID(a.TenantId),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		ResumeURL: a.ResumeUrl,
		Education: slice.Map(a.Education, func(_ int, src dao.Education) domain.Education {
			return domain.Education(src)
		}),
		Experience: slice.Map(a.Experience, func(_ int, src dao.Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Skills:          a.Skills,
		Certificates:    a.Certificates,
		Languages:       a.Languages,
		Blacklisted:     a.Blacklisted,
		BlacklistReason: a.BlacklistReason,
		BlacklistedAt:   blacklistedAt,
		Version:         a.Version,
		Ctime:           time.UnixMilli(a.Ctime),
		Utime:           time.UnixMilli(a.Utime),
	}
}

func parseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
