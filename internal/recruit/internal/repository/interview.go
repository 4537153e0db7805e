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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository/dao"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./interview.go -package=repomocks -destination=./mocks/interview.mock.go InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, i domain.Interview) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)
	Save(ctx context.Context, i domain.Interview) error
	SaveWithApplication(ctx context.Context, i domain.Interview, app domain.Application) error
	ListByApplication(ctx context.Context, tenantID, applicationID uuid.UUID) ([]domain.Interview, error)

	SaveScore(ctx context.Context, s domain.InterviewScore) (domain.InterviewScore, error)
	FindScores(ctx context.Context, tenantID, interviewID uuid.UUID) ([]domain.InterviewScore, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Create(ctx context.Context, i domain.Interview) error {
	return r.dao.Insert(ctx, r.toEntity(i))
}

func (r *interviewRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error) {
	res, err := r.dao.FindByID(ctx, tenantID.String(), id.String())
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(res), nil
}

func (r *interviewRepository) Save(ctx context.Context, i domain.Interview) error {
	return r.dao.Save(ctx, r.toEntity(i))
}

func (r *interviewRepository) SaveWithApplication(ctx context.Context, i domain.Interview, app domain.Application) error {
	return r.dao.SaveWithApplication(ctx, r.toEntity(i), applicationToEntity(app))
}

func (r *interviewRepository) ListByApplication(ctx context.Context, tenantID, applicationID uuid.UUID) ([]domain.Interview, error) {
	res, err := r.dao.ListByApplication(ctx, tenantID.String(), applicationID.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) SaveScore(ctx context.Context, s domain.InterviewScore) (domain.InterviewScore, error) {
	res, err := r.dao.UpsertScore(ctx, dao.InterviewScore{
		Id:            s.ID.String(),
		TenantId:      s.TenantID.String(),
		InterviewId:   s.InterviewID.String(),
		InterviewerId: s.InterviewerID.String(),
		Criterion:     s.Criterion,
		Score:         s.Score,
		MaxScore:      s.MaxScore,
		Weight:        s.Weight,
		Comment:       s.Comment,
	})
	if err != nil {
		return domain.InterviewScore{}, err
	}
	return r.scoreToDomain(res), nil
}

func (r *interviewRepository) FindScores(ctx context.Context, tenantID, interviewID uuid.UUID) ([]domain.InterviewScore, error) {
	res, err := r.dao.FindScores(ctx, tenantID.String(), interviewID.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.InterviewScore) domain.InterviewScore {
		return r.scoreToDomain(src)
	}), nil
}

func (r *interviewRepository) scoreToDomain(src dao.InterviewScore) domain.InterviewScore {
	return domain.InterviewScore{
		ID:            toUUID(src.Id),
		TenantID:      toUUID(src.TenantId),
		InterviewID:   toUUID(src.InterviewId),
		InterviewerID: toUUID(src.InterviewerId),
		Criterion:     src.Criterion,
		Score:         src.Score,
		MaxScore:      src.MaxScore,
		Weight:        src.Weight,
		Comment:       src.Comment,
		Ctime:         fromMillis(src.Ctime),
		Utime:         fromMillis(src.Utime),
	}
}

func (r *interviewRepository) toEntity(i domain.Interview) dao.Interview {
	return dao.Interview{
		Id:              i.ID.String(),
		TenantId:        i.TenantID.String(),
		ApplicationId:   i.ApplicationID.String(),
		Round:           i.Round,
		Type:            i.Type,
		Status:          i.Status.String(),
		StartAt:         toMillis(i.Schedule.StartAt),
		DurationMinutes: i.Schedule.DurationMinutes,
		Location:        i.Schedule.Location,
		MeetingLink:     i.Schedule.MeetingLink,
		Interviewers:    i.Interviewers,
		Result:          i.Result,
		OverallScore:    i.OverallScore,
		ResultNotes:     i.ResultNotes,
		StartedAt:       toMillis(i.StartedAt),
		EndedAt:         toMillis(i.EndedAt),
		Version:         i.Version,
		Ctime:           toMillis(i.Ctime),
		Utime:           toMillis(i.Utime),
	}
}

func (r *interviewRepository) toDomain(i dao.Interview) domain.Interview {
	return domain.Interview{
		ID:            toUUID(i.Id),
		TenantID:      toUUID(i.TenantId),
		ApplicationID: toUUID(i.ApplicationId),
		Round:         i.Round,
		Type:          i.Type,
		Status:        domain.InterviewStatus(i.Status),
		Schedule: domain.Schedule{
			StartAt:         fromMillis(i.StartAt),
			DurationMinutes: i.DurationMinutes,
			Location:        i.Location,
			MeetingLink:     i.MeetingLink,
		},
		Interviewers: i.Interviewers,
		Result:       i.Result,
		OverallScore: i.OverallScore,
		ResultNotes:  i.ResultNotes,
		StartedAt:    fromMillis(i.StartedAt),
		EndedAt:      fromMillis(i.EndedAt),
		Version:      i.Version,
		Ctime:        fromMillis(i.Ctime),
		Utime:        fromMillis(i.Utime),
	}
}
