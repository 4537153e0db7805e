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

//go:generate mockgen -source=./application.go -package=repomocks -destination=./mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application, today time.Time) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error)
	Save(ctx context.Context, app domain.Application) error
	SaveWithOffer(ctx context.Context, app domain.Application, offer domain.Offer) error
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ApplicationFilter, offset, limit int) ([]domain.Application, error)
	Count(ctx context.Context, tenantID uuid.UUID, filter domain.ApplicationFilter) (int64, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application, today time.Time) error {
	return r.dao.Create(ctx, applicationToEntity(app), today)
}

func (r *applicationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Application, error) {
	res, err := r.dao.FindByID(ctx, tenantID.String(), id.String())
	if err != nil {
		return domain.Application{}, err
	}
	return applicationToDomain(res), nil
}

func (r *applicationRepository) Save(ctx context.Context, app domain.Application) error {
	return r.dao.Save(ctx, applicationToEntity(app))
}

func (r *applicationRepository) SaveWithOffer(ctx context.Context, app domain.Application, offer domain.Offer) error {
	return r.dao.SaveWithOffer(ctx, applicationToEntity(app), offerToEntity(offer))
}

func (r *applicationRepository) List(ctx context.Context, tenantID uuid.UUID, filter domain.ApplicationFilter, offset, limit int) ([]domain.Application, error) {
	res, err := r.dao.List(ctx, tenantID.String(), r.toQuery(filter), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Application) domain.Application {
		return applicationToDomain(src)
	}), nil
}

func (r *applicationRepository) Count(ctx context.Context, tenantID uuid.UUID, filter domain.ApplicationFilter) (int64, error) {
	return r.dao.Count(ctx, tenantID.String(), r.toQuery(filter))
}

func (r *applicationRepository) toQuery(filter domain.ApplicationFilter) dao.ApplicationQuery {
	return dao.ApplicationQuery{
		RequisitionId: uuidToString(filter.RequisitionID),
		ApplicantId:   uuidToString(filter.ApplicantID),
		Status:        filter.Status.String(),
	}
}

func applicationToEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:                app.ID.String(),
		TenantId:          app.TenantID.String(),
		RequisitionId:     app.RequisitionID.String(),
		ApplicantId:       app.ApplicantID.String(),
		ApplicationNumber: app.ApplicationNumber,
		Status:            app.Status.String(),
		CurrentStage:      app.CurrentStage,
		StageOrder:        app.StageOrder,
		CoverLetter:       app.CoverLetter,
		ResumeUrl:         app.ResumeURL,
		Source:            app.Source,
		ScreeningScore:    app.Screening.Score,
		ScreeningNotes:    app.Screening.Notes,
		ScreenerId:        uuidToString(app.Screening.ScreenerID),
		ScreenedAt:        toMillis(app.Screening.ScreenedAt),
		RejectionReason:   app.RejectionReason,
		RejectedAt:        toMillis(app.RejectedAt),
		WithdrawnAt:       toMillis(app.WithdrawnAt),
		HiredAt:           toMillis(app.HiredAt),
		Version:           app.Version,
		Ctime:             toMillis(app.Ctime),
		Utime:             toMillis(app.Utime),
	}
}

func applicationToDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:                toUUID(app.Id),
		TenantID:          toUUID(app.TenantId),
		RequisitionID:     toUUID(app.RequisitionId),
		ApplicantID:       toUUID(app.ApplicantId),
		ApplicationNumber: app.ApplicationNumber,
		Status:            domain.ApplicationStatus(app.Status),
		CurrentStage:      app.CurrentStage,
		StageOrder:        app.StageOrder,
		CoverLetter:       app.CoverLetter,
		ResumeURL:         app.ResumeUrl,
		Source:            app.Source,
		Screening: domain.Screening{
			Score:      app.ScreeningScore,
			Notes:      app.ScreeningNotes,
			ScreenerID: toUUID(app.ScreenerId),
			ScreenedAt: fromMillis(app.ScreenedAt),
		},
		RejectionReason: app.RejectionReason,
		RejectedAt:      fromMillis(app.RejectedAt),
		WithdrawnAt:     fromMillis(app.WithdrawnAt),
		HiredAt:         fromMillis(app.HiredAt),
		Version:         app.Version,
		Ctime:           fromMillis(app.Ctime),
		Utime:           fromMillis(app.Utime),
	}
}
