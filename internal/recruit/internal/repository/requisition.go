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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository/dao"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./requisition.go -package=repomocks -destination=./mocks/requisition.mock.go RequisitionRepository
type RequisitionRepository interface {
	Create(ctx context.Context, r domain.Requisition) error
	Save(ctx context.Context, r domain.Requisition) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)
	List(ctx context.Context, tenantID uuid.UUID, statuses []domain.RequisitionStatus, offset, limit int) ([]domain.Requisition, error)
	Count(ctx context.Context, tenantID uuid.UUID, statuses []domain.RequisitionStatus) (int64, error)
	// ListOpen 当天仍可申请的职位
	ListOpen(ctx context.Context, tenantID uuid.UUID, today time.Time, offset, limit int) ([]domain.Requisition, error)
	CountOpen(ctx context.Context, tenantID uuid.UUID, today time.Time) (int64, error)
	IncrViewCount(ctx context.Context, tenantID, id uuid.UUID) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type requisitionRepository struct {
	dao dao.RequisitionDAO
}

func NewRequisitionRepository(d dao.RequisitionDAO) RequisitionRepository {
	return &requisitionRepository{dao: d}
}

func (r *requisitionRepository) Create(ctx context.Context, req domain.Requisition) error {
	return r.dao.Insert(ctx, r.toEntity(req))
}

func (r *requisitionRepository) Save(ctx context.Context, req domain.Requisition) error {
	return r.dao.Save(ctx, r.toEntity(req))
}

func (r *requisitionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error) {
	res, err := r.dao.FindByID(ctx, tenantID.String(), id.String())
	if err != nil {
		return domain.Requisition{}, err
	}
	return r.toDomain(res), nil
}

func (r *requisitionRepository) List(ctx context.Context, tenantID uuid.UUID, statuses []domain.RequisitionStatus, offset, limit int) ([]domain.Requisition, error) {
	res, err := r.dao.List(ctx, tenantID.String(), r.statusQuery(statuses), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.JobRequisition) domain.Requisition {
		return r.toDomain(src)
	}), nil
}

func (r *requisitionRepository) Count(ctx context.Context, tenantID uuid.UUID, statuses []domain.RequisitionStatus) (int64, error) {
	return r.dao.Count(ctx, tenantID.String(), r.statusQuery(statuses))
}

func (r *requisitionRepository) ListOpen(ctx context.Context, tenantID uuid.UUID, today time.Time, offset, limit int) ([]domain.Requisition, error) {
	res, err := r.dao.List(ctx, tenantID.String(), r.openQuery(today), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.JobRequisition) domain.Requisition {
		return r.toDomain(src)
	}), nil
}

func (r *requisitionRepository) CountOpen(ctx context.Context, tenantID uuid.UUID, today time.Time) (int64, error) {
	return r.dao.Count(ctx, tenantID.String(), r.openQuery(today))
}

func (r *requisitionRepository) IncrViewCount(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.dao.IncrViewCount(ctx, tenantID.String(), id.String())
}

func (r *requisitionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.dao.Delete(ctx, tenantID.String(), id.String())
}

func (r *requisitionRepository) statusQuery(statuses []domain.RequisitionStatus) dao.RequisitionQuery {
	return dao.RequisitionQuery{
		Statuses: slice.Map(statuses, func(_ int, src domain.RequisitionStatus) string {
			return src.String()
		}),
	}
}

func (r *requisitionRepository) openQuery(today time.Time) dao.RequisitionQuery {
	return dao.RequisitionQuery{OpenOn: sql.Null[time.Time]{V: today, Valid: true}}
}

func (r *requisitionRepository) toEntity(req domain.Requisition) dao.JobRequisition {
	return dao.JobRequisition{
		Id:               req.ID.String(),
		TenantId:         req.TenantID.String(),
		Code:             req.Code,
		Title:            req.Title,
		DepartmentId:     uuidToString(req.DepartmentID),
		PositionId:       uuidToString(req.PositionID),
		Description:      req.Description,
		Location:         req.Location,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Currency:         req.Currency,
		Headcount:        req.Headcount,
		Status:           req.Status.String(),
		OpenDate:         toNullDate(req.OpenDate),
		CloseDate:        toNullDate(req.CloseDate),
		ApplicationCount: req.ApplicationCount,
		ViewCount:        req.ViewCount,
		HiredCount:       req.HiredCount,
		Version:          req.Version,
		Ctime:            toMillis(req.Ctime),
		Utime:            toMillis(req.Utime),
	}
}

func (r *requisitionRepository) toDomain(req dao.JobRequisition) domain.Requisition {
	return domain.Requisition{
		ID:               toUUID(req.Id),
		TenantID:         toUUID(req.TenantId),
		Code:             req.Code,
		Title:            req.Title,
		DepartmentID:     toUUID(req.DepartmentId),
		PositionID:       toUUID(req.PositionId),
		Description:      req.Description,
		Location:         req.Location,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Currency:         req.Currency,
		Headcount:        req.Headcount,
		Status:           domain.RequisitionStatus(req.Status),
		OpenDate:         fromNullDate(req.OpenDate),
		CloseDate:        fromNullDate(req.CloseDate),
		ApplicationCount: req.ApplicationCount,
		ViewCount:        req.ViewCount,
		HiredCount:       req.HiredCount,
		Version:          req.Version,
		Ctime:            fromMillis(req.Ctime),
		Utime:            fromMillis(req.Utime),
	}
}
