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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const applicationEntity = "申请"

type ApplicationDAO interface {
	// Create 插入申请并累加职位的申请数，两者在同一个事务里
	Create(ctx context.Context, app Application, today time.Time) error
	FindByID(ctx context.Context, tenantID, id string) (Application, error)
	Save(ctx context.Context, app Application) error
	// SaveWithOffer 拒绝或者撤回申请的时候需要同时取消 offer
	SaveWithOffer(ctx context.Context, app Application, offer Offer) error
	List(ctx context.Context, tenantID string, q ApplicationQuery, offset, limit int) ([]Application, error)
	Count(ctx context.Context, tenantID string, q ApplicationQuery) (int64, error)
}

type ApplicationQuery struct {
	RequisitionId string
	ApplicantId   string
	Status        string
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (d *GORMApplicationDAO) Create(ctx context.Context, app Application, today time.Time) error {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	app.Version = 1
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先更新计数，这一步会锁住职位，同时再检查一次职位是否开放，避免并发关闭
		res := tx.Model(&JobRequisition{}).
			Where("id = ? AND tenant_id = ? AND status = ? AND (close_date IS NULL OR close_date >= ?)",
				app.RequisitionId, app.TenantId, statusPublished, today).
			Updates(map[string]any{
				"application_count": gorm.Expr("application_count + 1"),
				"utime":             now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.Invalid("职位 %s 当前不接受申请", app.RequisitionId)
		}
		err := tx.Create(&app).Error
		if isDuplicateErr(err) {
			return errs.Duplicate("候选人 %s 已经申请过职位 %s", app.ApplicantId, app.RequisitionId)
		}
		return err
	})
}

func (d *GORMApplicationDAO) FindByID(ctx context.Context, tenantID, id string) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&app).Error
	return app, notFound(err, applicationEntity, id)
}

func (d *GORMApplicationDAO) Save(ctx context.Context, app Application) error {
	return saveApplication(d.db.WithContext(ctx), app)
}

func (d *GORMApplicationDAO) SaveWithOffer(ctx context.Context, app Application, offer Offer) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveApplication(tx, app); err != nil {
			return err
		}
		return saveOffer(tx, offer)
	})
}

var applicationMutableColumns = []string{
	"status", "current_stage", "stage_order",
	"screening_score", "screening_notes", "screener_id", "screened_at",
	"rejection_reason", "rejected_at", "withdrawn_at", "hired_at",
	"version", "utime",
}

func saveApplication(tx *gorm.DB, app Application) error {
	oldVersion := app.Version
	app.Version++
	app.Utime = time.Now().UnixMilli()
	return updateVersioned(tx, &app, applicationEntity, app.TenantId, oldVersion, applicationMutableColumns)
}

func (d *GORMApplicationDAO) List(ctx context.Context, tenantID string, q ApplicationQuery, offset, limit int) ([]Application, error) {
	var res []Application
	err := d.query(ctx, tenantID, q).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) Count(ctx context.Context, tenantID string, q ApplicationQuery) (int64, error) {
	var cnt int64
	err := d.query(ctx, tenantID, q).Model(&Application{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMApplicationDAO) query(ctx context.Context, tenantID string, q ApplicationQuery) *gorm.DB {
	db := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if q.RequisitionId != "" {
		db = db.Where("requisition_id = ?", q.RequisitionId)
	}
	if q.ApplicantId != "" {
		db = db.Where("applicant_id = ?", q.ApplicantId)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	return db
}

type Application struct {
	Id                string          `gorm:"type:char(36);primaryKey"`
	TenantId          string          `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_req_applicant,priority:1;uniqueIndex:uniq_tenant_number,priority:1"`
	RequisitionId     string          `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_req_applicant,priority:2;comment:'职位ID'"`
	ApplicantId       string          `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_req_applicant,priority:3;index:idx_applicant;comment:'候选人ID'"`
	ApplicationNumber string          `gorm:"type:varchar(32);not null;uniqueIndex:uniq_tenant_number,priority:2;comment:'申请编号 APP-YYYYMMDD-######'"`
	Status            string          `gorm:"type:varchar(32);not null"`
	CurrentStage      string          `gorm:"type:varchar(64)"`
	StageOrder        int             `gorm:"not null;default:0"`
	CoverLetter       string          `gorm:"type:text"`
	ResumeUrl         string          `gorm:"type:varchar(512)"`
	Source            string          `gorm:"type:varchar(64)"`
	ScreeningScore    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	ScreeningNotes    string          `gorm:"type:text"`
	ScreenerId        string          `gorm:"type:char(36)"`
	ScreenedAt        int64
	RejectionReason   string `gorm:"type:varchar(512)"`
	RejectedAt        int64
	WithdrawnAt       int64
	HiredAt           int64
	Version           int64 `gorm:"not null;default:1"`
	Ctime             int64
	Utime             int64
}

func (Application) TableName() string {
	return "applications"
}
