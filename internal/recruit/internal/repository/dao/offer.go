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
	"database/sql"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const offerEntity = "offer"

type OfferDAO interface {
	// CreateWithApplication 创建 offer，同时把申请推进到待发 offer
	CreateWithApplication(ctx context.Context, o Offer, app Application) error
	FindByID(ctx context.Context, tenantID, id string) (Offer, error)
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) (Offer, error)
	Save(ctx context.Context, o Offer) error
	// Accept offer 接受、申请录用、职位已录用人数加一，三者同一个事务
	Accept(ctx context.Context, o Offer, app Application) error
	// FindExpirable 跨租户查找已经过期但还不是终态的 offer，按 id 游标分页
	FindExpirable(ctx context.Context, now int64, statuses []string, afterID string, limit int) ([]Offer, error)
}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (d *GORMOfferDAO) CreateWithApplication(ctx context.Context, o Offer, app Application) error {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	o.Version = 1
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&o).Error
		if isDuplicateErr(err) {
			return errs.Duplicate("申请 %s 已经有 offer 了", o.ApplicationId)
		}
		if err != nil {
			return err
		}
		return saveApplication(tx, app)
	})
}

func (d *GORMOfferDAO) FindByID(ctx context.Context, tenantID, id string) (Offer, error) {
	var o Offer
	err := d.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&o).Error
	return o, notFound(err, offerEntity, id)
}

func (d *GORMOfferDAO) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (Offer, error) {
	var o Offer
	err := d.db.WithContext(ctx).
		Where("application_id = ? AND tenant_id = ?", applicationID, tenantID).
		First(&o).Error
	return o, notFound(err, offerEntity, applicationID)
}

func (d *GORMOfferDAO) Save(ctx context.Context, o Offer) error {
	return saveOffer(d.db.WithContext(ctx), o)
}

func (d *GORMOfferDAO) Accept(ctx context.Context, o Offer, app Application) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveOffer(tx, o); err != nil {
			return err
		}
		if err := saveApplication(tx, app); err != nil {
			return err
		}
		return tx.Model(&JobRequisition{}).
			Where("id = ? AND tenant_id = ?", app.RequisitionId, app.TenantId).
			Updates(map[string]any{
				"hired_count": gorm.Expr("hired_count + 1"),
				"utime":       time.Now().UnixMilli(),
			}).Error
	})
}

func (d *GORMOfferDAO) FindExpirable(ctx context.Context, now int64, statuses []string, afterID string, limit int) ([]Offer, error) {
	var res []Offer
	err := d.db.WithContext(ctx).
		Where("status IN ? AND expires_at < ? AND id > ?", statuses, now, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

var offerMutableColumns = []string{
	"status", "base_salary", "bonus", "currency", "start_date", "benefits",
	"approver_id", "approved_at", "sent_at", "responded_at",
	"decline_reason", "negotiation_notes", "version", "utime",
}

func saveOffer(tx *gorm.DB, o Offer) error {
	oldVersion := o.Version
	o.Version++
	o.Utime = time.Now().UnixMilli()
	return updateVersioned(tx, &o, offerEntity, o.TenantId, oldVersion, offerMutableColumns)
}

type Offer struct {
	Id               string              `gorm:"type:char(36);primaryKey"`
	TenantId         string              `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_application,priority:1;uniqueIndex:uniq_tenant_number,priority:1"`
	ApplicationId    string              `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_application,priority:2;comment:'一个申请最多一个 offer'"`
	OfferNumber      string              `gorm:"type:varchar(32);not null;uniqueIndex:uniq_tenant_number,priority:2;comment:'offer 编号 OFR-YYYYMMDD-######'"`
	Status           string              `gorm:"type:varchar(32);not null;index:idx_status_expires,priority:1"`
	BaseSalary       decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	Bonus            decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Currency         string              `gorm:"type:varchar(8);not null"`
	StartDate        sql.Null[time.Time] `gorm:"type:date;comment:'入职日期'"`
	Benefits         string              `gorm:"type:text"`
	ExpiresAt        int64               `gorm:"not null;index:idx_status_expires,priority:2"`
	ApproverId       string              `gorm:"type:char(36)"`
	ApprovedAt       int64
	SentAt           int64
	RespondedAt      int64
	DeclineReason    string `gorm:"type:varchar(512)"`
	NegotiationNotes string `gorm:"type:text"`
	Version          int64  `gorm:"not null;default:1"`
	Ctime            int64
	Utime            int64
}

func (Offer) TableName() string {
	return "offers"
}
