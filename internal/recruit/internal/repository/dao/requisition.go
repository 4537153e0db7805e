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
	"gorm.io/gorm/clause"
)

const requisitionEntity = "职位"

type RequisitionDAO interface {
	Insert(ctx context.Context, r JobRequisition) error
	Save(ctx context.Context, r JobRequisition) error
	FindByID(ctx context.Context, tenantID, id string) (JobRequisition, error)
	List(ctx context.Context, tenantID string, q RequisitionQuery, offset, limit int) ([]JobRequisition, error)
	Count(ctx context.Context, tenantID string, q RequisitionQuery) (int64, error)
	IncrViewCount(ctx context.Context, tenantID, id string) error
	Delete(ctx context.Context, tenantID, id string) error
}

// RequisitionQuery 列表过滤条件。OpenOn 有效时只返回当天还能申请的职位
type RequisitionQuery struct {
	Statuses []string
	OpenOn   sql.Null[time.Time]
}

type GORMRequisitionDAO struct {
	db *egorm.Component
}

func NewGORMRequisitionDAO(db *egorm.Component) RequisitionDAO {
	return &GORMRequisitionDAO{db: db}
}

func (d *GORMRequisitionDAO) Insert(ctx context.Context, r JobRequisition) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	r.Version = 1
	err := d.db.WithContext(ctx).Create(&r).Error
	if isDuplicateErr(err) {
		return errs.Duplicate("职位编码 %s 已存在", r.Code)
	}
	return err
}

var requisitionMutableColumns = []string{
	"code", "title", "department_id", "position_id", "description", "location",
	"salary_min", "salary_max", "currency", "headcount", "status",
	"open_date", "close_date", "version", "utime",
}

func (d *GORMRequisitionDAO) Save(ctx context.Context, r JobRequisition) error {
	oldVersion := r.Version
	r.Version++
	r.Utime = time.Now().UnixMilli()
	err := updateVersioned(d.db.WithContext(ctx), &r, requisitionEntity, r.TenantId, oldVersion, requisitionMutableColumns)
	if isDuplicateErr(err) {
		return errs.Duplicate("职位编码 %s 已存在", r.Code)
	}
	return err
}

func (d *GORMRequisitionDAO) FindByID(ctx context.Context, tenantID, id string) (JobRequisition, error) {
	var r JobRequisition
	err := d.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&r).Error
	return r, notFound(err, requisitionEntity, id)
}

func (d *GORMRequisitionDAO) List(ctx context.Context, tenantID string, q RequisitionQuery, offset, limit int) ([]JobRequisition, error) {
	var res []JobRequisition
	err := d.query(ctx, tenantID, q).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMRequisitionDAO) Count(ctx context.Context, tenantID string, q RequisitionQuery) (int64, error) {
	var cnt int64
	err := d.query(ctx, tenantID, q).Model(&JobRequisition{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMRequisitionDAO) query(ctx context.Context, tenantID string, q RequisitionQuery) *gorm.DB {
	db := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if len(q.Statuses) > 0 {
		db = db.Where("status IN ?", q.Statuses)
	}
	if q.OpenOn.Valid {
		db = db.Where("status = ? AND (close_date IS NULL OR close_date >= ?)", statusPublished, q.OpenOn.V)
	}
	return db
}

// IncrViewCount 浏览数允许不精确，但是依旧用数据库的原子自增
func (d *GORMRequisitionDAO) IncrViewCount(ctx context.Context, tenantID, id string) error {
	return d.db.WithContext(ctx).Model(&JobRequisition{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// Delete 只有从来没有被申请过的职位才能物理删除。
// 创建申请的时候会锁同一行并且累加 application_count，所以这里加锁之后读到的计数是可信的。
func (d *GORMRequisitionDAO) Delete(ctx context.Context, tenantID, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r JobRequisition
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND tenant_id = ?", id, tenantID).
			First(&r).Error
		if err != nil {
			return notFound(err, requisitionEntity, id)
		}
		if r.ApplicationCount > 0 {
			return errs.Invalid("职位 %s 已有 %d 份申请，不能删除", r.Code, r.ApplicationCount)
		}
		return tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&JobRequisition{}).Error
	})
}

const statusPublished = "PUBLISHED"

type JobRequisition struct {
	Id               string              `gorm:"type:char(36);primaryKey;comment:'职位ID'"`
	TenantId         string              `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_code,priority:1;index:idx_tenant_status,priority:1"`
	Code             string              `gorm:"type:varchar(64);not null;uniqueIndex:uniq_tenant_code,priority:2;comment:'职位编码，租户内唯一'"`
	Title            string              `gorm:"type:varchar(255);not null"`
	DepartmentId     string              `gorm:"type:char(36);comment:'部门ID'"`
	PositionId       string              `gorm:"type:char(36);comment:'岗位ID'"`
	Description      string              `gorm:"type:text"`
	Location         string              `gorm:"type:varchar(255)"`
	SalaryMin        decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	SalaryMax        decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Currency         string              `gorm:"type:varchar(8)"`
	Headcount        int                 `gorm:"not null;default:1;comment:'招聘人数'"`
	Status           string              `gorm:"type:varchar(32);not null;index:idx_tenant_status,priority:2"`
	OpenDate         sql.Null[time.Time] `gorm:"type:date"`
	CloseDate        sql.Null[time.Time] `gorm:"type:date"`
	ApplicationCount int64               `gorm:"not null;default:0;comment:'累计申请数，只增不减'"`
	ViewCount        int64               `gorm:"not null;default:0"`
	HiredCount       int64               `gorm:"not null;default:0"`
	Version          int64               `gorm:"not null;default:1"`
	Ctime            int64
	Utime            int64
}

func (JobRequisition) TableName() string {
	return "job_requisitions"
}
