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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Applicant{})
}

type ApplicantDAO interface {
	Insert(ctx context.Context, a Applicant) error
	FindByID(ctx context.Context, tenantID, id string) (Applicant, error)
	// UpdateProfile 只更新档案字段
	UpdateProfile(ctx context.Context, a Applicant) error
	UpdateBlacklist(ctx context.Context, a Applicant) error
	List(ctx context.Context, tenantID string, offset, limit int) ([]Applicant, error)
	Count(ctx context.Context, tenantID string) (int64, error)
}

type GORMApplicantDAO struct {
	db *egorm.Component
}

func NewGORMApplicantDAO(db *egorm.Component) ApplicantDAO {
	return &GORMApplicantDAO{db: db}
}

const uniqueIndexErrNo uint16 = 1062

func (d *GORMApplicantDAO) Insert(ctx context.Context, a Applicant) error {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	a.Version = 1
	err := d.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return errs.Duplicate("邮箱 %s 已经登记过", a.Email)
	}
	return err
}

func (d *GORMApplicantDAO) FindByID(ctx context.Context, tenantID, id string) (Applicant, error) {
	var res Applicant
	err := d.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Applicant{}, errs.NotFound("候选人 %s", id)
	}
	return res, err
}

func (d *GORMApplicantDAO) UpdateProfile(ctx context.Context, a Applicant) error {
	err := d.update(ctx, a, []string{
		"name", "email", "phone", "resume_url",
		"education", "experience", "skills", "certificates", "languages",
		"version", "utime",
	})
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return errs.Duplicate("邮箱 %s 已经登记过", a.Email)
	}
	return err
}

func (d *GORMApplicantDAO) UpdateBlacklist(ctx context.Context, a Applicant) error {
	return d.update(ctx, a, []string{
		"blacklisted", "blacklist_reason", "blacklisted_at", "version", "utime",
	})
}

// update 带版本号的更新，版本号不匹配说明被并发修改了
func (d *GORMApplicantDAO) update(ctx context.Context, a Applicant, columns []string) error {
	oldVersion := a.Version
	a.Version++
	a.Utime = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&a).
		Where("tenant_id = ? AND version = ?", a.TenantId, oldVersion).
		Select(columns).
		Updates(&a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: 候选人 %s", errs.ErrConcurrentModification, a.Id)
	}
	return nil
}

func (d *GORMApplicantDAO) List(ctx context.Context, tenantID string, offset, limit int) ([]Applicant, error) {
	var res []Applicant
	err := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMApplicantDAO) Count(ctx context.Context, tenantID string) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Applicant{}).
		Where("tenant_id = ?", tenantID).
		Count(&cnt).Error
	return cnt, err
}

type Applicant struct {
	Id        string `gorm:"type:char(36);primaryKey"`
	TenantId  string `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_email,priority:1"`
	Name      string `gorm:"type:varchar(128);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_tenant_email,priority:2"`
	Phone     string `gorm:"type:varchar(32)"`
	ResumeUrl string `gorm:"type:varchar(512);comment:'简历地址，文件本身不在这里存'"`

	Education    datatypes.JSONSlice[Education]  `gorm:"type:json"`
	Experience   datatypes.JSONSlice[Experience] `gorm:"type:json"`
	Skills       datatypes.JSONSlice[string]     `gorm:"type:json"`
	Certificates datatypes.JSONSlice[string]     `gorm:"type:json"`
	Languages    datatypes.JSONSlice[string]     `gorm:"type:json"`

	Blacklisted     bool   `gorm:"not null;default:false"`
	BlacklistReason string `gorm:"type:varchar(512)"`
	BlacklistedAt   int64

	Version int64 `gorm:"not null;default:1"`
	Ctime   int64
	Utime   int64
}

func (Applicant) TableName() string {
	return "applicants"
}

type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Major     string `json:"major"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
}

type Experience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartMonth  string `json:"startMonth"`
	EndMonth    string `json:"endMonth"`
}
