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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const interviewEntity = "面试"

type InterviewDAO interface {
	Insert(ctx context.Context, i Interview) error
	FindByID(ctx context.Context, tenantID, id string) (Interview, error)
	Save(ctx context.Context, i Interview) error
	// SaveWithApplication 面试和申请的状态一起提交
	SaveWithApplication(ctx context.Context, i Interview, app Application) error
	ListByApplication(ctx context.Context, tenantID, applicationID string) ([]Interview, error)

	UpsertScore(ctx context.Context, s InterviewScore) (InterviewScore, error)
	FindScores(ctx context.Context, tenantID, interviewID string) ([]InterviewScore, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (d *GORMInterviewDAO) Insert(ctx context.Context, i Interview) error {
	now := time.Now().UnixMilli()
	i.Ctime, i.Utime = now, now
	i.Version = 1
	err := d.db.WithContext(ctx).Create(&i).Error
	if isDuplicateErr(err) {
		return errs.Duplicate("申请 %s 的第 %d 轮面试已存在", i.ApplicationId, i.Round)
	}
	return err
}

func (d *GORMInterviewDAO) FindByID(ctx context.Context, tenantID, id string) (Interview, error) {
	var i Interview
	err := d.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&i).Error
	return i, notFound(err, interviewEntity, id)
}

func (d *GORMInterviewDAO) Save(ctx context.Context, i Interview) error {
	return saveInterview(d.db.WithContext(ctx), i)
}

func (d *GORMInterviewDAO) SaveWithApplication(ctx context.Context, i Interview, app Application) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveInterview(tx, i); err != nil {
			return err
		}
		return saveApplication(tx, app)
	})
}

var interviewMutableColumns = []string{
	"type", "status", "start_at", "duration_minutes", "location", "meeting_link", "interviewers",
	"result", "overall_score", "result_notes", "started_at", "ended_at",
	"version", "utime",
}

func saveInterview(tx *gorm.DB, i Interview) error {
	oldVersion := i.Version
	i.Version++
	i.Utime = time.Now().UnixMilli()
	return updateVersioned(tx, &i, interviewEntity, i.TenantId, oldVersion, interviewMutableColumns)
}

func (d *GORMInterviewDAO) ListByApplication(ctx context.Context, tenantID, applicationID string) ([]Interview, error) {
	var res []Interview
	err := d.db.WithContext(ctx).
		Where("tenant_id = ? AND application_id = ?", tenantID, applicationID).
		Order("round ASC").
		Find(&res).Error
	return res, err
}

// UpsertScore 同一个面试官对同一个考察点只保留一条评分。
// 返回的是表里实际的那一行，冲突更新时 id 和 ctime 保持第一次写入的值
func (d *GORMInterviewDAO) UpsertScore(ctx context.Context, s InterviewScore) (InterviewScore, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	var res InterviewScore
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "interview_id"}, {Name: "interviewer_id"}, {Name: "criterion"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "max_score", "weight", "comment", "utime",
			}),
		}).Create(&s).Error
		if err != nil {
			return err
		}
		return tx.Where("interview_id = ? AND interviewer_id = ? AND criterion = ?",
			s.InterviewId, s.InterviewerId, s.Criterion).
			First(&res).Error
	})
	return res, err
}

func (d *GORMInterviewDAO) FindScores(ctx context.Context, tenantID, interviewID string) ([]InterviewScore, error) {
	var res []InterviewScore
	err := d.db.WithContext(ctx).
		Where("tenant_id = ? AND interview_id = ?", tenantID, interviewID).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

type Interview struct {
	Id              string                      `gorm:"type:char(36);primaryKey"`
	TenantId        string                      `gorm:"type:char(36);not null;index:idx_tenant_application,priority:1"`
	ApplicationId   string                      `gorm:"type:char(36);not null;index:idx_tenant_application,priority:2;uniqueIndex:uniq_application_round,priority:1"`
	Round           int                         `gorm:"not null;uniqueIndex:uniq_application_round,priority:2;comment:'第几轮面试'"`
	Type            string                      `gorm:"type:varchar(64);comment:'面试类型，例如 技术面、HR面'"`
	Status          string                      `gorm:"type:varchar(32);not null"`
	StartAt         int64                       `gorm:"comment:'面试开始时间'"`
	DurationMinutes int                         `gorm:"not null;default:0"`
	Location        string                      `gorm:"type:varchar(255)"`
	MeetingLink     string                      `gorm:"type:varchar(512)"`
	Interviewers    datatypes.JSONSlice[string] `gorm:"type:json;comment:'面试官列表'"`
	Result          string                      `gorm:"type:varchar(64)"`
	OverallScore    decimal.NullDecimal         `gorm:"type:decimal(18,6)"`
	ResultNotes     string                      `gorm:"type:text"`
	StartedAt       int64
	EndedAt         int64
	Version         int64 `gorm:"not null;default:1"`
	Ctime           int64
	Utime           int64
}

func (Interview) TableName() string {
	return "interviews"
}

type InterviewScore struct {
	Id            string          `gorm:"type:char(36);primaryKey"`
	TenantId      string          `gorm:"type:char(36);not null;index:idx_tenant_interview,priority:1"`
	InterviewId   string          `gorm:"type:char(36);not null;index:idx_tenant_interview,priority:2;uniqueIndex:uniq_interviewer_criterion,priority:1"`
	InterviewerId string          `gorm:"type:char(36);not null;uniqueIndex:uniq_interviewer_criterion,priority:2"`
	Criterion     string          `gorm:"type:varchar(128);not null;uniqueIndex:uniq_interviewer_criterion,priority:3;comment:'考察点'"`
	Score         int             `gorm:"not null"`
	MaxScore      int             `gorm:"not null;default:5"`
	Weight        decimal.Decimal `gorm:"type:decimal(18,6);not null;default:1"`
	Comment       string          `gorm:"type:text"`
	Ctime         int64
	Utime         int64
}

func (InterviewScore) TableName() string {
	return "interview_scores"
}
