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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func openMockDB(t *testing.T, mock func(m sqlmock.Sqlmock)) *gorm.DB {
	mockDB, m, err := sqlmock.New()
	require.NoError(t, err)
	mock(m)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, m.ExpectationsWereMet())
	})
	return db
}

func TestGORMApplicationDAO_Create(t *testing.T) {
	app := Application{
		Id:                "8b7d6a52-6ef8-4b8d-9a1b-0a3f52d7c001",
		TenantId:          "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f",
		RequisitionId:     "2a2b3c4d-5e6f-4a1b-8c9d-0e1f2a3b4c5d",
		ApplicantId:       "3c4d5e6f-7a8b-4c9d-8e1f-2a3b4c5d6e7f",
		ApplicationNumber: "APP-20240520-000001",
		Status:            "SUBMITTED",
	}
	testCases := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE `job_requisitions` SET .*application_count.*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("INSERT INTO `applications` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name: "职位不开放",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE `job_requisitions` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectRollback()
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "重复申请",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE `job_requisitions` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("INSERT INTO `applications` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				m.ExpectRollback()
			},
			wantErr: errs.ErrDuplicateResource,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMApplicationDAO(openMockDB(t, tc.mock))
			err := d.Create(context.Background(), app, time.Now())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGORMApplicationDAO_Save(t *testing.T) {
	app := Application{
		Id:       "8b7d6a52-6ef8-4b8d-9a1b-0a3f52d7c001",
		TenantId: "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f",
		Status:   "SCREENED",
		Version:  3,
	}
	testCases := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "版本一致",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE `applications` SET .* WHERE .*version = \\?.*").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "并发修改",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE `applications` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: errs.ErrConcurrentModification,
		},
		{
			name: "数据库错误",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE `applications` SET .*").
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMApplicationDAO(openMockDB(t, tc.mock))
			err := d.Save(context.Background(), app)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if errors.Is(tc.wantErr, errs.ErrConcurrentModification) {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.EqualError(t, err, tc.wantErr.Error())
		})
	}
}

func TestGORMRequisitionDAO_Delete(t *testing.T) {
	const (
		tenantID = "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f"
		id       = "2a2b3c4d-5e6f-4a1b-8c9d-0e1f2a3b4c5d"
	)
	columns := []string{"id", "tenant_id", "code", "status", "application_count"}
	testCases := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "没有申请可以删除",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery("SELECT \\* FROM `job_requisitions` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(columns).AddRow(id, tenantID, "BE-001", "DRAFT", 0))
				m.ExpectExec("DELETE FROM `job_requisitions` WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name: "已有申请",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery("SELECT \\* FROM `job_requisitions` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(columns).AddRow(id, tenantID, "BE-001", "CLOSED", 2))
				m.ExpectRollback()
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "职位不存在",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery("SELECT \\* FROM `job_requisitions` WHERE .* FOR UPDATE").
					WillReturnError(gorm.ErrRecordNotFound)
				m.ExpectRollback()
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMRequisitionDAO(openMockDB(t, tc.mock))
			err := d.Delete(context.Background(), tenantID, id)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGORMRequisitionDAO_Insert(t *testing.T) {
	d := NewGORMRequisitionDAO(openMockDB(t, func(m sqlmock.Sqlmock) {
		m.ExpectExec("INSERT INTO `job_requisitions` .*").
			WillReturnError(&mysql.MySQLError{Number: 1062})
	}))
	err := d.Insert(context.Background(), JobRequisition{
		Id:       "2a2b3c4d-5e6f-4a1b-8c9d-0e1f2a3b4c5d",
		TenantId: "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f",
		Code:     "BE-001",
		OpenDate: sql.Null[time.Time]{},
	})
	assert.ErrorIs(t, err, errs.ErrDuplicateResource)
}

func TestGORMOfferDAO_Accept(t *testing.T) {
	o := Offer{
		Id:            "9c8b7a6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		TenantId:      "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f",
		ApplicationId: "8b7d6a52-6ef8-4b8d-9a1b-0a3f52d7c001",
		Status:        "ACCEPTED",
		Version:       4,
	}
	app := Application{
		Id:            o.ApplicationId,
		TenantId:      o.TenantId,
		RequisitionId: "2a2b3c4d-5e6f-4a1b-8c9d-0e1f2a3b4c5d",
		Status:        "HIRED",
		Version:       6,
	}
	testCases := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "三张表一起提交",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE `offers` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("UPDATE `applications` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("UPDATE `job_requisitions` SET .*hired_count.*").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name: "申请被并发修改，整体回滚",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE `offers` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("UPDATE `applications` SET .*").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectRollback()
			},
			wantErr: errs.ErrConcurrentModification,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMOfferDAO(openMockDB(t, tc.mock))
			err := d.Accept(context.Background(), o, app)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGORMOfferDAO_CreateWithApplication(t *testing.T) {
	d := NewGORMOfferDAO(openMockDB(t, func(m sqlmock.Sqlmock) {
		m.ExpectBegin()
		m.ExpectExec("INSERT INTO `offers` .*").WillReturnError(&mysql.MySQLError{Number: 1062})
		m.ExpectRollback()
	}))
	err := d.CreateWithApplication(context.Background(),
		Offer{Id: "9c8b7a6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", ApplicationId: "8b7d6a52-6ef8-4b8d-9a1b-0a3f52d7c001"},
		Application{Id: "8b7d6a52-6ef8-4b8d-9a1b-0a3f52d7c001", Version: 1})
	assert.ErrorIs(t, err, errs.ErrDuplicateResource)
}

func TestGORMInterviewDAO_UpsertScore(t *testing.T) {
	const existing = "0a9b8c7d-6e5f-4a3b-9c2d-1e0f9a8b7c6d"
	d := NewGORMInterviewDAO(openMockDB(t, func(m sqlmock.Sqlmock) {
		m.ExpectBegin()
		m.ExpectExec("INSERT INTO `interview_scores` .* ON DUPLICATE KEY UPDATE .*").
			WillReturnResult(sqlmock.NewResult(0, 2))
		m.ExpectQuery("SELECT \\* FROM `interview_scores` WHERE .*interviewer_id.*criterion.*").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "tenant_id", "interview_id", "interviewer_id", "criterion",
				"score", "max_score", "weight", "ctime", "utime",
			}).AddRow(existing, "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f",
				"6e5d4c3b-2a1f-4e0d-9c8b-7a6f5e4d3c2b", "7f6e5d4c-3b2a-4f1e-8d9c-8b7a6f5e4d3c",
				"编码能力", 5, 5, "0.333333", int64(1000), int64(2000)))
		m.ExpectCommit()
	}))
	res, err := d.UpsertScore(context.Background(), InterviewScore{
		Id:            "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a",
		TenantId:      "1f1f2b6c-3e2a-4a55-8f2e-6e7b1c2d3e4f",
		InterviewId:   "6e5d4c3b-2a1f-4e0d-9c8b-7a6f5e4d3c2b",
		InterviewerId: "7f6e5d4c-3b2a-4f1e-8d9c-8b7a6f5e4d3c",
		Criterion:     "编码能力",
		Score:         5,
		MaxScore:      5,
		Weight:        decimal.RequireFromString("0.333333"),
	})
	require.NoError(t, err)
	// 冲突更新之后拿到的是第一次写入的那一行
	assert.Equal(t, existing, res.Id)
	assert.Equal(t, int64(1000), res.Ctime)
	assert.Equal(t, 5, res.Score)
	assert.True(t, decimal.RequireFromString("0.333333").Equal(res.Weight))
}

func TestGORMInterviewDAO_UpsertScoreFailed(t *testing.T) {
	d := NewGORMInterviewDAO(openMockDB(t, func(m sqlmock.Sqlmock) {
		m.ExpectBegin()
		m.ExpectExec("INSERT INTO `interview_scores` .*").WillReturnError(errors.New("mock db error"))
		m.ExpectRollback()
	}))
	_, err := d.UpsertScore(context.Background(), InterviewScore{
		Id:          "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a",
		InterviewId: "6e5d4c3b-2a1f-4e0d-9c8b-7a6f5e4d3c2b",
	})
	assert.Error(t, err)
}

func TestScoreColumns(t *testing.T) {
	testCases := []struct {
		name  string
		model any
		field string
	}{
		{name: "评分权重", model: &InterviewScore{}, field: "Weight"},
		{name: "初筛分数", model: &Application{}, field: "ScreeningScore"},
		{name: "面试总分", model: &Interview{}, field: "OverallScore"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sch, err := schema.Parse(tc.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)
			f := sch.LookUpField(tc.field)
			require.NotNil(t, f)
			// 小数位要和领域层的校验保持一致
			assert.Equal(t, "decimal(18,6)", f.TagSettings["TYPE"])
		})
	}
}
