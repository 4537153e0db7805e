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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	repomocks "github.com/ecodeclub/hirebook/internal/recruit/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow    = time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)
	testTenant = uuid.MustParse("0b8e8c1e-3c55-4f07-9b0a-5a0c3e1a1f01")
)

func fixedNow() time.Time {
	return testNow
}

func newTestRequisitionService(repo *repomocks.MockRequisitionRepository) *requisitionService {
	svc := NewRequisitionService(repo).(*requisitionService)
	svc.now = fixedNow
	return svc
}

func TestRequisitionService_Save(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name    string
		req     domain.Requisition
		setup   func(repo *repomocks.MockRequisitionRepository)
		assert  func(t *testing.T, r domain.Requisition)
		wantErr error
	}{
		{
			name: "新建草稿",
			req:  domain.Requisition{TenantID: testTenant, Code: "BE-01", Title: "后端工程师", Headcount: 2},
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Requisition) error {
						assert.Equal(t, domain.RequisitionStatusDraft, r.Status)
						assert.Equal(t, int64(1), r.Version)
						assert.NotEqual(t, uuid.Nil, r.ID)
						return nil
					})
			},
			assert: func(t *testing.T, r domain.Requisition) {
				assert.Equal(t, domain.RequisitionStatusDraft, r.Status)
				assert.Equal(t, testNow, r.Ctime)
			},
		},
		{
			name:    "新建时校验失败",
			req:     domain.Requisition{TenantID: testTenant, Code: "BE-01", Title: "后端工程师"},
			setup:   func(repo *repomocks.MockRequisitionRepository) {},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "编辑待审批的职位",
			req:  domain.Requisition{ID: id, TenantID: testTenant, Code: "BE-02", Title: "资深后端", Headcount: 3},
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(domain.Requisition{
					ID: id, TenantID: testTenant, Code: "BE-01", Title: "后端工程师",
					Headcount: 1, Status: domain.RequisitionStatusPending, Version: 4,
				}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Requisition) error {
						assert.Equal(t, int64(4), r.Version)
						assert.Equal(t, "BE-02", r.Code)
						return nil
					})
			},
			assert: func(t *testing.T, r domain.Requisition) {
				assert.Equal(t, int64(5), r.Version)
				assert.Equal(t, 3, r.Headcount)
				assert.Equal(t, domain.RequisitionStatusPending, r.Status)
			},
		},
		{
			name: "已发布的职位不能编辑",
			req:  domain.Requisition{ID: id, TenantID: testTenant, Code: "BE-02", Title: "资深后端", Headcount: 3},
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(domain.Requisition{
					ID: id, TenantID: testTenant, Status: domain.RequisitionStatusPublished,
				}, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockRequisitionRepository(ctrl)
			tc.setup(repo)
			res, err := newTestRequisitionService(repo).Save(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assert(t, res)
		})
	}
}

func TestRequisitionService_Publish(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name       string
		setup      func(repo *repomocks.MockRequisitionRepository)
		wantStatus domain.RequisitionStatus
		wantErr    error
	}{
		{
			name: "发布并设置开放日期",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(domain.Requisition{
					ID: id, TenantID: testTenant, Status: domain.RequisitionStatusPending, Version: 2,
				}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Requisition) error {
						assert.Equal(t, domain.Today(testNow), r.OpenDate)
						return nil
					})
			},
			wantStatus: domain.RequisitionStatusPublished,
		},
		{
			name: "已关闭的职位不能再发布",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(domain.Requisition{
					ID: id, TenantID: testTenant, Status: domain.RequisitionStatusClosed,
				}, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
		{
			name: "并发修改",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(domain.Requisition{
					ID: id, TenantID: testTenant, Status: domain.RequisitionStatusPending,
				}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errs.ErrConcurrentModification)
			},
			wantErr: errs.ErrConcurrentModification,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockRequisitionRepository(ctrl)
			tc.setup(repo)
			res, err := newTestRequisitionService(repo).Publish(context.Background(), testTenant, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.Status)
		})
	}
}

func TestRequisitionService_PubDetail(t *testing.T) {
	id := uuid.New()
	open := domain.Requisition{ID: id, TenantID: testTenant, Status: domain.RequisitionStatusPublished, ViewCount: 7}
	testCases := []struct {
		name     string
		setup    func(repo *repomocks.MockRequisitionRepository)
		wantView int64
		wantErr  error
	}{
		{
			name: "累加浏览数",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(open, nil)
				repo.EXPECT().IncrViewCount(gomock.Any(), testTenant, id).Return(nil)
			},
			wantView: 8,
		},
		{
			name: "累加浏览数失败照常返回",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(open, nil)
				repo.EXPECT().IncrViewCount(gomock.Any(), testTenant, id).Return(errors.New("db down"))
			},
			wantView: 7,
		},
		{
			name: "已截止的职位对外不存在",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				r := open
				r.CloseDate = testNow.AddDate(0, 0, -1)
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(r, nil)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "草稿对外不存在",
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
					Return(domain.Requisition{ID: id, Status: domain.RequisitionStatusDraft}, nil)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockRequisitionRepository(ctrl)
			tc.setup(repo)
			res, err := newTestRequisitionService(repo).PubDetail(context.Background(), testTenant, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantView, res.ViewCount)
		})
	}
}

func TestRequisitionService_CloseIfFulfilled(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name       string
		req        domain.Requisition
		setup      func(repo *repomocks.MockRequisitionRepository)
		wantClosed bool
	}{
		{
			name: "招满关闭",
			req:  domain.Requisition{ID: id, TenantID: testTenant, Status: domain.RequisitionStatusPublished, Headcount: 2, HiredCount: 2},
			setup: func(repo *repomocks.MockRequisitionRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Requisition) error {
						assert.Equal(t, domain.RequisitionStatusClosed, r.Status)
						return nil
					})
			},
			wantClosed: true,
		},
		{
			name:  "还没招满",
			req:   domain.Requisition{ID: id, TenantID: testTenant, Status: domain.RequisitionStatusPublished, Headcount: 2, HiredCount: 1},
			setup: func(repo *repomocks.MockRequisitionRepository) {},
		},
		{
			name:  "已经手动关闭",
			req:   domain.Requisition{ID: id, TenantID: testTenant, Status: domain.RequisitionStatusClosed, Headcount: 1, HiredCount: 1},
			setup: func(repo *repomocks.MockRequisitionRepository) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockRequisitionRepository(ctrl)
			repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(tc.req, nil)
			tc.setup(repo)
			closed, err := newTestRequisitionService(repo).CloseIfFulfilled(context.Background(), testTenant, id)
			require.NoError(t, err)
			assert.Equal(t, tc.wantClosed, closed)
		})
	}
}
