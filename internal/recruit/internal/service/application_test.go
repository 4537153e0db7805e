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

	"github.com/ecodeclub/hirebook/internal/applicant"
	applicantmocks "github.com/ecodeclub/hirebook/internal/applicant/mocks"
	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	evtmocks "github.com/ecodeclub/hirebook/internal/recruit/internal/event/mocks"
	repomocks "github.com/ecodeclub/hirebook/internal/recruit/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/hirebook/internal/recruit/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type applicationMocks struct {
	repo         *repomocks.MockApplicationRepository
	reqRepo      *repomocks.MockRequisitionRepository
	offerRepo    *repomocks.MockOfferRepository
	applicantSvc *applicantmocks.MockService
	seq          *svcmocks.MockSequenceGenerator
	producer     *evtmocks.MockRecruitmentEventProducer
}

func newApplicationMocks(ctrl *gomock.Controller) applicationMocks {
	return applicationMocks{
		repo:         repomocks.NewMockApplicationRepository(ctrl),
		reqRepo:      repomocks.NewMockRequisitionRepository(ctrl),
		offerRepo:    repomocks.NewMockOfferRepository(ctrl),
		applicantSvc: applicantmocks.NewMockService(ctrl),
		seq:          svcmocks.NewMockSequenceGenerator(ctrl),
		producer:     evtmocks.NewMockRecruitmentEventProducer(ctrl),
	}
}

func (m applicationMocks) newService() *applicationService {
	svc := NewApplicationService(m.repo, m.reqRepo, m.offerRepo, m.applicantSvc, m.seq, m.producer).(*applicationService)
	svc.now = fixedNow
	return svc
}

func TestApplicationService_Submit(t *testing.T) {
	reqID, applicantID := uuid.New(), uuid.New()
	published := domain.Requisition{ID: reqID, TenantID: testTenant, Code: "BE-01", Status: domain.RequisitionStatusPublished}
	input := domain.Application{TenantID: testTenant, RequisitionID: reqID, ApplicantID: applicantID, CoverLetter: "你好"}
	testCases := []struct {
		name    string
		setup   func(m applicationMocks)
		wantErr error
	}{
		{
			name: "投递成功",
			setup: func(m applicationMocks) {
				m.reqRepo.EXPECT().FindByID(gomock.Any(), testTenant, reqID).Return(published, nil)
				m.applicantSvc.EXPECT().Detail(gomock.Any(), testTenant, applicantID).
					Return(applicant.Applicant{ID: applicantID, ResumeURL: "https://cv.example.com/a.pdf"}, nil)
				m.seq.EXPECT().Next(gomock.Any(), testTenant, sequencenumber.BizApplication).
					Return("APP-20240520-000001", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), domain.Today(testNow)).
					DoAndReturn(func(ctx context.Context, app domain.Application, today time.Time) error {
						assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
						assert.Equal(t, "APP-20240520-000001", app.ApplicationNumber)
						assert.Equal(t, "https://cv.example.com/a.pdf", app.ResumeURL)
						assert.Equal(t, int64(1), app.Version)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationStatusChangedEvent) error {
						assert.Equal(t, "", evt.From)
						assert.Equal(t, "SUBMITTED", evt.To)
						assert.Equal(t, reqID.String(), evt.RequisitionID)
						return nil
					})
			},
		},
		{
			name: "职位未开放",
			setup: func(m applicationMocks) {
				r := published
				r.Status = domain.RequisitionStatusClosed
				m.reqRepo.EXPECT().FindByID(gomock.Any(), testTenant, reqID).Return(r, nil)
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "候选人在黑名单",
			setup: func(m applicationMocks) {
				m.reqRepo.EXPECT().FindByID(gomock.Any(), testTenant, reqID).Return(published, nil)
				m.applicantSvc.EXPECT().Detail(gomock.Any(), testTenant, applicantID).
					Return(applicant.Applicant{ID: applicantID, Blacklisted: true}, nil)
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "重复投递",
			setup: func(m applicationMocks) {
				m.reqRepo.EXPECT().FindByID(gomock.Any(), testTenant, reqID).Return(published, nil)
				m.applicantSvc.EXPECT().Detail(gomock.Any(), testTenant, applicantID).
					Return(applicant.Applicant{ID: applicantID}, nil)
				m.seq.EXPECT().Next(gomock.Any(), testTenant, sequencenumber.BizApplication).
					Return("APP-20240520-000002", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errs.Duplicate("候选人已经投递过该职位"))
			},
			wantErr: errs.ErrDuplicateResource,
		},
		{
			name: "事件发送失败不影响结果",
			setup: func(m applicationMocks) {
				m.reqRepo.EXPECT().FindByID(gomock.Any(), testTenant, reqID).Return(published, nil)
				m.applicantSvc.EXPECT().Detail(gomock.Any(), testTenant, applicantID).
					Return(applicant.Applicant{ID: applicantID}, nil)
				m.seq.EXPECT().Next(gomock.Any(), testTenant, sequencenumber.BizApplication).
					Return("APP-20240520-000003", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newApplicationMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Submit(context.Background(), input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ApplicationStatusSubmitted, res.Status)
			assert.Equal(t, domain.StageScreening, res.CurrentStage)
			assert.Equal(t, "你好", res.CoverLetter)
		})
	}
}

func TestApplicationService_Screen(t *testing.T) {
	id := uuid.New()
	submitted := domain.Application{ID: id, TenantID: testTenant, Status: domain.ApplicationStatusSubmitted,
		CurrentStage: domain.StageScreening, Version: 1}
	testCases := []struct {
		name       string
		passed     bool
		setup      func(m applicationMocks)
		wantStatus domain.ApplicationStatus
		wantErr    error
	}{
		{
			name:   "初筛通过",
			passed: true,
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(submitted, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.ApplicationStatusScreened,
		},
		{
			name: "初筛不通过",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(submitted, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.ApplicationStatusScreeningRejected,
		},
		{
			name:   "重复初筛",
			passed: true,
			setup: func(m applicationMocks) {
				app := submitted
				app.Status = domain.ApplicationStatusScreened
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(app, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newApplicationMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Screen(context.Background(), testTenant, id,
				domain.Screening{Notes: "基础扎实"}, tc.passed)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, int64(2), res.Version)
			assert.Equal(t, testNow, res.Screening.ScreenedAt)
		})
	}
}

func TestApplicationService_Withdraw(t *testing.T) {
	id := uuid.New()
	pending := domain.Application{ID: id, TenantID: testTenant, Status: domain.ApplicationStatusOfferPending, Version: 3}
	testCases := []struct {
		name    string
		setup   func(m applicationMocks)
		wantErr error
	}{
		{
			name: "没有offer",
			setup: func(m applicationMocks) {
				app := pending
				app.Status = domain.ApplicationStatusScreened
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(app, nil)
				m.offerRepo.EXPECT().FindByApplicationID(gomock.Any(), testTenant, id).
					Return(domain.Offer{}, errs.NotFound("offer"))
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "同时取消进行中的offer",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(pending, nil)
				m.offerRepo.EXPECT().FindByApplicationID(gomock.Any(), testTenant, id).
					Return(domain.Offer{ApplicationID: id, Status: domain.OfferStatusSent, Version: 2}, nil)
				m.repo.EXPECT().SaveWithOffer(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application, o domain.Offer) error {
						assert.Equal(t, domain.ApplicationStatusWithdrawn, app.Status)
						assert.Equal(t, domain.OfferStatusCancelled, o.Status)
						assert.Equal(t, int64(2), o.Version)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "offer已经结束",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(pending, nil)
				m.offerRepo.EXPECT().FindByApplicationID(gomock.Any(), testTenant, id).
					Return(domain.Offer{ApplicationID: id, Status: domain.OfferStatusDeclined}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "已录用不能撤回",
			setup: func(m applicationMocks) {
				app := pending
				app.Status = domain.ApplicationStatusHired
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(app, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
		{
			name: "并发修改",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(pending, nil)
				m.offerRepo.EXPECT().FindByApplicationID(gomock.Any(), testTenant, id).
					Return(domain.Offer{ApplicationID: id, Status: domain.OfferStatusDraft}, nil)
				m.repo.EXPECT().SaveWithOffer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errs.ErrConcurrentModification)
			},
			wantErr: errs.ErrConcurrentModification,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newApplicationMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Withdraw(context.Background(), testTenant, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ApplicationStatusWithdrawn, res.Status)
			assert.Equal(t, testNow, res.WithdrawnAt)
		})
	}
}

func TestApplicationService_MoveStage(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name    string
		stage   string
		setup   func(m applicationMocks)
		wantErr error
	}{
		{
			name:  "自定义阶段",
			stage: "技术二面",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
					Return(domain.Application{ID: id, TenantID: testTenant, Status: domain.ApplicationStatusInterviewing}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "保留阶段",
			stage: "offer",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
					Return(domain.Application{ID: id, TenantID: testTenant, Status: domain.ApplicationStatusInterviewing}, nil)
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:  "终态",
			stage: "技术二面",
			setup: func(m applicationMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
					Return(domain.Application{ID: id, TenantID: testTenant, Status: domain.ApplicationStatusRejected}, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newApplicationMocks(ctrl)
			tc.setup(m)
			// 状态不变，不会发送事件
			res, err := m.newService().MoveStage(context.Background(), testTenant, id, tc.stage, 2)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.stage, res.CurrentStage)
			assert.Equal(t, 2, res.StageOrder)
		})
	}
}
