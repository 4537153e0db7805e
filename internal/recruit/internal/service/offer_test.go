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
	"testing"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	evtmocks "github.com/ecodeclub/hirebook/internal/recruit/internal/event/mocks"
	repomocks "github.com/ecodeclub/hirebook/internal/recruit/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/hirebook/internal/recruit/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerMocks struct {
	repo     *repomocks.MockOfferRepository
	appRepo  *repomocks.MockApplicationRepository
	seq      *svcmocks.MockSequenceGenerator
	producer *evtmocks.MockRecruitmentEventProducer
}

func newOfferMocks(ctrl *gomock.Controller) offerMocks {
	return offerMocks{
		repo:     repomocks.NewMockOfferRepository(ctrl),
		appRepo:  repomocks.NewMockApplicationRepository(ctrl),
		seq:      svcmocks.NewMockSequenceGenerator(ctrl),
		producer: evtmocks.NewMockRecruitmentEventProducer(ctrl),
	}
}

func (m offerMocks) newService() *offerService {
	svc := NewOfferService(m.repo, m.appRepo, m.seq, m.producer).(*offerService)
	svc.now = fixedNow
	return svc
}

func testTerms() domain.Terms {
	return domain.Terms{
		BaseSalary: decimal.NewFromInt(30000),
		Bonus:      decimal.NewFromInt(5000),
		Currency:   "CNY",
		StartDate:  testNow.AddDate(0, 1, 0),
	}
}

func TestOfferService_Create(t *testing.T) {
	appID := uuid.New()
	passed := domain.Application{ID: appID, TenantID: testTenant, Status: domain.ApplicationStatusInterviewPassed,
		CurrentStage: domain.StageInterview, StageOrder: 1, Version: 5}
	testCases := []struct {
		name      string
		expiresAt time.Time
		setup     func(m offerMocks)
		wantErr   error
	}{
		{
			name:      "创建成功",
			expiresAt: testNow.AddDate(0, 0, 7),
			setup: func(m offerMocks) {
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).Return(passed, nil)
				m.seq.EXPECT().Next(gomock.Any(), testTenant, sequencenumber.BizOffer).Return("OFR-20240520-000001", nil)
				m.repo.EXPECT().CreateWithApplication(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Offer, app domain.Application) error {
						assert.Equal(t, domain.OfferStatusDraft, o.Status)
						assert.Equal(t, "OFR-20240520-000001", o.OfferNumber)
						assert.Equal(t, domain.ApplicationStatusOfferPending, app.Status)
						assert.Equal(t, domain.StageOffer, app.CurrentStage)
						assert.Equal(t, int64(5), app.Version)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationStatusChangedEvent) error {
						assert.Equal(t, "INTERVIEW_PASSED", evt.From)
						assert.Equal(t, "OFFER_PENDING", evt.To)
						return nil
					})
			},
		},
		{
			name:      "申请还没通过面试",
			expiresAt: testNow.AddDate(0, 0, 7),
			setup: func(m offerMocks) {
				app := passed
				app.Status = domain.ApplicationStatusInterviewing
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).Return(app, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
		{
			name:      "过期时间已经过去",
			expiresAt: testNow.Add(-time.Hour),
			setup: func(m offerMocks) {
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).Return(passed, nil)
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:      "已经有offer",
			expiresAt: testNow.AddDate(0, 0, 7),
			setup: func(m offerMocks) {
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).Return(passed, nil)
				m.seq.EXPECT().Next(gomock.Any(), testTenant, sequencenumber.BizOffer).Return("OFR-20240520-000002", nil)
				m.repo.EXPECT().CreateWithApplication(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errs.Duplicate("申请已经有 offer"))
			},
			wantErr: errs.ErrDuplicateResource,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOfferMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Create(context.Background(), testTenant, appID, testTerms(), tc.expiresAt)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OfferStatusDraft, res.Status)
			assert.Equal(t, int64(1), res.Version)
		})
	}
}

func TestOfferService_Approve(t *testing.T) {
	id, approver := uuid.New(), uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newOfferMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
		Return(domain.Offer{ID: id, TenantID: testTenant, Status: domain.OfferStatusPendingApproval, Version: 2}, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	res, err := m.newService().Approve(context.Background(), testTenant, id, approver)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusApproved, res.Status)
	assert.Equal(t, approver, res.ApproverID)
	assert.Equal(t, testNow, res.ApprovedAt)
	assert.Equal(t, int64(3), res.Version)
}

func TestOfferService_Accept(t *testing.T) {
	id, appID := uuid.New(), uuid.New()
	sent := domain.Offer{ID: id, TenantID: testTenant, ApplicationID: appID, Status: domain.OfferStatusSent,
		ExpiresAt: testNow.AddDate(0, 0, 1), Version: 4}
	testCases := []struct {
		name    string
		setup   func(m offerMocks)
		wantErr error
	}{
		{
			name: "接受并录用",
			setup: func(m offerMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(sent, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, TenantID: testTenant, Status: domain.ApplicationStatusOfferPending}, nil)
				m.repo.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Offer, app domain.Application) error {
						assert.Equal(t, domain.OfferStatusAccepted, o.Status)
						assert.Equal(t, domain.ApplicationStatusHired, app.Status)
						assert.Equal(t, testNow, app.HiredAt)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationStatusChangedEvent) error {
						assert.True(t, evt.Hired())
						return nil
					})
			},
		},
		{
			name: "已经过期",
			setup: func(m offerMocks) {
				o := sent
				o.ExpiresAt = testNow.Add(-time.Minute)
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(o, nil)
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "还没发出",
			setup: func(m offerMocks) {
				o := sent
				o.Status = domain.OfferStatusApproved
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(o, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
		{
			name: "申请已经撤回",
			setup: func(m offerMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(sent, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, Status: domain.ApplicationStatusWithdrawn}, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOfferMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Accept(context.Background(), testTenant, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OfferStatusAccepted, res.Status)
			assert.Equal(t, int64(5), res.Version)
		})
	}
}

func TestOfferService_Revise(t *testing.T) {
	id := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newOfferMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
		Return(domain.Offer{ID: id, TenantID: testTenant, Status: domain.OfferStatusNegotiating, Terms: testTerms()}, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	terms := testTerms()
	terms.BaseSalary = decimal.NewFromInt(35000)
	res, err := m.newService().Revise(context.Background(), testTenant, id, terms)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusDraft, res.Status)
	assert.True(t, res.Terms.BaseSalary.Equal(decimal.NewFromInt(35000)))
}

func TestOfferService_Expire(t *testing.T) {
	testCases := []struct {
		name        string
		offer       domain.Offer
		setup       func(m offerMocks)
		wantExpired bool
		wantErr     error
	}{
		{
			name:  "过期",
			offer: domain.Offer{ID: uuid.New(), Status: domain.OfferStatusSent, ExpiresAt: testNow.Add(-time.Hour)},
			setup: func(m offerMocks) {
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Offer) error {
						assert.Equal(t, domain.OfferStatusExpired, o.Status)
						return nil
					})
			},
			wantExpired: true,
		},
		{
			name:  "已经是终态",
			offer: domain.Offer{ID: uuid.New(), Status: domain.OfferStatusExpired, ExpiresAt: testNow.Add(-time.Hour)},
			setup: func(m offerMocks) {},
		},
		{
			name:  "还没到期",
			offer: domain.Offer{ID: uuid.New(), Status: domain.OfferStatusDraft, ExpiresAt: testNow.Add(time.Hour)},
			setup: func(m offerMocks) {},
		},
		{
			name:  "并发修改",
			offer: domain.Offer{ID: uuid.New(), Status: domain.OfferStatusSent, ExpiresAt: testNow.Add(-time.Hour)},
			setup: func(m offerMocks) {
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errs.ErrConcurrentModification)
			},
			wantErr: errs.ErrConcurrentModification,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOfferMocks(ctrl)
			tc.setup(m)
			ok, err := m.newService().Expire(context.Background(), tc.offer)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantExpired, ok)
		})
	}
}
