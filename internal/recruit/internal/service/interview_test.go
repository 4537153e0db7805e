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
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	evtmocks "github.com/ecodeclub/hirebook/internal/recruit/internal/event/mocks"
	repomocks "github.com/ecodeclub/hirebook/internal/recruit/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type interviewMocks struct {
	repo     *repomocks.MockInterviewRepository
	appRepo  *repomocks.MockApplicationRepository
	producer *evtmocks.MockRecruitmentEventProducer
}

func newInterviewMocks(ctrl *gomock.Controller) interviewMocks {
	return interviewMocks{
		repo:     repomocks.NewMockInterviewRepository(ctrl),
		appRepo:  repomocks.NewMockApplicationRepository(ctrl),
		producer: evtmocks.NewMockRecruitmentEventProducer(ctrl),
	}
}

func (m interviewMocks) newService() *interviewService {
	svc := NewInterviewService(m.repo, m.appRepo, m.producer).(*interviewService)
	svc.now = fixedNow
	return svc
}

func TestInterviewService_Create(t *testing.T) {
	appID := uuid.New()
	testCases := []struct {
		name       string
		interview  domain.Interview
		setup      func(m interviewMocks)
		wantStatus domain.InterviewStatus
		wantErr    error
	}{
		{
			name:      "待安排",
			interview: domain.Interview{TenantID: testTenant, ApplicationID: appID, Round: 1, Type: "技术面"},
			setup: func(m interviewMocks) {
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, Status: domain.ApplicationStatusScreened}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.InterviewStatusScheduling,
		},
		{
			name: "创建时已约好时间",
			interview: domain.Interview{TenantID: testTenant, ApplicationID: appID, Round: 2,
				Schedule: domain.Schedule{StartAt: testNow.Add(24 * time.Hour), DurationMinutes: 60}},
			setup: func(m interviewMocks) {
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, Status: domain.ApplicationStatusInterviewing}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, i domain.Interview) error {
						assert.Equal(t, domain.InterviewStatusScheduled, i.Status)
						assert.Equal(t, 60, i.Schedule.DurationMinutes)
						return nil
					})
			},
			wantStatus: domain.InterviewStatusScheduled,
		},
		{
			name:      "申请还没初筛",
			interview: domain.Interview{TenantID: testTenant, ApplicationID: appID, Round: 1},
			setup: func(m interviewMocks) {
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, Status: domain.ApplicationStatusSubmitted}, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
		{
			name:      "轮次非法",
			interview: domain.Interview{TenantID: testTenant, ApplicationID: appID},
			setup:     func(m interviewMocks) {},
			wantErr:   errs.ErrInvalidRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newInterviewMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Create(context.Background(), tc.interview)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.NotEqual(t, uuid.Nil, res.ID)
			assert.Equal(t, int64(1), res.Version)
		})
	}
}

func TestInterviewService_Start(t *testing.T) {
	id, appID := uuid.New(), uuid.New()
	scheduled := domain.Interview{ID: id, TenantID: testTenant, ApplicationID: appID, Round: 1,
		Status: domain.InterviewStatusScheduled, Version: 2}
	testCases := []struct {
		name    string
		setup   func(m interviewMocks)
		wantErr error
	}{
		{
			name: "第一场面试推进申请",
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(scheduled, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, TenantID: testTenant, Status: domain.ApplicationStatusScreened}, nil)
				m.repo.EXPECT().SaveWithApplication(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, i domain.Interview, app domain.Application) error {
						assert.Equal(t, domain.InterviewStatusInProgress, i.Status)
						assert.Equal(t, domain.ApplicationStatusInterviewing, app.Status)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationStatusChangedEvent) error {
						assert.Equal(t, "SCREENED", evt.From)
						assert.Equal(t, "INTERVIEWING", evt.To)
						return nil
					})
			},
		},
		{
			name: "后续轮次只更新面试",
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(scheduled, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, Status: domain.ApplicationStatusInterviewing}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "申请已经终结",
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(scheduled, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).
					Return(domain.Application{ID: appID, Status: domain.ApplicationStatusWithdrawn}, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
		{
			name: "面试还没安排",
			setup: func(m interviewMocks) {
				i := scheduled
				i.Status = domain.InterviewStatusScheduling
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(i, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newInterviewMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Start(context.Background(), testTenant, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.InterviewStatusInProgress, res.Status)
			assert.Equal(t, testNow, res.StartedAt)
			assert.Equal(t, int64(3), res.Version)
		})
	}
}

func TestInterviewService_Complete(t *testing.T) {
	id, appID := uuid.New(), uuid.New()
	inProgress := domain.Interview{ID: id, TenantID: testTenant, ApplicationID: appID, Round: 1,
		Status: domain.InterviewStatusInProgress}
	interviewing := domain.Application{ID: appID, TenantID: testTenant, Status: domain.ApplicationStatusInterviewing}
	testCases := []struct {
		name      string
		result    string
		score     decimal.NullDecimal
		setup     func(m interviewMocks)
		wantScore decimal.NullDecimal
		wantErr   error
	}{
		{
			name:   "通过并推进申请",
			result: "pass",
			score:  decimal.NewNullDecimal(decimal.NewFromInt(88)),
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(inProgress, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).Return(interviewing, nil)
				m.repo.EXPECT().SaveWithApplication(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, i domain.Interview, app domain.Application) error {
						assert.Equal(t, domain.ApplicationStatusInterviewPassed, app.Status)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantScore: decimal.NewNullDecimal(decimal.NewFromInt(88)),
		},
		{
			name:   "不通过",
			result: "FAIL",
			score:  decimal.NewNullDecimal(decimal.NewFromInt(40)),
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(inProgress, nil)
				m.appRepo.EXPECT().FindByID(gomock.Any(), testTenant, appID).Return(interviewing, nil)
				m.repo.EXPECT().SaveWithApplication(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, i domain.Interview, app domain.Application) error {
						assert.Equal(t, domain.ApplicationStatusInterviewRejected, app.Status)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantScore: decimal.NewNullDecimal(decimal.NewFromInt(40)),
		},
		{
			name:   "还有下一轮只记录结果",
			result: "NEXT_ROUND",
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(inProgress, nil)
				m.repo.EXPECT().FindScores(gomock.Any(), testTenant, id).Return([]domain.InterviewScore{
					{Score: 4, MaxScore: 5, Weight: decimal.NewFromInt(1)},
					{Score: 3, MaxScore: 5, Weight: decimal.NewFromInt(1)},
				}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantScore: decimal.NewNullDecimal(decimal.NewFromInt(70)),
		},
		{
			name:   "没有评分总分留空",
			result: "NEXT_ROUND",
			setup: func(m interviewMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(inProgress, nil)
				m.repo.EXPECT().FindScores(gomock.Any(), testTenant, id).Return(nil, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "已经结束的面试",
			result: "PASS",
			score:  decimal.NewNullDecimal(decimal.NewFromInt(88)),
			setup: func(m interviewMocks) {
				i := inProgress
				i.Status = domain.InterviewStatusCompleted
				m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).Return(i, nil)
			},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newInterviewMocks(ctrl)
			tc.setup(m)
			res, err := m.newService().Complete(context.Background(), testTenant, id, tc.result, tc.score, "")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.InterviewStatusCompleted, res.Status)
			assert.Equal(t, tc.wantScore.Valid, res.OverallScore.Valid)
			if tc.wantScore.Valid {
				assert.True(t, tc.wantScore.Decimal.Equal(res.OverallScore.Decimal),
					"want %s, got %s", tc.wantScore.Decimal, res.OverallScore.Decimal)
			}
		})
	}
}

func TestInterviewService_SaveScore(t *testing.T) {
	id := uuid.New()
	interviewer := uuid.New()
	existing := uuid.New()
	testCases := []struct {
		name    string
		status  domain.InterviewStatus
		score   domain.InterviewScore
		setup   func(m interviewMocks)
		wantErr error
		wantID  func(res domain.InterviewScore) bool
	}{
		{
			name:   "填充默认值",
			status: domain.InterviewStatusInProgress,
			score:  domain.InterviewScore{TenantID: testTenant, InterviewID: id, InterviewerID: interviewer, Criterion: " 编码 ", Score: 4},
			setup: func(m interviewMocks) {
				m.repo.EXPECT().SaveScore(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.InterviewScore) (domain.InterviewScore, error) {
						assert.Equal(t, "编码", s.Criterion)
						assert.Equal(t, domain.DefaultMaxScore, s.MaxScore)
						assert.True(t, s.Weight.Equal(domain.DefaultWeight))
						assert.NotEqual(t, uuid.Nil, s.ID)
						return s, nil
					})
			},
			wantID: func(res domain.InterviewScore) bool { return res.ID != uuid.Nil },
		},
		{
			name:   "重复评分返回已有记录",
			status: domain.InterviewStatusInProgress,
			score:  domain.InterviewScore{TenantID: testTenant, InterviewID: id, InterviewerID: interviewer, Criterion: "编码", Score: 5},
			setup: func(m interviewMocks) {
				m.repo.EXPECT().SaveScore(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.InterviewScore) (domain.InterviewScore, error) {
						s.ID = existing
						return s, nil
					})
			},
			wantID: func(res domain.InterviewScore) bool { return res.ID == existing },
		},
		{
			name:    "面试已结束",
			status:  domain.InterviewStatusCompleted,
			score:   domain.InterviewScore{TenantID: testTenant, InterviewID: id, InterviewerID: interviewer, Criterion: "编码", Score: 3},
			setup:   func(m interviewMocks) {},
			wantErr: errs.ErrStateTransition,
		},
		{
			name:    "分数越界",
			status:  domain.InterviewStatusInProgress,
			score:   domain.InterviewScore{TenantID: testTenant, InterviewID: id, InterviewerID: interviewer, Criterion: "编码", Score: 6},
			setup:   func(m interviewMocks) {},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "面试还没开始",
			status:  domain.InterviewStatusScheduled,
			score:   domain.InterviewScore{TenantID: testTenant, InterviewID: id, InterviewerID: interviewer, Criterion: "编码", Score: 3},
			setup:   func(m interviewMocks) {},
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newInterviewMocks(ctrl)
			m.repo.EXPECT().FindByID(gomock.Any(), testTenant, id).
				Return(domain.Interview{ID: id, TenantID: testTenant, Status: tc.status}, nil)
			tc.setup(m)
			res, err := m.newService().SaveScore(context.Background(), tc.score)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.wantID(res), "id %s", res.ID)
		})
	}
}

func TestInterviewService_AverageScore(t *testing.T) {
	id := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newInterviewMocks(ctrl)
	m.repo.EXPECT().FindScores(gomock.Any(), testTenant, id).Return(nil, nil)
	_, err := m.newService().AverageScore(context.Background(), testTenant, id)
	assert.ErrorIs(t, err, domain.ErrNoScores)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
