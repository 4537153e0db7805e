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
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

const (
	actionCreateInterview = "createInterview"
	actionScore           = "score"
)

//go:generate mockgen -source=./interview.go -package=svcmocks -destination=./mocks/interview.mock.go InterviewService
type InterviewService interface {
	// Create 申请必须已经通过初筛或者正在面试中
	Create(ctx context.Context, i domain.Interview) (domain.Interview, error)
	Schedule(ctx context.Context, tenantID, id uuid.UUID, s domain.Schedule) (domain.Interview, error)
	Reschedule(ctx context.Context, tenantID, id uuid.UUID, s domain.Schedule) (domain.Interview, error)
	// Start 第一场面试开始的时候申请进入面试中
	Start(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)
	// Complete 结果为 PASS 或 FAIL 时同时推进申请；没有给总分时用评分的平均分
	Complete(ctx context.Context, tenantID, id uuid.UUID, result string, score decimal.NullDecimal, notes string) (domain.Interview, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)
	Postpone(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)
	MarkNoShow(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)
	Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)
	ListByApplication(ctx context.Context, tenantID, applicationID uuid.UUID) ([]domain.Interview, error)

	SaveScore(ctx context.Context, s domain.InterviewScore) (domain.InterviewScore, error)
	ListScores(ctx context.Context, tenantID, interviewID uuid.UUID) ([]domain.InterviewScore, error)
	AverageScore(ctx context.Context, tenantID, interviewID uuid.UUID) (decimal.Decimal, error)
}

type interviewService struct {
	statusNotifier
	repo    repository.InterviewRepository
	appRepo repository.ApplicationRepository
	now     func() time.Time
}

func NewInterviewService(
	repo repository.InterviewRepository,
	appRepo repository.ApplicationRepository,
	producer event.RecruitmentEventProducer) InterviewService {
	return &interviewService{
		statusNotifier: statusNotifier{producer: producer, logger: elog.DefaultLogger},
		repo:           repo,
		appRepo:        appRepo,
		now:            time.Now,
	}
}

func (s *interviewService) Create(ctx context.Context, i domain.Interview) (domain.Interview, error) {
	if err := i.Validate(); err != nil {
		return domain.Interview{}, err
	}
	app, err := s.appRepo.FindByID(ctx, i.TenantID, i.ApplicationID)
	if err != nil {
		return domain.Interview{}, err
	}
	if app.Status != domain.ApplicationStatusScreened &&
		app.Status != domain.ApplicationStatusInterviewing {
		return domain.Interview{}, errs.NewStateTransitionError(domain.ApplicationEntity, actionCreateInterview, app.Status.String())
	}
	now := s.now()
	i.ID = uuid.New()
	i.Status = domain.InterviewStatusScheduling
	i.Result, i.ResultNotes = "", ""
	i.OverallScore = decimal.NullDecimal{}
	i.StartedAt, i.EndedAt = time.Time{}, time.Time{}
	i.Version = 1
	i.Ctime, i.Utime = now, now
	// 创建时已经约好时间的，直接进入已安排
	if !i.Schedule.StartAt.IsZero() {
		if err = i.ScheduleAt(i.Schedule, now); err != nil {
			return domain.Interview{}, err
		}
	}
	if err = s.repo.Create(ctx, i); err != nil {
		return domain.Interview{}, err
	}
	return i, nil
}

func (s *interviewService) Schedule(ctx context.Context, tenantID, id uuid.UUID, sc domain.Schedule) (domain.Interview, error) {
	return s.transit(ctx, tenantID, id, domain.ActionSchedule, func(i *domain.Interview, now time.Time) error {
		return i.ScheduleAt(sc, now)
	})
}

func (s *interviewService) Reschedule(ctx context.Context, tenantID, id uuid.UUID, sc domain.Schedule) (domain.Interview, error) {
	return s.transit(ctx, tenantID, id, domain.ActionReschedule, func(i *domain.Interview, now time.Time) error {
		return i.Reschedule(sc, now)
	})
}

func (s *interviewService) Cancel(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error) {
	return s.transit(ctx, tenantID, id, domain.ActionCancel, (*domain.Interview).Cancel)
}

func (s *interviewService) Postpone(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error) {
	return s.transit(ctx, tenantID, id, domain.ActionPostpone, (*domain.Interview).Postpone)
}

func (s *interviewService) MarkNoShow(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error) {
	return s.transit(ctx, tenantID, id, domain.ActionMarkNoShow, (*domain.Interview).MarkNoShow)
}

func (s *interviewService) transit(ctx context.Context, tenantID, id uuid.UUID, action string,
	fn func(i *domain.Interview, now time.Time) error) (domain.Interview, error) {
	i, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if err = fn(&i, s.now()); err != nil {
		return domain.Interview{}, err
	}
	if err = s.repo.Save(ctx, i); err != nil {
		return domain.Interview{}, err
	}
	i.Version++
	countTransition(domain.InterviewEntity, action)
	return i, nil
}

func (s *interviewService) Start(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error) {
	i, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Interview{}, err
	}
	now := s.now()
	if err = i.Start(now); err != nil {
		return domain.Interview{}, err
	}
	app, err := s.appRepo.FindByID(ctx, tenantID, i.ApplicationID)
	if err != nil {
		return domain.Interview{}, err
	}
	from := app.Status
	switch app.Status {
	case domain.ApplicationStatusInterviewing:
		err = s.repo.Save(ctx, i)
	case domain.ApplicationStatusScreened:
		if err = app.StartInterview(now); err != nil {
			return domain.Interview{}, err
		}
		err = s.repo.SaveWithApplication(ctx, i, app)
	default:
		return domain.Interview{}, errs.NewStateTransitionError(domain.ApplicationEntity, domain.ActionStartInterview, app.Status.String())
	}
	if err != nil {
		return domain.Interview{}, err
	}
	i.Version++
	countTransition(domain.InterviewEntity, domain.ActionStart)
	if from != app.Status {
		countTransition(domain.ApplicationEntity, domain.ActionStartInterview)
		app.Version++
		s.notify(ctx, domain.StatusChange{Application: app, From: from})
	}
	return i, nil
}

func (s *interviewService) Complete(ctx context.Context, tenantID, id uuid.UUID, result string, score decimal.NullDecimal, notes string) (domain.Interview, error) {
	i, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if !score.Valid && i.Status == domain.InterviewStatusInProgress {
		score, err = s.defaultScore(ctx, tenantID, id)
		if err != nil {
			return domain.Interview{}, err
		}
	}
	now := s.now()
	verdict, err := i.Complete(result, score, notes, now)
	if err != nil {
		return domain.Interview{}, err
	}
	if verdict == domain.VerdictNone {
		if err = s.repo.Save(ctx, i); err != nil {
			return domain.Interview{}, err
		}
		i.Version++
		countTransition(domain.InterviewEntity, domain.ActionComplete)
		return i, nil
	}

	app, err := s.appRepo.FindByID(ctx, tenantID, i.ApplicationID)
	if err != nil {
		return domain.Interview{}, err
	}
	from := app.Status
	action := domain.ActionPassInterview
	if verdict == domain.VerdictFail {
		action = domain.ActionFailInterview
		err = app.FailInterview(now)
	} else {
		err = app.PassInterview(now)
	}
	if err != nil {
		return domain.Interview{}, err
	}
	if err = s.repo.SaveWithApplication(ctx, i, app); err != nil {
		return domain.Interview{}, err
	}
	i.Version++
	app.Version++
	countTransition(domain.InterviewEntity, domain.ActionComplete)
	countTransition(domain.ApplicationEntity, action)
	s.notify(ctx, domain.StatusChange{Application: app, From: from})
	return i, nil
}

// defaultScore 没有评分的时候总分留空
func (s *interviewService) defaultScore(ctx context.Context, tenantID, id uuid.UUID) (decimal.NullDecimal, error) {
	scores, err := s.repo.FindScores(ctx, tenantID, id)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	if len(scores) == 0 {
		return decimal.NullDecimal{}, nil
	}
	avg, err := domain.AverageScore(scores)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(avg.Round(2)), nil
}

func (s *interviewService) Detail(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *interviewService) ListByApplication(ctx context.Context, tenantID, applicationID uuid.UUID) ([]domain.Interview, error) {
	return s.repo.ListByApplication(ctx, tenantID, applicationID)
}

func (s *interviewService) SaveScore(ctx context.Context, sc domain.InterviewScore) (domain.InterviewScore, error) {
	i, err := s.repo.FindByID(ctx, sc.TenantID, sc.InterviewID)
	if err != nil {
		return domain.InterviewScore{}, err
	}
	if !i.Scorable() {
		return domain.InterviewScore{}, errs.NewStateTransitionError(domain.InterviewEntity, actionScore, i.Status.String())
	}
	if err = sc.Normalize(); err != nil {
		return domain.InterviewScore{}, err
	}
	// 只有第一次写入时才会用上这个 ID
	sc.ID = uuid.New()
	return s.repo.SaveScore(ctx, sc)
}

func (s *interviewService) ListScores(ctx context.Context, tenantID, interviewID uuid.UUID) ([]domain.InterviewScore, error) {
	return s.repo.FindScores(ctx, tenantID, interviewID)
}

func (s *interviewService) AverageScore(ctx context.Context, tenantID, interviewID uuid.UUID) (decimal.Decimal, error) {
	scores, err := s.repo.FindScores(ctx, tenantID, interviewID)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.AverageScore(scores)
}
