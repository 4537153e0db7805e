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

package domain

import (
	"strings"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/pkg/fsm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const ApplicationEntity = "Application"

type ApplicationStatus string

const (
	ApplicationStatusSubmitted         ApplicationStatus = "SUBMITTED"
	ApplicationStatusScreened          ApplicationStatus = "SCREENED"
	ApplicationStatusScreeningRejected ApplicationStatus = "SCREENING_REJECTED"
	ApplicationStatusInterviewing      ApplicationStatus = "INTERVIEWING"
	ApplicationStatusInterviewPassed   ApplicationStatus = "INTERVIEW_PASSED"
	ApplicationStatusInterviewRejected ApplicationStatus = "INTERVIEW_REJECTED"
	ApplicationStatusOfferPending      ApplicationStatus = "OFFER_PENDING"
	ApplicationStatusHired             ApplicationStatus = "HIRED"
	ApplicationStatusRejected          ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn         ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

// 流水线阶段。这三个只能由状态流转写入，不能手动设置
const (
	StageScreening = "SCREENING"
	StageInterview = "INTERVIEW"
	StageOffer     = "OFFER"
)

const (
	ActionScreen         = "screen"
	ActionStartInterview = "startInterview"
	ActionPassInterview  = "passInterview"
	ActionFailInterview  = "failInterview"
	ActionMakeOffer      = "makeOffer"
	ActionHire           = "hire"
	ActionReject         = "reject"
	ActionWithdraw       = "withdraw"
	ActionMoveStage      = "moveToNextStage"

	actionScreenReject = "screenReject"
)

var activeApplicationStatuses = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusScreened,
	ApplicationStatusInterviewing,
	ApplicationStatusInterviewPassed,
	ApplicationStatusOfferPending,
}

var applicationMachine = fsm.New[ApplicationStatus](ApplicationEntity,
	map[string]fsm.Transition[ApplicationStatus]{
		ActionScreen: {
			From: []ApplicationStatus{ApplicationStatusSubmitted},
			To:   ApplicationStatusScreened,
		},
		actionScreenReject: {
			From: []ApplicationStatus{ApplicationStatusSubmitted},
			To:   ApplicationStatusScreeningRejected,
		},
		ActionStartInterview: {
			From: []ApplicationStatus{ApplicationStatusScreened},
			To:   ApplicationStatusInterviewing,
		},
		ActionPassInterview: {
			From: []ApplicationStatus{ApplicationStatusInterviewing},
			To:   ApplicationStatusInterviewPassed,
		},
		ActionFailInterview: {
			From: []ApplicationStatus{ApplicationStatusInterviewing},
			To:   ApplicationStatusInterviewRejected,
		},
		ActionMakeOffer: {
			From: []ApplicationStatus{ApplicationStatusInterviewPassed},
			To:   ApplicationStatusOfferPending,
		},
		ActionHire: {
			From: []ApplicationStatus{ApplicationStatusOfferPending},
			To:   ApplicationStatusHired,
		},
		ActionReject:   {From: activeApplicationStatuses, To: ApplicationStatusRejected},
		ActionWithdraw: {From: activeApplicationStatuses, To: ApplicationStatusWithdrawn},
	},
	ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusWithdrawn,
	ApplicationStatusScreeningRejected, ApplicationStatusInterviewRejected,
)

// Application 候选人对某个职位的一次申请
type Application struct {
	ID                uuid.UUID
	TenantID          uuid.UUID
	RequisitionID     uuid.UUID
	ApplicantID       uuid.UUID
	ApplicationNumber string
	Status            ApplicationStatus
	CurrentStage      string
	StageOrder        int

	CoverLetter string
	ResumeURL   string
	Source      string

	Screening Screening

	RejectionReason string
	RejectedAt      time.Time
	WithdrawnAt     time.Time
	HiredAt         time.Time

	Version int64
	Ctime   time.Time
	Utime   time.Time
}

type Screening struct {
	Score      decimal.Decimal
	Notes      string
	ScreenerID uuid.UUID
	ScreenedAt time.Time
}

// NewApplication 刚提交的申请
func NewApplication(tenantID, requisitionID, applicantID uuid.UUID, now time.Time) Application {
	return Application{
		ID:            uuid.New(),
		TenantID:      tenantID,
		RequisitionID: requisitionID,
		ApplicantID:   applicantID,
		Status:        ApplicationStatusSubmitted,
		CurrentStage:  StageScreening,
		StageOrder:    0,
		Ctime:         now,
		Utime:         now,
	}
}

// Screen 初筛。通过进入面试阶段，否则直接终结
func (a *Application) Screen(s Screening, passed bool, now time.Time) error {
	action := ActionScreen
	if !passed {
		action = actionScreenReject
	}
	next, err := applicationMachine.Next(a.Status, action)
	if err != nil {
		// 对外统一叫 screen
		return errs.NewStateTransitionError(ApplicationEntity, ActionScreen, a.Status.String())
	}
	if s.Score.IsNegative() {
		return errs.Invalid("初筛分数不能为负数")
	}
	if err := checkStorable("初筛分数", s.Score); err != nil {
		return err
	}
	a.Status = next
	s.ScreenedAt = now
	a.Screening = s
	if passed {
		a.CurrentStage = StageInterview
		a.StageOrder = 1
	}
	a.Utime = now
	return nil
}

func (a *Application) StartInterview(now time.Time) error {
	return a.transit(ActionStartInterview, now)
}

func (a *Application) PassInterview(now time.Time) error {
	return a.transit(ActionPassInterview, now)
}

func (a *Application) FailInterview(now time.Time) error {
	return a.transit(ActionFailInterview, now)
}

func (a *Application) MakeOffer(now time.Time) error {
	if err := a.transit(ActionMakeOffer, now); err != nil {
		return err
	}
	a.CurrentStage = StageOffer
	a.StageOrder++
	return nil
}

func (a *Application) Hire(now time.Time) error {
	if err := a.transit(ActionHire, now); err != nil {
		return err
	}
	a.HiredAt = now
	return nil
}

func (a *Application) Reject(reason string, now time.Time) error {
	if err := a.transit(ActionReject, now); err != nil {
		return err
	}
	a.RejectionReason = reason
	a.RejectedAt = now
	return nil
}

func (a *Application) Withdraw(now time.Time) error {
	if err := a.transit(ActionWithdraw, now); err != nil {
		return err
	}
	a.WithdrawnAt = now
	return nil
}

// MoveToNextStage 只修改阶段标签，不动状态。
// 已经终结的申请不能再移动；保留的阶段名只能由状态流转写入。
func (a *Application) MoveToNextStage(name string, order int, now time.Time) error {
	if a.IsTerminal() {
		return errs.NewStateTransitionError(ApplicationEntity, ActionMoveStage, a.Status.String())
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Invalid("阶段名称不能为空")
	}
	if IsReservedStage(name) {
		return errs.Invalid("阶段 %s 只能由状态流转设置", name)
	}
	if order < 0 {
		return errs.Invalid("阶段序号不能为负数")
	}
	a.CurrentStage = name
	a.StageOrder = order
	a.Utime = now
	return nil
}

func (a *Application) transit(action string, now time.Time) error {
	next, err := applicationMachine.Next(a.Status, action)
	if err != nil {
		return err
	}
	a.Status = next
	a.Utime = now
	return nil
}

func (a Application) IsTerminal() bool {
	return applicationMachine.IsTerminal(a.Status)
}

func IsReservedStage(name string) bool {
	switch strings.ToUpper(name) {
	case StageScreening, StageInterview, StageOffer:
		return true
	default:
		return false
	}
}

// StatusChange 一次状态变更，提交成功之后用于发送事件
type StatusChange struct {
	Application Application
	From        ApplicationStatus
}

func (c StatusChange) Changed() bool {
	return c.From != c.Application.Status
}

// ApplicationFilter 列表过滤条件，零值表示不过滤
type ApplicationFilter struct {
	RequisitionID uuid.UUID
	ApplicantID   uuid.UUID
	Status        ApplicationStatus
}
