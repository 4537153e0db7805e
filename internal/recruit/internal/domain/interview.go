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

const InterviewEntity = "Interview"

type InterviewStatus string

const (
	InterviewStatusScheduling InterviewStatus = "SCHEDULING"
	InterviewStatusScheduled  InterviewStatus = "SCHEDULED"
	InterviewStatusInProgress InterviewStatus = "IN_PROGRESS"
	InterviewStatusCompleted  InterviewStatus = "COMPLETED"
	InterviewStatusNoShow     InterviewStatus = "NO_SHOW"
	InterviewStatusCancelled  InterviewStatus = "CANCELLED"
	InterviewStatusPostponed  InterviewStatus = "POSTPONED"
)

func (s InterviewStatus) String() string {
	return string(s)
}

const (
	ActionSchedule   = "schedule"
	ActionReschedule = "reschedule"
	ActionStart      = "start"
	ActionPostpone   = "postpone"
	ActionMarkNoShow = "markNoShow"
)

var interviewMachine = fsm.New[InterviewStatus](InterviewEntity,
	map[string]fsm.Transition[InterviewStatus]{
		ActionSchedule: {
			From: []InterviewStatus{InterviewStatusScheduling},
			To:   InterviewStatusScheduled,
		},
		ActionReschedule: {
			From: []InterviewStatus{InterviewStatusPostponed},
			To:   InterviewStatusScheduled,
		},
		ActionStart: {
			From: []InterviewStatus{InterviewStatusScheduled},
			To:   InterviewStatusInProgress,
		},
		ActionComplete: {
			From: []InterviewStatus{InterviewStatusInProgress},
			To:   InterviewStatusCompleted,
		},
		ActionCancel: {
			From: []InterviewStatus{InterviewStatusScheduled, InterviewStatusPostponed},
			To:   InterviewStatusCancelled,
		},
		ActionPostpone: {
			From: []InterviewStatus{InterviewStatusScheduled},
			To:   InterviewStatusPostponed,
		},
		ActionMarkNoShow: {
			From: []InterviewStatus{InterviewStatusScheduled},
			To:   InterviewStatusNoShow,
		},
	},
	InterviewStatusCompleted, InterviewStatusNoShow, InterviewStatusCancelled,
)

type Interview struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ApplicationID uuid.UUID
	Round         int
	Type          string
	Status        InterviewStatus
	Schedule      Schedule
	// 面试官列表是自由格式，可以是姓名也可以是工号
	Interviewers []string

	Result       string
	OverallScore decimal.NullDecimal
	ResultNotes  string
	StartedAt    time.Time
	EndedAt      time.Time

	Version int64
	Ctime   time.Time
	Utime   time.Time
}

type Schedule struct {
	StartAt         time.Time
	DurationMinutes int
	Location        string
	MeetingLink     string
}

func (s Schedule) Validate() error {
	if s.StartAt.IsZero() {
		return errs.Invalid("面试时间不能为空")
	}
	if s.DurationMinutes < 0 {
		return errs.Invalid("面试时长不能为负数")
	}
	return nil
}

// Verdict 面试结果对申请的影响
type Verdict uint8

const (
	// VerdictNone 只记录结果，例如还有下一轮
	VerdictNone Verdict = iota
	VerdictPass
	VerdictFail
)

const (
	ResultPass = "PASS"
	ResultFail = "FAIL"
)

func ParseVerdict(result string) Verdict {
	result = strings.TrimSpace(result)
	switch {
	case strings.EqualFold(result, ResultPass):
		return VerdictPass
	case strings.EqualFold(result, ResultFail):
		return VerdictFail
	default:
		return VerdictNone
	}
}

func (i Interview) Validate() error {
	if i.Round <= 0 {
		return errs.Invalid("面试轮次必须是正数，当前 %d", i.Round)
	}
	return nil
}

func (i *Interview) ScheduleAt(s Schedule, now time.Time) error {
	return i.schedule(ActionSchedule, s, now)
}

func (i *Interview) Reschedule(s Schedule, now time.Time) error {
	return i.schedule(ActionReschedule, s, now)
}

func (i *Interview) schedule(action string, s Schedule, now time.Time) error {
	if !interviewMachine.Can(i.Status, action) {
		return errs.NewStateTransitionError(InterviewEntity, action, i.Status.String())
	}
	if err := s.Validate(); err != nil {
		return err
	}
	i.Schedule = s
	return i.transit(action, now)
}

func (i *Interview) Start(now time.Time) error {
	if err := i.transit(ActionStart, now); err != nil {
		return err
	}
	i.StartedAt = now
	return nil
}

// Complete 结束面试，返回结果对申请的影响
func (i *Interview) Complete(result string, score decimal.NullDecimal, notes string, now time.Time) (Verdict, error) {
	if !interviewMachine.Can(i.Status, ActionComplete) {
		return VerdictNone, errs.NewStateTransitionError(InterviewEntity, ActionComplete, i.Status.String())
	}
	result = strings.TrimSpace(result)
	if result == "" {
		return VerdictNone, errs.Invalid("面试结果不能为空")
	}
	if score.Valid && score.Decimal.IsNegative() {
		return VerdictNone, errs.Invalid("面试总分不能为负数")
	}
	if score.Valid {
		if err := checkStorable("面试总分", score.Decimal); err != nil {
			return VerdictNone, err
		}
	}
	if err := i.transit(ActionComplete, now); err != nil {
		return VerdictNone, err
	}
	i.Result = result
	i.OverallScore = score
	i.ResultNotes = notes
	i.EndedAt = now
	return ParseVerdict(result), nil
}

func (i *Interview) Cancel(now time.Time) error {
	return i.transit(ActionCancel, now)
}

func (i *Interview) Postpone(now time.Time) error {
	return i.transit(ActionPostpone, now)
}

func (i *Interview) MarkNoShow(now time.Time) error {
	return i.transit(ActionMarkNoShow, now)
}

func (i *Interview) transit(action string, now time.Time) error {
	next, err := interviewMachine.Next(i.Status, action)
	if err != nil {
		return err
	}
	i.Status = next
	i.Utime = now
	return nil
}

// Scorable 只有进行中的面试允许录入评分
func (i Interview) Scorable() bool {
	return i.Status == InterviewStatusInProgress
}

func (i Interview) IsTerminal() bool {
	return interviewMachine.IsTerminal(i.Status)
}
