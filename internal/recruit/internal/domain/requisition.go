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

const RequisitionEntity = "JobRequisition"

type RequisitionStatus string

const (
	RequisitionStatusDraft     RequisitionStatus = "DRAFT"
	RequisitionStatusPending   RequisitionStatus = "PENDING"
	RequisitionStatusPublished RequisitionStatus = "PUBLISHED"
	RequisitionStatusClosed    RequisitionStatus = "CLOSED"
	RequisitionStatusCancelled RequisitionStatus = "CANCELLED"
	RequisitionStatusCompleted RequisitionStatus = "COMPLETED"
)

func (s RequisitionStatus) String() string {
	return string(s)
}

const (
	ActionSubmit   = "submit"
	ActionPublish  = "publish"
	ActionClose    = "close"
	ActionComplete = "complete"
	ActionCancel   = "cancel"
)

var requisitionMachine = fsm.New[RequisitionStatus](RequisitionEntity,
	map[string]fsm.Transition[RequisitionStatus]{
		ActionSubmit: {
			From: []RequisitionStatus{RequisitionStatusDraft},
			To:   RequisitionStatusPending,
		},
		ActionPublish: {
			From: []RequisitionStatus{RequisitionStatusDraft, RequisitionStatusPending},
			To:   RequisitionStatusPublished,
		},
		ActionClose: {
			From: []RequisitionStatus{RequisitionStatusPublished},
			To:   RequisitionStatusClosed,
		},
		ActionComplete: {
			From: []RequisitionStatus{RequisitionStatusClosed},
			To:   RequisitionStatusCompleted,
		},
		ActionCancel: {
			From: []RequisitionStatus{
				RequisitionStatusDraft, RequisitionStatusPending,
				RequisitionStatusPublished, RequisitionStatusClosed,
			},
			To: RequisitionStatusCancelled,
		},
	},
	RequisitionStatusCancelled, RequisitionStatusCompleted,
)

// Requisition 招聘需求（职位）
type Requisition struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Code         string
	Title        string
	DepartmentID uuid.UUID
	PositionID   uuid.UUID
	Description  string
	Location     string
	SalaryMin    decimal.Decimal
	SalaryMax    decimal.Decimal
	Currency     string
	Headcount    int
	Status       RequisitionStatus
	// 零值表示未设置
	OpenDate  time.Time
	CloseDate time.Time

	// 三个计数只增不减，由数据库原子更新
	ApplicationCount int64
	ViewCount        int64
	HiredCount       int64

	Version int64
	Ctime   time.Time
	Utime   time.Time
}

func (r *Requisition) Submit(now time.Time) error {
	return r.transit(ActionSubmit, now)
}

// Publish 发布，没有设置开放日期的时候用当天
func (r *Requisition) Publish(now time.Time) error {
	if err := r.transit(ActionPublish, now); err != nil {
		return err
	}
	if r.OpenDate.IsZero() {
		r.OpenDate = Today(now)
	}
	return nil
}

func (r *Requisition) Close(now time.Time) error {
	return r.transit(ActionClose, now)
}

func (r *Requisition) Complete(now time.Time) error {
	return r.transit(ActionComplete, now)
}

func (r *Requisition) Cancel(now time.Time) error {
	return r.transit(ActionCancel, now)
}

func (r *Requisition) transit(action string, now time.Time) error {
	next, err := requisitionMachine.Next(r.Status, action)
	if err != nil {
		return err
	}
	r.Status = next
	r.Utime = now
	return nil
}

// IsOpen 是否还能接收新的申请。只看状态是不够的，截止日期过了也不行
func (r Requisition) IsOpen(now time.Time) bool {
	if r.Status != RequisitionStatusPublished {
		return false
	}
	return r.CloseDate.IsZero() || !r.CloseDate.Before(Today(now))
}

func (r Requisition) IsTerminal() bool {
	return requisitionMachine.IsTerminal(r.Status)
}

// Editable 提交审批之后、发布之前还允许修改
func (r Requisition) Editable() bool {
	return r.Status == RequisitionStatusDraft || r.Status == RequisitionStatusPending
}

func (r Requisition) Fulfilled() bool {
	return r.HiredCount >= int64(r.Headcount)
}

func (r Requisition) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errs.Invalid("职位编码不能为空")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errs.Invalid("职位名称不能为空")
	}
	if r.Headcount < 1 {
		return errs.Invalid("招聘人数至少为 1，当前 %d", r.Headcount)
	}
	if r.SalaryMin.IsNegative() || r.SalaryMax.IsNegative() {
		return errs.Invalid("薪资不能为负数")
	}
	if !r.SalaryMax.IsZero() && r.SalaryMin.GreaterThan(r.SalaryMax) {
		return errs.Invalid("薪资下限 %s 高于上限 %s", r.SalaryMin, r.SalaryMax)
	}
	if !r.OpenDate.IsZero() && !r.CloseDate.IsZero() && r.CloseDate.Before(r.OpenDate) {
		return errs.Invalid("截止日期早于开放日期")
	}
	return nil
}
