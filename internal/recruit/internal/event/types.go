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

package event

import (
	"time"

	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

const RecruitmentEventName = "recruitment_events"

// ApplicationStatusChangedEvent 申请状态变更，事务提交之后发送
type ApplicationStatusChangedEvent struct {
	// Key 消费方用来去重
	Key           string `json:"key"`
	TenantID      string `json:"tenantId"`
	ApplicationID string `json:"applicationId"`
	RequisitionID string `json:"requisitionId"`
	ApplicantID   string `json:"applicantId"`
	From          string `json:"from"`
	To            string `json:"to"`
	Utime         int64  `json:"utime"`
}

func NewApplicationStatusChangedEvent(c domain.StatusChange) ApplicationStatusChangedEvent {
	app := c.Application
	return ApplicationStatusChangedEvent{
		Key:           shortuuid.New(),
		TenantID:      app.TenantID.String(),
		ApplicationID: app.ID.String(),
		RequisitionID: app.RequisitionID.String(),
		ApplicantID:   app.ApplicantID.String(),
		From:          c.From.String(),
		To:            app.Status.String(),
		Utime:         app.Utime.UnixMilli(),
	}
}

// MessageKey 同一个申请的事件落在同一个分区，保证顺序
func (e ApplicationStatusChangedEvent) MessageKey() string {
	return e.ApplicationID
}

func (e ApplicationStatusChangedEvent) Hired() bool {
	return e.To == domain.ApplicationStatusHired.String()
}

func (e ApplicationStatusChangedEvent) ChangedAt() time.Time {
	return time.UnixMilli(e.Utime)
}
