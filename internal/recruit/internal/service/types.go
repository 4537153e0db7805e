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

	"github.com/ecodeclub/hirebook/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//go:generate mockgen -source=./types.go -package=svcmocks -destination=./mocks/types.mock.go SequenceGenerator
type SequenceGenerator interface {
	// Next 生成形如 APP-20240520-000001 的编号，跨实例唯一
	Next(ctx context.Context, tenantID uuid.UUID, biz sequencenumber.Biz) (string, error)
}

var transitionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recruitment_transitions_total",
		Help: "招聘流程中成功的状态流转次数",
	},
	[]string{"entity", "action"},
)

func countTransition(entity, action string) {
	transitionCounter.WithLabelValues(entity, action).Inc()
}

// statusNotifier 申请状态变化之后发送事件。
// 事件在事务提交之后才发送，发送失败只记录日志，不会回滚已经提交的数据。
type statusNotifier struct {
	producer event.RecruitmentEventProducer
	logger   *elog.Component
}

func (n statusNotifier) notify(ctx context.Context, changes ...domain.StatusChange) {
	for _, c := range changes {
		if !c.Changed() {
			continue
		}
		evt := event.NewApplicationStatusChangedEvent(c)
		if err := n.producer.Produce(ctx, evt); err != nil {
			n.logger.Error("发送申请状态变更事件失败",
				elog.FieldErr(err),
				elog.String("tenant", evt.TenantID),
				elog.String("application", evt.ApplicationID),
				elog.String("from", evt.From),
				elog.String("to", evt.To))
		}
	}
}
