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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
)

const fulfilmentGroupID = "recruit_fulfilment"

// FulfilmentConsumer 候选人被录用之后，检查职位是否已经招满
type FulfilmentConsumer struct {
	svc      service.RequisitionService
	cache    cache.EventKeyCache
	consumer mq.Consumer
	logger   *elog.Component
}

func NewFulfilmentConsumer(svc service.RequisitionService, c cache.EventKeyCache, q mq.MQ) (*FulfilmentConsumer, error) {
	consumer, err := q.Consumer(event.RecruitmentEventName, fulfilmentGroupID)
	if err != nil {
		return nil, err
	}
	return &FulfilmentConsumer{
		svc:      svc,
		cache:    c,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *FulfilmentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费招聘事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *FulfilmentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.ApplicationStatusChangedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if !evt.Hired() {
		return nil
	}
	return c.handleHired(ctx, evt)
}

func (c *FulfilmentConsumer) handleHired(ctx context.Context, evt event.ApplicationStatusChangedEvent) error {
	tenantID, err := uuid.Parse(evt.TenantID)
	if err != nil {
		return fmt.Errorf("租户 ID 非法 %s: %w", evt.TenantID, err)
	}
	reqID, err := uuid.Parse(evt.RequisitionID)
	if err != nil {
		return fmt.Errorf("职位 ID 非法 %s: %w", evt.RequisitionID, err)
	}
	ok, err := c.cache.SetNXEventKey(ctx, evt.Key)
	if err != nil {
		return fmt.Errorf("设置事件去重 key 失败: %w", err)
	}
	if !ok {
		c.logger.Info("重复的录用事件", elog.String("key", evt.Key))
		return nil
	}
	closed, err := c.svc.CloseIfFulfilled(ctx, tenantID, reqID)
	if err != nil {
		// 删掉 key，重新投递的时候还能再处理
		if _, delErr := c.cache.DelEventKey(ctx, evt.Key); delErr != nil {
			c.logger.Error("删除事件去重 key 失败",
				elog.FieldErr(delErr),
				elog.String("key", evt.Key))
		}
		return fmt.Errorf("检查职位 %s 是否招满失败: %w", evt.RequisitionID, err)
	}
	if closed {
		c.logger.Info("录用之后职位已招满",
			elog.String("tenant", evt.TenantID),
			elog.String("requisition", evt.RequisitionID),
			elog.String("application", evt.ApplicationID))
	}
	return nil
}

func (c *FulfilmentConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
