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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireOffersJob)(nil)

// ExpireOffersJob 把已经过了有效期但还没结束的 offer 置为过期
type ExpireOffersJob struct {
	svc     service.OfferService
	limit   int
	timeout time.Duration
	now     func() time.Time
	logger  *elog.Component
}

func NewExpireOffersJob(svc service.OfferService, limit int, timeout time.Duration) *ExpireOffersJob {
	return &ExpireOffersJob{
		svc:     svc,
		limit:   limit,
		timeout: timeout,
		now:     time.Now,
		logger:  elog.DefaultLogger,
	}
}

func (j *ExpireOffersJob) Name() string {
	return "ExpireOffersJob"
}

// Run 按 id 游标分批扫描。单个 offer 失败只记录日志，下次运行还会扫到它
func (j *ExpireOffersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	now := j.now()
	afterID := ""
	expired, failed := 0, 0
	for {
		offers, err := j.svc.FindExpirable(ctx, now, afterID, j.limit)
		if err != nil {
			return fmt.Errorf("查找过期 offer 失败: %w", err)
		}
		for _, o := range offers {
			ok, err := j.svc.Expire(ctx, o)
			if err != nil {
				failed++
				j.logger.Error("offer 过期失败",
					elog.FieldErr(err),
					elog.String("tenant", o.TenantID.String()),
					elog.String("offer", o.ID.String()))
				continue
			}
			if ok {
				expired++
			}
		}
		if len(offers) < j.limit {
			break
		}
		afterID = offers[len(offers)-1].ID.String()
	}
	j.logger.Info("offer 过期扫描完成",
		elog.Int("expired", expired),
		elog.Int("failed", failed))
	return nil
}
