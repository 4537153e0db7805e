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

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./event_key.go -package=cachemocks -destination=./mocks/event_key.mock.go EventKeyCache
type EventKeyCache interface {
	// SetNXEventKey 返回 false 说明这个事件已经处理过
	SetNXEventKey(ctx context.Context, key string) (bool, error)
	DelEventKey(ctx context.Context, key string) (int64, error)
}

type recruitECache struct {
	ec ecache.Cache
}

func NewRecruitECache(ec ecache.Cache) EventKeyCache {
	return &recruitECache{
		ec: &ecache.NamespaceCache{
			Namespace: "recruit:",
			C:         ec,
		},
	}
}

func (c *recruitECache) SetNXEventKey(ctx context.Context, key string) (bool, error) {
	return c.ec.SetNX(ctx, c.eventKey(key), 1, 24*time.Hour)
}

func (c *recruitECache) DelEventKey(ctx context.Context, key string) (int64, error) {
	return c.ec.Delete(ctx, c.eventKey(key))
}

func (c *recruitECache) eventKey(key string) string {
	return "fulfilment:" + key
}
