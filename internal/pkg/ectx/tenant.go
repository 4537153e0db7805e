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

package ectx

import (
	"context"

	"github.com/google/uuid"
)

type tenantContextType string

var tenantCtxKey tenantContextType = "tenant"

// TenantFromCtx 租户由外部的租户解析层放入 context，这里只负责取出来
func TenantFromCtx(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(tenantCtxKey).(uuid.UUID)
	if !ok || v == uuid.Nil {
		return uuid.Nil, false
	}
	return v, true
}

func CtxWithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantCtxKey, tenantID)
}
