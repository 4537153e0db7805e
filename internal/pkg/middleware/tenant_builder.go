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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
)

const TenantHeader = "X-Tenant-ID"

// TenantBuilder 从请求头中解析租户，所有招聘接口都按租户隔离
type TenantBuilder struct {
	logger *elog.Component
}

func NewTenantBuilder() *TenantBuilder {
	return &TenantBuilder{logger: elog.DefaultLogger}
}

func (b *TenantBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		val := ctx.GetHeader(TenantHeader)
		if val == "" {
			gctx.AbortWithStatus(http.StatusBadRequest)
			b.logger.Warn("缺少租户信息", elog.String("path", ctx.Request.URL.Path))
			return
		}
		tenantID, err := uuid.Parse(val)
		if err != nil || tenantID == uuid.Nil {
			gctx.AbortWithStatus(http.StatusBadRequest)
			b.logger.Warn("租户信息非法", elog.String("tenant", val), elog.FieldErr(err))
			return
		}
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithTenant(ctx.Request.Context(), tenantID))
	}
}
