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

package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/pkg/ectx"
	pkgerrs "github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/errs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// errorResult 业务错误直接按种类写出 4xx，其余的交给 ginx 记录日志并返回 500
func errorResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	status := pkgerrs.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		return systemErrorResult, err
	}
	ctx.JSON(status, ginx.Result{
		Code: errs.FromError(err).Code,
		Msg:  err.Error(),
	})
	return ginx.Result{}, ginx.ErrNoResponse
}

func createdResult(ctx *ginx.Context, data any) (ginx.Result, error) {
	ctx.JSON(http.StatusCreated, ginx.Result{Msg: "OK", Data: data})
	return ginx.Result{}, ginx.ErrNoResponse
}

func noContentResult(ctx *ginx.Context) (ginx.Result, error) {
	ctx.Status(http.StatusNoContent)
	return ginx.Result{}, ginx.ErrNoResponse
}

func tenantOf(ctx *ginx.Context) (uuid.UUID, error) {
	tenantID, ok := ectx.TenantFromCtx(ctx.Request.Context())
	if !ok {
		return uuid.Nil, pkgerrs.Invalid("缺少租户信息")
	}
	return tenantID, nil
}

// tenantAndID 几乎所有接口都要先解析这两个
func tenantAndID(ctx *ginx.Context, id string) (uuid.UUID, uuid.UUID, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	res, err := parseID(id)
	return tenantID, res, err
}

func parseID(id string) (uuid.UUID, error) {
	res, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, pkgerrs.Invalid("id %q 不是合法的 UUID", id)
	}
	return res, nil
}

// parseOptionalID 空字符串表示没有
func parseOptionalID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, nil
	}
	return parseID(id)
}

func parseDecimal(field, val string) (decimal.Decimal, error) {
	if strings.TrimSpace(val) == "" {
		return decimal.Zero, nil
	}
	res, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, pkgerrs.Invalid("%s %q 不是合法的数字", field, val)
	}
	return res, nil
}

func parseDate(field, val string) (time.Time, error) {
	if strings.TrimSpace(val) == "" {
		return time.Time{}, nil
	}
	res, err := time.ParseInLocation(domain.DateLayout, val, time.Local)
	if err != nil {
		return time.Time{}, pkgerrs.Invalid("%s %q 不是合法的日期", field, val)
	}
	return res, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func formatID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > maxLimit {
		return defaultLimit
	}
	return limit
}
