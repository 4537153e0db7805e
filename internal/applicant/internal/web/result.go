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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/errs"
	"github.com/ecodeclub/hirebook/internal/pkg/ectx"
	pkgerrs "github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/google/uuid"
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

func tenantOf(ctx *ginx.Context) (uuid.UUID, error) {
	tenantID, ok := ectx.TenantFromCtx(ctx.Request.Context())
	if !ok {
		return uuid.Nil, pkgerrs.Invalid("缺少租户信息")
	}
	return tenantID, nil
}

func parseID(id string) (uuid.UUID, error) {
	res, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, pkgerrs.Invalid("id %q 不是合法的 UUID", id)
	}
	return res, nil
}
