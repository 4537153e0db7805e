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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/domain"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler HR 维护候选人档案和黑名单
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applicants")
	g.POST("/update", ginx.B[Applicant](h.Update))
	g.POST("/blacklist", ginx.B[BlacklistReq](h.Blacklist))
	g.POST("/unblacklist", ginx.B[IDReq](h.Unblacklist))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
}

func (h *AdminHandler) Update(ctx *ginx.Context, req Applicant) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	a := toDomain(req)
	a.ID, a.TenantID = id, tenantID
	if err = h.svc.Update(ctx.Request.Context(), a); err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Blacklist(ctx *ginx.Context, req BlacklistReq) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	if err = h.svc.Blacklist(ctx.Request.Context(), tenantID, id, req.Reason); err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Unblacklist(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	if err = h.svc.Unblacklist(ctx.Request.Context(), tenantID, id); err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	a, err := h.svc.Detail(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: toVO(a)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	list, total, err := h.svc.List(ctx.Request.Context(), tenantID, req.Offset, req.Limit)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: ginx.DataList[Applicant]{
			List: slice.Map(list, func(_ int, src domain.Applicant) Applicant {
				return toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}
