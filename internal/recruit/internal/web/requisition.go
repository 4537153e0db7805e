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
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var _ ginx.Handler = &RequisitionHandler{}

// RequisitionHandler 候选人浏览开放的职位
type RequisitionHandler struct {
	svc service.RequisitionService
}

func NewRequisitionHandler(svc service.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{svc: svc}
}

func (h *RequisitionHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs/pub")
	g.POST("/list", ginx.B[Page](h.PubList))
	g.POST("/detail", ginx.B[IDReq](h.PubDetail))
}

func (h *RequisitionHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *RequisitionHandler) PubList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	list, total, err := h.svc.PubList(ctx.Request.Context(), tenantID, req.Offset, normalizeLimit(req.Limit))
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: ginx.DataList[Requisition]{
			List: slice.Map(list, func(_ int, src domain.Requisition) Requisition {
				return newPubRequisition(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *RequisitionHandler) PubDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	r, err := h.svc.PubDetail(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newPubRequisition(r)}, nil
}

// RequisitionAdminHandler HR 管理职位的整个生命周期
type RequisitionAdminHandler struct {
	svc service.RequisitionService
}

func NewRequisitionAdminHandler(svc service.RequisitionService) *RequisitionAdminHandler {
	return &RequisitionAdminHandler{svc: svc}
}

func (h *RequisitionAdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/save", ginx.B[Requisition](h.Save))
	g.POST("/submit", ginx.B[IDReq](h.Submit))
	g.POST("/publish", ginx.B[IDReq](h.Publish))
	g.POST("/close", ginx.B[IDReq](h.Close))
	g.POST("/complete", ginx.B[IDReq](h.Complete))
	g.POST("/cancel", ginx.B[IDReq](h.Cancel))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
	g.POST("/list", ginx.B[ListRequisitionReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
}

// Save 没有 ID 的时候新建草稿
func (h *RequisitionAdminHandler) Save(ctx *ginx.Context, req Requisition) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	r, err := req.toDomain()
	if err != nil {
		return errorResult(ctx, err)
	}
	r.TenantID = tenantID
	created := r.ID == uuid.Nil
	res, err := h.svc.Save(ctx.Request.Context(), r)
	if err != nil {
		return errorResult(ctx, err)
	}
	if created {
		return createdResult(ctx, newRequisition(res))
	}
	return ginx.Result{Data: newRequisition(res)}, nil
}

func (h *RequisitionAdminHandler) Submit(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Submit)
}

func (h *RequisitionAdminHandler) Publish(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Publish)
}

func (h *RequisitionAdminHandler) Close(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Close)
}

func (h *RequisitionAdminHandler) Complete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Complete)
}

func (h *RequisitionAdminHandler) Cancel(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Cancel)
}

func (h *RequisitionAdminHandler) transit(ctx *ginx.Context, req IDReq,
	fn func(ctx context.Context, tenantID, id uuid.UUID) (domain.Requisition, error)) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	r, err := fn(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newRequisition(r)}, nil
}

func (h *RequisitionAdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	if err = h.svc.Delete(ctx.Request.Context(), tenantID, id); err != nil {
		return errorResult(ctx, err)
	}
	return noContentResult(ctx)
}

func (h *RequisitionAdminHandler) List(ctx *ginx.Context, req ListRequisitionReq) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	statuses := slice.Map(req.Statuses, func(_ int, src string) domain.RequisitionStatus {
		return domain.RequisitionStatus(src)
	})
	list, total, err := h.svc.List(ctx.Request.Context(), tenantID, statuses, req.Offset, normalizeLimit(req.Limit))
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: ginx.DataList[Requisition]{
			List: slice.Map(list, func(_ int, src domain.Requisition) Requisition {
				return newRequisition(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *RequisitionAdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	r, err := h.svc.Detail(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newRequisition(r)}, nil
}
