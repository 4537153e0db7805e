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
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &ApplicationHandler{}

// ApplicationHandler 候选人投递和撤回申请
type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/applications/submit", ginx.B[SubmitApplicationReq](h.Submit))
}

func (h *ApplicationHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/applications/withdraw", ginx.B[IDReq](h.Withdraw))
}

func (h *ApplicationHandler) Submit(ctx *ginx.Context, req SubmitApplicationReq) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	reqID, err := parseID(req.RequisitionID)
	if err != nil {
		return errorResult(ctx, err)
	}
	applicantID, err := parseID(req.ApplicantID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.Submit(ctx.Request.Context(), domain.Application{
		TenantID:      tenantID,
		RequisitionID: reqID,
		ApplicantID:   applicantID,
		CoverLetter:   req.CoverLetter,
		ResumeURL:     req.ResumeURL,
		Source:        req.Source,
	})
	if err != nil {
		return errorResult(ctx, err)
	}
	return createdResult(ctx, newApplication(app))
}

func (h *ApplicationHandler) Withdraw(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.Withdraw(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

// ApplicationAdminHandler HR 推进申请
type ApplicationAdminHandler struct {
	svc service.ApplicationService
}

func NewApplicationAdminHandler(svc service.ApplicationService) *ApplicationAdminHandler {
	return &ApplicationAdminHandler{svc: svc}
}

func (h *ApplicationAdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/screen", ginx.B[ScreenReq](h.Screen))
	g.POST("/start-interview", ginx.B[IDReq](h.StartInterview))
	g.POST("/reject", ginx.B[RejectReq](h.Reject))
	g.POST("/stage", ginx.B[StageReq](h.MoveStage))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListApplicationReq](h.List))
}

func (h *ApplicationAdminHandler) Screen(ctx *ginx.Context, req ScreenReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	score, err := parseDecimal("score", req.Score)
	if err != nil {
		return errorResult(ctx, err)
	}
	screenerID, err := parseOptionalID(req.ScreenerID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.Screen(ctx.Request.Context(), tenantID, id, domain.Screening{
		Score:      score,
		Notes:      req.Notes,
		ScreenerID: screenerID,
	}, req.Passed)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationAdminHandler) StartInterview(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.StartInterview(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationAdminHandler) Reject(ctx *ginx.Context, req RejectReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.Reject(ctx.Request.Context(), tenantID, id, req.Reason)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationAdminHandler) MoveStage(ctx *ginx.Context, req StageReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.MoveStage(ctx.Request.Context(), tenantID, id, req.Stage, req.Order)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationAdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	app, err := h.svc.Detail(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationAdminHandler) List(ctx *ginx.Context, req ListApplicationReq) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	var filter domain.ApplicationFilter
	if filter.RequisitionID, err = parseOptionalID(req.RequisitionID); err != nil {
		return errorResult(ctx, err)
	}
	if filter.ApplicantID, err = parseOptionalID(req.ApplicantID); err != nil {
		return errorResult(ctx, err)
	}
	filter.Status = domain.ApplicationStatus(req.Status)
	list, total, err := h.svc.List(ctx.Request.Context(), tenantID, filter, req.Offset, normalizeLimit(req.Limit))
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: ginx.DataList[Application]{
			List: slice.Map(list, func(_ int, src domain.Application) Application {
				return newApplication(src)
			}),
			Total: int(total),
		},
	}, nil
}
