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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InterviewAdminHandler struct {
	svc service.InterviewService
}

func NewInterviewAdminHandler(svc service.InterviewService) *InterviewAdminHandler {
	return &InterviewAdminHandler{svc: svc}
}

func (h *InterviewAdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interviews")
	g.POST("/create", ginx.B[Interview](h.Create))
	g.POST("/schedule", ginx.B[ScheduleReq](h.Schedule))
	g.POST("/reschedule", ginx.B[ScheduleReq](h.Reschedule))
	g.POST("/start", ginx.B[IDReq](h.Start))
	g.POST("/complete", ginx.B[CompleteInterviewReq](h.Complete))
	g.POST("/cancel", ginx.B[IDReq](h.Cancel))
	g.POST("/postpone", ginx.B[IDReq](h.Postpone))
	g.POST("/no-show", ginx.B[IDReq](h.MarkNoShow))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListInterviewReq](h.List))

	sg := g.Group("/scores")
	sg.POST("/save", ginx.B[InterviewScore](h.SaveScore))
	sg.POST("/list", ginx.B[InterviewIDReq](h.ListScores))
	sg.POST("/average", ginx.B[InterviewIDReq](h.AverageScore))
}

func (h *InterviewAdminHandler) Create(ctx *ginx.Context, req Interview) (ginx.Result, error) {
	tenantID, appID, err := tenantAndID(ctx, req.ApplicationID)
	if err != nil {
		return errorResult(ctx, err)
	}
	i, err := h.svc.Create(ctx.Request.Context(), domain.Interview{
		TenantID:      tenantID,
		ApplicationID: appID,
		Round:         req.Round,
		Type:          req.Type,
		Interviewers:  req.Interviewers,
		Schedule: domain.Schedule{
			StartAt:         fromMillis(req.StartAt),
			DurationMinutes: req.DurationMinutes,
			Location:        req.Location,
			MeetingLink:     req.MeetingLink,
		},
	})
	if err != nil {
		return errorResult(ctx, err)
	}
	return createdResult(ctx, newInterview(i))
}

func (h *InterviewAdminHandler) Schedule(ctx *ginx.Context, req ScheduleReq) (ginx.Result, error) {
	return h.schedule(ctx, req, h.svc.Schedule)
}

func (h *InterviewAdminHandler) Reschedule(ctx *ginx.Context, req ScheduleReq) (ginx.Result, error) {
	return h.schedule(ctx, req, h.svc.Reschedule)
}

func (h *InterviewAdminHandler) schedule(ctx *ginx.Context, req ScheduleReq,
	fn func(ctx context.Context, tenantID, id uuid.UUID, s domain.Schedule) (domain.Interview, error)) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	i, err := fn(ctx.Request.Context(), tenantID, id, req.toDomain())
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newInterview(i)}, nil
}

func (h *InterviewAdminHandler) Start(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Start)
}

func (h *InterviewAdminHandler) Cancel(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Cancel)
}

func (h *InterviewAdminHandler) Postpone(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Postpone)
}

func (h *InterviewAdminHandler) MarkNoShow(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.MarkNoShow)
}

func (h *InterviewAdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.transit(ctx, req, h.svc.Detail)
}

func (h *InterviewAdminHandler) transit(ctx *ginx.Context, req IDReq,
	fn func(ctx context.Context, tenantID, id uuid.UUID) (domain.Interview, error)) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	i, err := fn(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newInterview(i)}, nil
}

func (h *InterviewAdminHandler) Complete(ctx *ginx.Context, req CompleteInterviewReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.ID)
	if err != nil {
		return errorResult(ctx, err)
	}
	var score decimal.NullDecimal
	if strings.TrimSpace(req.Score) != "" {
		val, err := parseDecimal("score", req.Score)
		if err != nil {
			return errorResult(ctx, err)
		}
		score = decimal.NewNullDecimal(val)
	}
	i, err := h.svc.Complete(ctx.Request.Context(), tenantID, id, req.Result, score, req.Notes)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newInterview(i)}, nil
}

func (h *InterviewAdminHandler) List(ctx *ginx.Context, req ListInterviewReq) (ginx.Result, error) {
	tenantID, appID, err := tenantAndID(ctx, req.ApplicationID)
	if err != nil {
		return errorResult(ctx, err)
	}
	list, err := h.svc.ListByApplication(ctx.Request.Context(), tenantID, appID)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: ginx.DataList[Interview]{
			List:  newInterviews(list),
			Total: len(list),
		},
	}, nil
}

func (h *InterviewAdminHandler) SaveScore(ctx *ginx.Context, req InterviewScore) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	s, err := req.toDomain()
	if err != nil {
		return errorResult(ctx, err)
	}
	s.TenantID = tenantID
	res, err := h.svc.SaveScore(ctx.Request.Context(), s)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newInterviewScore(res)}, nil
}

func (h *InterviewAdminHandler) ListScores(ctx *ginx.Context, req InterviewIDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.InterviewID)
	if err != nil {
		return errorResult(ctx, err)
	}
	list, err := h.svc.ListScores(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: ginx.DataList[InterviewScore]{
			List: slice.Map(list, func(_ int, src domain.InterviewScore) InterviewScore {
				return newInterviewScore(src)
			}),
			Total: len(list),
		},
	}, nil
}

func (h *InterviewAdminHandler) AverageScore(ctx *ginx.Context, req InterviewIDReq) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, req.InterviewID)
	if err != nil {
		return errorResult(ctx, err)
	}
	avg, err := h.svc.AverageScore(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newAverageScore(id, avg)}, nil
}
