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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var _ ginx.Handler = &OfferHandler{}

// OfferHandler 候选人答复 offer，需要登录
type OfferHandler struct {
	svc service.OfferService
}

func NewOfferHandler(svc service.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) PublicRoutes(_ *gin.Engine) {}

func (h *OfferHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/offers")
	g.POST("/accept", ginx.B[IDReq](h.Accept))
	g.POST("/decline", ginx.B[DeclineOfferReq](h.Decline))
	g.POST("/negotiate", ginx.B[NegotiateOfferReq](h.Negotiate))
}

func (h *OfferHandler) Accept(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, h.svc.Accept)
}

func (h *OfferHandler) Decline(ctx *ginx.Context, req DeclineOfferReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, func(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
		return h.svc.Decline(ctx, tenantID, id, req.Reason)
	})
}

func (h *OfferHandler) Negotiate(ctx *ginx.Context, req NegotiateOfferReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, func(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
		return h.svc.Negotiate(ctx, tenantID, id, req.Notes)
	})
}

// OfferAdminHandler HR 起草、审批和发出 offer
type OfferAdminHandler struct {
	svc service.OfferService
}

func NewOfferAdminHandler(svc service.OfferService) *OfferAdminHandler {
	return &OfferAdminHandler{svc: svc}
}

func (h *OfferAdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/offers")
	g.POST("/create", ginx.B[CreateOfferReq](h.Create))
	g.POST("/submit", ginx.B[IDReq](h.SubmitForApproval))
	g.POST("/approve", ginx.B[ApproveOfferReq](h.Approve))
	g.POST("/send", ginx.B[IDReq](h.Send))
	g.POST("/cancel", ginx.B[IDReq](h.Cancel))
	g.POST("/revise", ginx.B[ReviseOfferReq](h.Revise))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
}

func (h *OfferAdminHandler) Create(ctx *ginx.Context, req CreateOfferReq) (ginx.Result, error) {
	tenantID, appID, err := tenantAndID(ctx, req.ApplicationID)
	if err != nil {
		return errorResult(ctx, err)
	}
	terms, err := req.Terms.toDomain()
	if err != nil {
		return errorResult(ctx, err)
	}
	o, err := h.svc.Create(ctx.Request.Context(), tenantID, appID, terms, fromMillis(req.ExpiresAt))
	if err != nil {
		return errorResult(ctx, err)
	}
	return createdResult(ctx, newOffer(o))
}

func (h *OfferAdminHandler) SubmitForApproval(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, h.svc.SubmitForApproval)
}

func (h *OfferAdminHandler) Approve(ctx *ginx.Context, req ApproveOfferReq) (ginx.Result, error) {
	approverID, err := parseID(req.ApproverID)
	if err != nil {
		return errorResult(ctx, err)
	}
	return offerAction(ctx, req.ID, func(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
		return h.svc.Approve(ctx, tenantID, id, approverID)
	})
}

func (h *OfferAdminHandler) Send(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, h.svc.Send)
}

func (h *OfferAdminHandler) Cancel(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, h.svc.Cancel)
}

func (h *OfferAdminHandler) Revise(ctx *ginx.Context, req ReviseOfferReq) (ginx.Result, error) {
	terms, err := req.Terms.toDomain()
	if err != nil {
		return errorResult(ctx, err)
	}
	return offerAction(ctx, req.ID, func(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error) {
		return h.svc.Revise(ctx, tenantID, id, terms)
	})
}

func (h *OfferAdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return offerAction(ctx, req.ID, h.svc.Detail)
}

func offerAction(ctx *ginx.Context, rawID string,
	fn func(ctx context.Context, tenantID, id uuid.UUID) (domain.Offer, error)) (ginx.Result, error) {
	tenantID, id, err := tenantAndID(ctx, rawID)
	if err != nil {
		return errorResult(ctx, err)
	}
	o, err := fn(ctx.Request.Context(), tenantID, id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}
