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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/domain"
	"github.com/ecodeclub/hirebook/internal/applicant/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人自助投递，不需要登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/applicants/submit", ginx.B[Applicant](h.Submit))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Submit(ctx *ginx.Context, req Applicant) (ginx.Result, error) {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	a := toDomain(req)
	a.TenantID = tenantID
	res, err := h.svc.Submit(ctx.Request.Context(), a)
	if err != nil {
		return errorResult(ctx, err)
	}
	return createdResult(ctx, res.ID.String())
}

func toDomain(req Applicant) domain.Applicant {
	return domain.Applicant{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeURL: req.ResumeURL,
		Education: slice.Map(req.Education, func(_ int, src Education) domain.Education {
			return domain.Education(src)
		}),
		Experience: slice.Map(req.Experience, func(_ int, src Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Skills:       req.Skills,
		Certificates: req.Certificates,
		Languages:    req.Languages,
	}
}

func toVO(a domain.Applicant) Applicant {
	return Applicant{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		ResumeURL: a.ResumeURL,
		Education: slice.Map(a.Education, func(_ int, src domain.Education) Education {
			return Education(src)
		}),
		Experience: slice.Map(a.Experience, func(_ int, src domain.Experience) Experience {
			return Experience(src)
		}),
		Skills:          a.Skills,
		Certificates:    a.Certificates,
		Languages:       a.Languages,
		Blacklisted:     a.Blacklisted,
		BlacklistReason: a.BlacklistReason,
		BlacklistedAt:   toMillis(a.BlacklistedAt),
		Utime:           toMillis(a.Utime),
	}
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
