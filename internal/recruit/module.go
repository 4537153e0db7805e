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

package recruit

import (
	"github.com/ecodeclub/hirebook/internal/recruit/internal/consumer"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/job"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/web"
)

type (
	RequisitionHandler      = web.RequisitionHandler
	RequisitionAdminHandler = web.RequisitionAdminHandler
	ApplicationHandler      = web.ApplicationHandler
	ApplicationAdminHandler = web.ApplicationAdminHandler
	InterviewAdminHandler   = web.InterviewAdminHandler
	OfferHandler            = web.OfferHandler
	OfferAdminHandler       = web.OfferAdminHandler

	RequisitionService = service.RequisitionService
	ApplicationService = service.ApplicationService
	InterviewService   = service.InterviewService
	OfferService       = service.OfferService

	ExpireOffersJob = job.ExpireOffersJob

	Requisition = domain.Requisition
	Application = domain.Application
	Interview   = domain.Interview
	Offer       = domain.Offer
)

// RecruitmentTopic 申请状态变更事件的 topic
const RecruitmentTopic = event.RecruitmentEventName

type Module struct {
	RequisitionSvc RequisitionService
	ApplicationSvc ApplicationService
	InterviewSvc   InterviewService
	OfferSvc       OfferService

	RequisitionHdl      *RequisitionHandler
	RequisitionAdminHdl *RequisitionAdminHandler
	ApplicationHdl      *ApplicationHandler
	ApplicationAdminHdl *ApplicationAdminHandler
	InterviewAdminHdl   *InterviewAdminHandler
	OfferHdl            *OfferHandler
	OfferAdminHdl       *OfferAdminHandler

	ExpireOffersJob *ExpireOffersJob
	c               *consumer.FulfilmentConsumer
}
