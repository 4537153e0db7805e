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

//go:build wireinject

package recruit

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/applicant"
	"github.com/ecodeclub/hirebook/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/consumer"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/event"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/job"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/service"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var daoSet = wire.NewSet(
	initTablesOnce,
	dao.NewGORMApplicationDAO,
	dao.NewGORMInterviewDAO,
	dao.NewGORMOfferDAO,
)

var serviceSet = wire.NewSet(
	daoSet,
	repository.NewRequisitionRepository,
	repository.NewApplicationRepository,
	repository.NewInterviewRepository,
	repository.NewOfferRepository,
	initSequenceGenerator,
	initRecruitmentEventProducer,
	service.NewRequisitionService,
	service.NewApplicationService,
	service.NewInterviewService,
	service.NewOfferService,
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache, applicantSvc applicant.Service) (*Module, error) {
	wire.Build(
		serviceSet,
		cache.NewRecruitECache,
		web.NewRequisitionHandler,
		web.NewRequisitionAdminHandler,
		web.NewApplicationHandler,
		web.NewApplicationAdminHandler,
		web.NewInterviewAdminHandler,
		web.NewOfferHandler,
		web.NewOfferAdminHandler,
		initFulfilmentConsumer,
		initExpireOffersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initTablesOnce(db *egorm.Component) dao.RequisitionDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		err = sequencenumber.NewGenerator(db).InitTable()
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMRequisitionDAO(db)
}

func initSequenceGenerator(db *egorm.Component) service.SequenceGenerator {
	return sequencenumber.NewGenerator(db)
}

func initRecruitmentEventProducer(q mq.MQ) event.RecruitmentEventProducer {
	p, err := event.NewRecruitmentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initFulfilmentConsumer(svc service.RequisitionService, c cache.EventKeyCache, q mq.MQ) *consumer.FulfilmentConsumer {
	res, err := consumer.NewFulfilmentConsumer(svc, c, q)
	if err != nil {
		panic(err)
	}
	res.Start(context.Background())
	return res
}

func initExpireOffersJob(svc service.OfferService) *job.ExpireOffersJob {
	type Config struct {
		Limit   int           `yaml:"limit"`
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Config{Limit: 100, Timeout: 30 * time.Second}
	const key = "recruit.expireOffers"
	if econf.Get(key) != nil {
		err := econf.UnmarshalKey(key, &cfg)
		if err != nil {
			panic(err)
		}
	}
	return job.NewExpireOffersJob(svc, cfg.Limit, cfg.Timeout)
}
