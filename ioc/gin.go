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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/applicant"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/ecodeclub/hirebook/internal/recruit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	applicantHdl *applicant.Handler,
	reqHdl *recruit.RequisitionHandler,
	appHdl *recruit.ApplicationHandler,
	offerHdl *recruit.OfferHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.TenantHeader},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "hirebook.io")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(middleware.NewMetricsBuilder("web").Build())
	// 所有招聘接口都要带租户
	res.Use(middleware.NewTenantBuilder().Build())
	applicantHdl.PublicRoutes(res.Engine)
	reqHdl.PublicRoutes(res.Engine)
	appHdl.PublicRoutes(res.Engine)
	offerHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	appHdl.PrivateRoutes(res.Engine)
	offerHdl.PrivateRoutes(res.Engine)
	return res
}
