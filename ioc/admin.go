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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/applicant"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/ecodeclub/hirebook/internal/recruit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(
	applicantHdl *applicant.AdminHandler,
	reqHdl *recruit.RequisitionAdminHandler,
	appHdl *recruit.ApplicationAdminHandler,
	interviewHdl *recruit.InterviewAdminHandler,
	offerHdl *recruit.OfferAdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type", middleware.TenantHeader},
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
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	res.Use(middleware.NewTenantBuilder().Build())
	applicantHdl.PrivateRoutes(res.Engine)
	reqHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	interviewHdl.PrivateRoutes(res.Engine)
	offerHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有 HR 能访问管理后台
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("role").StringOrDefault("") != "hr" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，不是 HR", elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
