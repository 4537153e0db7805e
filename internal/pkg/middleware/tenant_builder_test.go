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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/hirebook/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantBuilder(t *testing.T) {
	tenantID := uuid.New()
	testCases := []struct {
		name      string
		wantCode  int
		before    func(t *testing.T, ctx *gin.Context)
		afterFunc func(t *testing.T, ctx *gin.Context)
	}{
		{
			name:     "设置了租户",
			wantCode: 200,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/jobs/list", nil)
				ctx.Request.Header.Set(TenantHeader, tenantID.String())
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				res, ok := ectx.TenantFromCtx(ctx.Request.Context())
				require.True(t, ok)
				assert.Equal(t, tenantID, res)
				assert.False(t, ctx.IsAborted())
			},
		},
		{
			name:     "没有设置租户",
			wantCode: 400,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/jobs/list", nil)
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				_, ok := ectx.TenantFromCtx(ctx.Request.Context())
				assert.False(t, ok)
				assert.True(t, ctx.IsAborted())
			},
		},
		{
			name:     "租户不是UUID",
			wantCode: 400,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/jobs/list", nil)
				ctx.Request.Header.Set(TenantHeader, "tenant-a")
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				assert.True(t, ctx.IsAborted())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.before(t, c)
			hdl := NewTenantBuilder().Build()
			hdl(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
			tc.afterFunc(t, c)
		})
	}
}
