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

package errs

import (
	"errors"

	pkgerrs "github.com/ecodeclub/hirebook/internal/pkg/errs"
)

var (
	SystemError            = ErrorCode{Code: 530001, Msg: "系统错误"}
	NotFound               = ErrorCode{Code: 530002, Msg: "资源不存在"}
	DuplicateResource      = ErrorCode{Code: 530003, Msg: "资源重复"}
	InvalidRequest         = ErrorCode{Code: 530004, Msg: "请求非法"}
	ConcurrentModification = ErrorCode{Code: 530005, Msg: "数据已被修改，请刷新后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

// FromError 按错误种类找到对应的业务码
func FromError(err error) ErrorCode {
	switch {
	case errors.Is(err, pkgerrs.ErrNotFound):
		return NotFound
	case errors.Is(err, pkgerrs.ErrDuplicateResource):
		return DuplicateResource
	case errors.Is(err, pkgerrs.ErrInvalidRequest):
		return InvalidRequest
	case errors.Is(err, pkgerrs.ErrConcurrentModification):
		return ConcurrentModification
	default:
		return SystemError
	}
}
