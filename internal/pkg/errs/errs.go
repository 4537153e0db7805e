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

// Package errs 定义招聘核心各模块共享的错误种类。
// 业务层一律用 fmt.Errorf("%w") 包装这里的哨兵错误，web 层据此映射 HTTP 状态码。
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound               = errors.New("资源不存在")
	ErrDuplicateResource      = errors.New("资源重复")
	ErrStateTransition        = errors.New("状态流转非法")
	ErrInvalidRequest         = errors.New("请求非法")
	ErrConcurrentModification = errors.New("记录已被并发修改")
)

// StateTransitionError 在当前状态下不允许执行某个动作
type StateTransitionError struct {
	Entity string
	Action string
	Status string
}

func NewStateTransitionError(entity, action, status string) *StateTransitionError {
	return &StateTransitionError{Entity: entity, Action: action, Status: status}
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: 无法在状态 %s 下执行 %s", e.Entity, e.Status, e.Action)
}

func (e *StateTransitionError) Is(target error) bool {
	return target == ErrStateTransition
}

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func Duplicate(format string, args ...any) error {
	return wrap(ErrDuplicateResource, format, args...)
}

func Invalid(format string, args ...any) error {
	return wrap(ErrInvalidRequest, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// HTTPStatus 把错误种类映射为 HTTP 状态码，未识别的错误一律视为系统错误
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateResource),
		errors.Is(err, ErrStateTransition),
		errors.Is(err, ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
