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

// Package fsm 提供基于转换表的有限状态机。
// 新增一个状态或者动作只需要修改表，而不是到处加 if/switch。
package fsm

import (
	"github.com/ecodeclub/hirebook/internal/pkg/errs"
)

type Status interface {
	~string
}

// Transition 描述一个动作：允许从 From 中的任一状态出发，到达 To
type Transition[S Status] struct {
	From []S
	To   S
}

type key[S Status] struct {
	from   S
	action string
}

type Machine[S Status] struct {
	entity   string
	table    map[key[S]]S
	terminal map[S]struct{}
}

// New 根据 action -> Transition 构建状态机，terminal 为终态集合
func New[S Status](entity string, transitions map[string]Transition[S], terminal ...S) *Machine[S] {
	m := &Machine[S]{
		entity:   entity,
		table:    make(map[key[S]]S, len(transitions)*2),
		terminal: make(map[S]struct{}, len(terminal)),
	}
	for action, t := range transitions {
		for _, from := range t.From {
			m.table[key[S]{from: from, action: action}] = t.To
		}
	}
	for _, s := range terminal {
		m.terminal[s] = struct{}{}
	}
	return m
}

// Next 返回 (当前状态, 动作) 对应的下一状态
func (m *Machine[S]) Next(cur S, action string) (S, error) {
	next, ok := m.table[key[S]{from: cur, action: action}]
	if !ok {
		return cur, errs.NewStateTransitionError(m.entity, action, string(cur))
	}
	return next, nil
}

func (m *Machine[S]) Can(cur S, action string) bool {
	_, ok := m.table[key[S]{from: cur, action: action}]
	return ok
}

func (m *Machine[S]) IsTerminal(s S) bool {
	_, ok := m.terminal[s]
	return ok
}

func (m *Machine[S]) Entity() string {
	return m.entity
}
