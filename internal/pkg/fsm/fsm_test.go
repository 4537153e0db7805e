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

package fsm

import (
	"errors"
	"testing"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type light string

const (
	red    light = "RED"
	green  light = "GREEN"
	yellow light = "YELLOW"
	broken light = "BROKEN"
)

func newLight() *Machine[light] {
	return New[light]("Light", map[string]Transition[light]{
		"go":    {From: []light{red}, To: green},
		"slow":  {From: []light{green}, To: yellow},
		"stop":  {From: []light{yellow}, To: red},
		"smash": {From: []light{red, green, yellow}, To: broken},
	}, broken)
}

func TestMachine_Next(t *testing.T) {
	m := newLight()
	testCases := []struct {
		name     string
		cur      light
		action   string
		wantNext light
		wantErr  bool
	}{
		{name: "合法流转", cur: red, action: "go", wantNext: green},
		{name: "多来源", cur: yellow, action: "smash", wantNext: broken},
		{name: "非法流转保持原状态", cur: green, action: "go", wantNext: green, wantErr: true},
		{name: "终态不可流转", cur: broken, action: "smash", wantNext: broken, wantErr: true},
		{name: "未知动作", cur: red, action: "fly", wantNext: red, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := m.Next(tc.cur, tc.action)
			assert.Equal(t, tc.wantNext, next)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errs.ErrStateTransition)
			var ste *errs.StateTransitionError
			require.True(t, errors.As(err, &ste))
			assert.Equal(t, "Light", ste.Entity)
			assert.Equal(t, tc.action, ste.Action)
			assert.Equal(t, string(tc.cur), ste.Status)
		})
	}
}

func TestMachine_Terminal(t *testing.T) {
	m := newLight()
	assert.True(t, m.IsTerminal(broken))
	assert.False(t, m.IsTerminal(red))
	assert.True(t, m.Can(red, "go"))
	assert.False(t, m.Can(broken, "go"))
}
