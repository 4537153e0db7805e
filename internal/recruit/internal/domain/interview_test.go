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

package domain

import (
	"testing"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterview_Lifecycle(t *testing.T) {
	now := time.Now()
	i := Interview{Round: 1, Status: InterviewStatusScheduling}
	require.NoError(t, i.ScheduleAt(Schedule{StartAt: now.Add(time.Hour), DurationMinutes: 60}, now))
	assert.Equal(t, InterviewStatusScheduled, i.Status)

	// 没开始的面试不能结束
	_, err := i.Complete("PASS", decimal.NullDecimal{}, "", now)
	assert.ErrorIs(t, err, errs.ErrStateTransition)
	assert.Equal(t, InterviewStatusScheduled, i.Status)

	require.NoError(t, i.Start(now))
	assert.Equal(t, now, i.StartedAt)
	verdict, err := i.Complete("pass", decimal.NewNullDecimal(decimal.NewFromInt(88)), "表现不错", now)
	require.NoError(t, err)
	assert.Equal(t, VerdictPass, verdict)
	assert.Equal(t, InterviewStatusCompleted, i.Status)
	assert.Equal(t, "pass", i.Result)
	assert.Equal(t, now, i.EndedAt)
	assert.True(t, i.IsTerminal())
}

func TestInterview_Transitions(t *testing.T) {
	now := time.Now()
	sched := Schedule{StartAt: now.Add(time.Hour)}
	testCases := []struct {
		name    string
		status  InterviewStatus
		action  func(i *Interview) error
		want    InterviewStatus
		wantErr error
	}{
		{
			name:   "改期",
			status: InterviewStatusScheduled,
			action: func(i *Interview) error { return i.Postpone(now) },
			want:   InterviewStatusPostponed,
		},
		{
			name:   "改期后重新安排",
			status: InterviewStatusPostponed,
			action: func(i *Interview) error { return i.Reschedule(sched, now) },
			want:   InterviewStatusScheduled,
		},
		{
			name:   "改期后取消",
			status: InterviewStatusPostponed,
			action: func(i *Interview) error { return i.Cancel(now) },
			want:   InterviewStatusCancelled,
		},
		{
			name:   "缺席",
			status: InterviewStatusScheduled,
			action: func(i *Interview) error { return i.MarkNoShow(now) },
			want:   InterviewStatusNoShow,
		},
		{
			name:    "进行中不能取消",
			status:  InterviewStatusInProgress,
			action:  func(i *Interview) error { return i.Cancel(now) },
			want:    InterviewStatusInProgress,
			wantErr: errs.ErrStateTransition,
		},
		{
			name:    "未安排不能开始",
			status:  InterviewStatusScheduling,
			action:  func(i *Interview) error { return i.Start(now) },
			want:    InterviewStatusScheduling,
			wantErr: errs.ErrStateTransition,
		},
		{
			name:    "安排时间为空",
			status:  InterviewStatusScheduling,
			action:  func(i *Interview) error { return i.ScheduleAt(Schedule{}, now) },
			want:    InterviewStatusScheduling,
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "已安排不能重复安排",
			status:  InterviewStatusScheduled,
			action:  func(i *Interview) error { return i.ScheduleAt(sched, now) },
			want:    InterviewStatusScheduled,
			wantErr: errs.ErrStateTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i := Interview{Status: tc.status}
			err := tc.action(&i)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, i.Status)
		})
	}
}

func TestInterview_CompleteVerdict(t *testing.T) {
	testCases := []struct {
		result  string
		want    Verdict
		wantErr error
	}{
		{result: "PASS", want: VerdictPass},
		{result: " Fail ", want: VerdictFail},
		{result: "NEXT_ROUND", want: VerdictNone},
		{result: "", wantErr: errs.ErrInvalidRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.result, func(t *testing.T) {
			i := Interview{Status: InterviewStatusInProgress}
			v, err := i.Complete(tc.result, decimal.NullDecimal{}, "", time.Now())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestInterviewScore_Normalize(t *testing.T) {
	interviewer := uuid.New()
	testCases := []struct {
		name       string
		score      InterviewScore
		wantErr    error
		wantMax    int
		wantWeight decimal.Decimal
	}{
		{
			name:       "默认值",
			score:      InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 4},
			wantMax:    5,
			wantWeight: decimal.NewFromInt(1),
		},
		{
			name: "自定义满分和权重",
			score: InterviewScore{InterviewerID: interviewer, Criterion: "沟通", Score: 8,
				MaxScore: 10, Weight: decimal.RequireFromString("1.5")},
			wantMax:    10,
			wantWeight: decimal.RequireFromString("1.5"),
		},
		{
			name:    "超过满分",
			score:   InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 6},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "负分",
			score:   InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: -1},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "满分为负",
			score:   InterviewScore{InterviewerID: interviewer, Criterion: "编码", MaxScore: -5},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "权重为负",
			score: InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 1,
				Weight: decimal.NewFromInt(-1)},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "缺少考察点",
			score:   InterviewScore{InterviewerID: interviewer, Score: 1},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "权重六位小数",
			score: InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 1,
				Weight: decimal.RequireFromString("0.333333")},
			wantMax:    5,
			wantWeight: decimal.RequireFromString("0.333333"),
		},
		{
			name: "权重末尾多余的零",
			score: InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 1,
				Weight: decimal.RequireFromString("0.50000000")},
			wantMax:    5,
			wantWeight: decimal.RequireFromString("0.5"),
		},
		{
			name: "权重小数位过多",
			score: InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 1,
				Weight: decimal.RequireFromString("0.3333333")},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "权重过大",
			score: InterviewScore{InterviewerID: interviewer, Criterion: "编码", Score: 1,
				Weight: decimal.RequireFromString("1000000000000")},
			wantErr: errs.ErrInvalidRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.score
			err := s.Normalize()
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantMax, s.MaxScore)
			assert.True(t, tc.wantWeight.Equal(s.Weight))
		})
	}
}

func TestInterview_Scorable(t *testing.T) {
	assert.True(t, Interview{Status: InterviewStatusInProgress}.Scorable())
	for _, st := range []InterviewStatus{
		InterviewStatusScheduling, InterviewStatusScheduled,
		InterviewStatusCompleted, InterviewStatusCancelled,
	} {
		assert.False(t, Interview{Status: st}.Scorable(), st)
	}
}

func TestInterview_CompleteScoreOutOfRange(t *testing.T) {
	testCases := []struct {
		name    string
		score   string
		wantErr error
	}{
		{name: "六位小数", score: "87.654321"},
		{name: "小数位过多", score: "87.6543219", wantErr: errs.ErrInvalidRequest},
		{name: "整数位过多", score: "1000000000000", wantErr: errs.ErrInvalidRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i := Interview{Status: InterviewStatusInProgress}
			score := decimal.NewNullDecimal(decimal.RequireFromString(tc.score))
			_, err := i.Complete("PASS", score, "", time.Now())
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				assert.Equal(t, InterviewStatusInProgress, i.Status)
			}
		})
	}
}

func TestAverageScore(t *testing.T) {
	scores := []InterviewScore{
		{Score: 4, MaxScore: 5, Weight: decimal.NewFromInt(1)},
		{Score: 5, MaxScore: 5, Weight: decimal.NewFromInt(2)},
		{Score: 3, MaxScore: 5, Weight: decimal.NewFromInt(1)},
	}
	assert.True(t, decimal.NewFromInt(80).Equal(scores[0].Weighted()))
	assert.True(t, decimal.NewFromInt(200).Equal(scores[1].Weighted()))
	assert.True(t, decimal.NewFromInt(60).Equal(scores[2].Weighted()))

	avg, err := AverageScore(scores)
	require.NoError(t, err)
	want := decimal.NewFromInt(80 + 200 + 60).Div(decimal.NewFromInt(3))
	assert.True(t, want.Equal(avg), "want %s, got %s", want, avg)

	_, err = AverageScore(nil)
	assert.ErrorIs(t, err, ErrNoScores)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
