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
	"strings"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMaxScore = 5

	// 和表结构里的 decimal(18,6) 保持一致
	scoreScale     = 6
	scoreIntDigits = 12
)

var (
	DefaultWeight = decimal.NewFromInt(1)
	hundred       = decimal.NewFromInt(100)
	scoreLimit    = decimal.New(1, scoreIntDigits)

	// ErrNoScores 没有任何评分的时候平均分没有意义，不能当成 0
	ErrNoScores = errs.Invalid("面试还没有任何评分")
)

// InterviewScore 某个面试官对某一项考察点的打分
type InterviewScore struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	InterviewID   uuid.UUID
	InterviewerID uuid.UUID
	Criterion     string
	Score         int
	MaxScore      int
	Weight        decimal.Decimal
	Comment       string
	Ctime         time.Time
	Utime         time.Time
}

// Normalize 填充默认值并校验
func (s *InterviewScore) Normalize() error {
	s.Criterion = strings.TrimSpace(s.Criterion)
	if s.Criterion == "" {
		return errs.Invalid("考察点不能为空")
	}
	if s.InterviewerID == uuid.Nil {
		return errs.Invalid("面试官不能为空")
	}
	if s.MaxScore == 0 {
		s.MaxScore = DefaultMaxScore
	}
	if s.Weight.IsZero() {
		s.Weight = DefaultWeight
	}
	if s.MaxScore < 0 {
		return errs.Invalid("满分必须大于 0，当前 %d", s.MaxScore)
	}
	if s.Score < 0 || s.Score > s.MaxScore {
		return errs.Invalid("分数 %d 超出范围 [0, %d]", s.Score, s.MaxScore)
	}
	if !s.Weight.IsPositive() {
		return errs.Invalid("权重必须大于 0，当前 %s", s.Weight)
	}
	return checkStorable("权重", s.Weight)
}

// checkStorable 小数位或者整数位超出存储精度的直接拒绝，不做静默舍入
func checkStorable(field string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(scoreScale)) {
		return errs.Invalid("%s 最多 %d 位小数，当前 %s", field, scoreScale, d)
	}
	if d.Abs().GreaterThanOrEqual(scoreLimit) {
		return errs.Invalid("%s 超出范围，当前 %s", field, d)
	}
	return nil
}

// Weighted 折算到百分制之后乘以权重
func (s InterviewScore) Weighted() decimal.Decimal {
	return decimal.NewFromInt(int64(s.Score)).
		Mul(s.Weight).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(s.MaxScore)))
}

// AverageScore 所有评分加权分的算术平均
func AverageScore(scores []InterviewScore) (decimal.Decimal, error) {
	if len(scores) == 0 {
		return decimal.Zero, ErrNoScores
	}
	sum := decimal.Zero
	for _, s := range scores {
		sum = sum.Add(s.Weighted())
	}
	return sum.Div(decimal.NewFromInt(int64(len(scores)))), nil
}
