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
	"net/mail"
	"strings"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/google/uuid"
)

// Applicant 候选人档案，只有软状态，不会被物理删除
type Applicant struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Name     string
	// Email 在租户内唯一
	Email     string
	Phone     string
	ResumeURL string

	Education    []Education
	Experience   []Experience
	Skills       []string
	Certificates []string
	Languages    []string

	Blacklisted     bool
	BlacklistReason string
	BlacklistedAt   time.Time

	Version int64
	Ctime   time.Time
	Utime   time.Time
}

type Education struct {
	School    string
	Degree    string
	Major     string
	StartYear int
	EndYear   int
}

type Experience struct {
	Company     string
	Title       string
	Description string
	// 年月，例如 2021-07
	StartMonth string
	EndMonth   string
}

// Normalize 清理输入并校验必填字段
func (a *Applicant) Normalize() error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)
	if a.Name == "" {
		return errs.Invalid("姓名不能为空")
	}
	if a.Email == "" {
		return errs.Invalid("邮箱不能为空")
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return errs.Invalid("邮箱 %s 格式不对", a.Email)
	}
	return nil
}

func (a *Applicant) Blacklist(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.Invalid("拉黑必须填写原因")
	}
	a.Blacklisted = true
	a.BlacklistReason = reason
	a.BlacklistedAt = now
	a.Utime = now
	return nil
}

func (a *Applicant) Unblacklist(now time.Time) {
	a.Blacklisted = false
	a.BlacklistReason = ""
	a.BlacklistedAt = time.Time{}
	a.Utime = now
}

// UpdateProfile 管理员编辑，不会修改拉黑状态
func (a *Applicant) UpdateProfile(src Applicant, now time.Time) error {
	if err := src.Normalize(); err != nil {
		return err
	}
	a.Name = src.Name
	a.Email = src.Email
	a.Phone = src.Phone
	a.ResumeURL = src.ResumeURL
	a.Education = src.Education
	a.Experience = src.Experience
	a.Skills = src.Skills
	a.Certificates = src.Certificates
	a.Languages = src.Languages
	a.Utime = now
	return nil
}
