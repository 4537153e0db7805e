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

package web

type Applicant struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	ResumeURL    string       `json:"resumeURL,omitempty"`
	Education    []Education  `json:"education,omitempty"`
	Experience   []Experience `json:"experience,omitempty"`
	Skills       []string     `json:"skills,omitempty"`
	Certificates []string     `json:"certificates,omitempty"`
	Languages    []string     `json:"languages,omitempty"`

	// 以下字段只在管理后台返回
	Blacklisted     bool   `json:"blacklisted,omitempty"`
	BlacklistReason string `json:"blacklistReason,omitempty"`
	BlacklistedAt   int64  `json:"blacklistedAt,omitempty"`
	Utime           int64  `json:"utime,omitempty"`
}

type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Major     string `json:"major"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
}

type Experience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartMonth  string `json:"startMonth"`
	EndMonth    string `json:"endMonth"`
}

type IDReq struct {
	ID string `json:"id"`
}

type BlacklistReq struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}
