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

// 金额和分数一律用字符串，避免精度丢失；时间是毫秒时间戳，日期是 YYYY-MM-DD

type IDReq struct {
	ID string `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Requisition struct {
	ID           string `json:"id,omitempty"`
	Code         string `json:"code,omitempty"`
	Title        string `json:"title,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	PositionID   string `json:"positionId,omitempty"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	SalaryMin    string `json:"salaryMin,omitempty"`
	SalaryMax    string `json:"salaryMax,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Headcount    int    `json:"headcount,omitempty"`
	Status       string `json:"status,omitempty"`
	OpenDate     string `json:"openDate,omitempty"`
	CloseDate    string `json:"closeDate,omitempty"`

	ApplicationCount int64 `json:"applicationCount,omitempty"`
	ViewCount        int64 `json:"viewCount,omitempty"`
	HiredCount       int64 `json:"hiredCount,omitempty"`
	Version          int64 `json:"version,omitempty"`
	Utime            int64 `json:"utime,omitempty"`
}

type ListRequisitionReq struct {
	Statuses []string `json:"statuses,omitempty"`
	Offset   int      `json:"offset,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

type Application struct {
	ID                string `json:"id,omitempty"`
	RequisitionID     string `json:"requisitionId,omitempty"`
	ApplicantID       string `json:"applicantId,omitempty"`
	ApplicationNumber string `json:"applicationNumber,omitempty"`
	Status            string `json:"status,omitempty"`
	CurrentStage      string `json:"currentStage,omitempty"`
	StageOrder        int    `json:"stageOrder,omitempty"`
	CoverLetter       string `json:"coverLetter,omitempty"`
	ResumeURL         string `json:"resumeURL,omitempty"`
	Source            string `json:"source,omitempty"`

	ScreeningScore  string `json:"screeningScore,omitempty"`
	ScreeningNotes  string `json:"screeningNotes,omitempty"`
	ScreenerID      string `json:"screenerId,omitempty"`
	ScreenedAt      int64  `json:"screenedAt,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	RejectedAt      int64  `json:"rejectedAt,omitempty"`
	WithdrawnAt     int64  `json:"withdrawnAt,omitempty"`
	HiredAt         int64  `json:"hiredAt,omitempty"`

	Version int64 `json:"version,omitempty"`
	Ctime   int64 `json:"ctime,omitempty"`
	Utime   int64 `json:"utime,omitempty"`
}

type SubmitApplicationReq struct {
	RequisitionID string `json:"requisitionId"`
	ApplicantID   string `json:"applicantId"`
	CoverLetter   string `json:"coverLetter,omitempty"`
	ResumeURL     string `json:"resumeURL,omitempty"`
	Source        string `json:"source,omitempty"`
}

type ScreenReq struct {
	ID         string `json:"id"`
	Passed     bool   `json:"passed"`
	Score      string `json:"score,omitempty"`
	Notes      string `json:"notes,omitempty"`
	ScreenerID string `json:"screenerId,omitempty"`
}

type RejectReq struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type StageReq struct {
	ID    string `json:"id"`
	Stage string `json:"stage"`
	Order int    `json:"order"`
}

type ListApplicationReq struct {
	RequisitionID string `json:"requisitionId,omitempty"`
	ApplicantID   string `json:"applicantId,omitempty"`
	Status        string `json:"status,omitempty"`
	Offset        int    `json:"offset,omitempty"`
	Limit         int    `json:"limit,omitempty"`
}

type Interview struct {
	ID              string   `json:"id,omitempty"`
	ApplicationID   string   `json:"applicationId,omitempty"`
	Round           int      `json:"round,omitempty"`
	Type            string   `json:"type,omitempty"`
	Status          string   `json:"status,omitempty"`
	StartAt         int64    `json:"startAt,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Location        string   `json:"location,omitempty"`
	MeetingLink     string   `json:"meetingLink,omitempty"`
	Interviewers    []string `json:"interviewers,omitempty"`

	Result       string `json:"result,omitempty"`
	OverallScore string `json:"overallScore,omitempty"`
	ResultNotes  string `json:"resultNotes,omitempty"`
	StartedAt    int64  `json:"startedAt,omitempty"`
	EndedAt      int64  `json:"endedAt,omitempty"`

	Version int64 `json:"version,omitempty"`
	Utime   int64 `json:"utime,omitempty"`
}

type ScheduleReq struct {
	ID              string `json:"id"`
	StartAt         int64  `json:"startAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Location        string `json:"location,omitempty"`
	MeetingLink     string `json:"meetingLink,omitempty"`
}

type CompleteInterviewReq struct {
	ID     string `json:"id"`
	Result string `json:"result"`
	// Score 为空时取评分的平均分
	Score string `json:"score,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type ListInterviewReq struct {
	ApplicationID string `json:"applicationId"`
}

type InterviewScore struct {
	ID            string `json:"id,omitempty"`
	InterviewID   string `json:"interviewId"`
	InterviewerID string `json:"interviewerId"`
	Criterion     string `json:"criterion"`
	Score         int    `json:"score"`
	MaxScore      int    `json:"maxScore,omitempty"`
	Weight        string `json:"weight,omitempty"`
	Comment       string `json:"comment,omitempty"`
	Utime         int64  `json:"utime,omitempty"`
}

type InterviewIDReq struct {
	InterviewID string `json:"interviewId"`
}

type AverageScore struct {
	InterviewID string `json:"interviewId"`
	Average     string `json:"average"`
}

type Terms struct {
	BaseSalary string `json:"baseSalary"`
	Bonus      string `json:"bonus,omitempty"`
	Currency   string `json:"currency"`
	StartDate  string `json:"startDate,omitempty"`
	Benefits   string `json:"benefits,omitempty"`
}

type Offer struct {
	ID               string `json:"id,omitempty"`
	ApplicationID    string `json:"applicationId,omitempty"`
	OfferNumber      string `json:"offerNumber,omitempty"`
	Status           string `json:"status,omitempty"`
	Terms            Terms  `json:"terms"`
	ExpiresAt        int64  `json:"expiresAt,omitempty"`
	ApproverID       string `json:"approverId,omitempty"`
	ApprovedAt       int64  `json:"approvedAt,omitempty"`
	SentAt           int64  `json:"sentAt,omitempty"`
	RespondedAt      int64  `json:"respondedAt,omitempty"`
	DeclineReason    string `json:"declineReason,omitempty"`
	NegotiationNotes string `json:"negotiationNotes,omitempty"`

	Version int64 `json:"version,omitempty"`
	Utime   int64 `json:"utime,omitempty"`
}

type CreateOfferReq struct {
	ApplicationID string `json:"applicationId"`
	Terms         Terms  `json:"terms"`
	ExpiresAt     int64  `json:"expiresAt"`
}

type ApproveOfferReq struct {
	ID         string `json:"id"`
	ApproverID string `json:"approverId"`
}

type DeclineOfferReq struct {
	ID     string `json:"id"`
	Reason string `json:"reason,omitempty"`
}

type NegotiateOfferReq struct {
	ID    string `json:"id"`
	Notes string `json:"notes"`
}

type ReviseOfferReq struct {
	ID    string `json:"id"`
	Terms Terms  `json:"terms"`
}
