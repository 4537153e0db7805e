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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/recruit/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r Requisition) toDomain() (domain.Requisition, error) {
	var (
		res domain.Requisition
		err error
	)
	res.Code, res.Title = r.Code, r.Title
	res.Description, res.Location = r.Description, r.Location
	res.Currency, res.Headcount = r.Currency, r.Headcount
	if res.ID, err = parseOptionalID(r.ID); err != nil {
		return res, err
	}
	if res.DepartmentID, err = parseOptionalID(r.DepartmentID); err != nil {
		return res, err
	}
	if res.PositionID, err = parseOptionalID(r.PositionID); err != nil {
		return res, err
	}
	if res.SalaryMin, err = parseDecimal("salaryMin", r.SalaryMin); err != nil {
		return res, err
	}
	if res.SalaryMax, err = parseDecimal("salaryMax", r.SalaryMax); err != nil {
		return res, err
	}
	if res.OpenDate, err = parseDate("openDate", r.OpenDate); err != nil {
		return res, err
	}
	res.CloseDate, err = parseDate("closeDate", r.CloseDate)
	return res, err
}

func newRequisition(r domain.Requisition) Requisition {
	return Requisition{
		ID:               r.ID.String(),
		Code:             r.Code,
		Title:            r.Title,
		DepartmentID:     formatID(r.DepartmentID),
		PositionID:       formatID(r.PositionID),
		Description:      r.Description,
		Location:         r.Location,
		SalaryMin:        r.SalaryMin.String(),
		SalaryMax:        r.SalaryMax.String(),
		Currency:         r.Currency,
		Headcount:        r.Headcount,
		Status:           r.Status.String(),
		OpenDate:         formatDate(r.OpenDate),
		CloseDate:        formatDate(r.CloseDate),
		ApplicationCount: r.ApplicationCount,
		ViewCount:        r.ViewCount,
		HiredCount:       r.HiredCount,
		Version:          r.Version,
		Utime:            toMillis(r.Utime),
	}
}

// newPubRequisition 候选人看不到内部的统计数据
func newPubRequisition(r domain.Requisition) Requisition {
	res := newRequisition(r)
	res.ApplicationCount, res.HiredCount, res.Version = 0, 0, 0
	return res
}

func newApplication(a domain.Application) Application {
	res := Application{
		ID:                a.ID.String(),
		RequisitionID:     a.RequisitionID.String(),
		ApplicantID:       a.ApplicantID.String(),
		ApplicationNumber: a.ApplicationNumber,
		Status:            a.Status.String(),
		CurrentStage:      a.CurrentStage,
		StageOrder:        a.StageOrder,
		CoverLetter:       a.CoverLetter,
		ResumeURL:         a.ResumeURL,
		Source:            a.Source,
		ScreeningNotes:    a.Screening.Notes,
		ScreenerID:        formatID(a.Screening.ScreenerID),
		ScreenedAt:        toMillis(a.Screening.ScreenedAt),
		RejectionReason:   a.RejectionReason,
		RejectedAt:        toMillis(a.RejectedAt),
		WithdrawnAt:       toMillis(a.WithdrawnAt),
		HiredAt:           toMillis(a.HiredAt),
		Version:           a.Version,
		Ctime:             toMillis(a.Ctime),
		Utime:             toMillis(a.Utime),
	}
	if !a.Screening.ScreenedAt.IsZero() {
		res.ScreeningScore = a.Screening.Score.String()
	}
	return res
}

func newInterview(i domain.Interview) Interview {
	res := Interview{
		ID:              i.ID.String(),
		ApplicationID:   i.ApplicationID.String(),
		Round:           i.Round,
		Type:            i.Type,
		Status:          i.Status.String(),
		StartAt:         toMillis(i.Schedule.StartAt),
		DurationMinutes: i.Schedule.DurationMinutes,
		Location:        i.Schedule.Location,
		MeetingLink:     i.Schedule.MeetingLink,
		Interviewers:    i.Interviewers,
		Result:          i.Result,
		ResultNotes:     i.ResultNotes,
		StartedAt:       toMillis(i.StartedAt),
		EndedAt:         toMillis(i.EndedAt),
		Version:         i.Version,
		Utime:           toMillis(i.Utime),
	}
	if i.OverallScore.Valid {
		res.OverallScore = i.OverallScore.Decimal.String()
	}
	return res
}

func newInterviews(list []domain.Interview) []Interview {
	return slice.Map(list, func(_ int, src domain.Interview) Interview {
		return newInterview(src)
	})
}

func (s ScheduleReq) toDomain() domain.Schedule {
	return domain.Schedule{
		StartAt:         fromMillis(s.StartAt),
		DurationMinutes: s.DurationMinutes,
		Location:        s.Location,
		MeetingLink:     s.MeetingLink,
	}
}

func (s InterviewScore) toDomain() (domain.InterviewScore, error) {
	interviewID, err := parseID(s.InterviewID)
	if err != nil {
		return domain.InterviewScore{}, err
	}
	interviewerID, err := parseOptionalID(s.InterviewerID)
	if err != nil {
		return domain.InterviewScore{}, err
	}
	weight, err := parseDecimal("weight", s.Weight)
	if err != nil {
		return domain.InterviewScore{}, err
	}
	return domain.InterviewScore{
		InterviewID:   interviewID,
		InterviewerID: interviewerID,
		Criterion:     s.Criterion,
		Score:         s.Score,
		MaxScore:      s.MaxScore,
		Weight:        weight,
		Comment:       s.Comment,
	}, nil
}

func newInterviewScore(s domain.InterviewScore) InterviewScore {
	return InterviewScore{
		ID:            s.ID.String(),
		InterviewID:   s.InterviewID.String(),
		InterviewerID: s.InterviewerID.String(),
		Criterion:     s.Criterion,
		Score:         s.Score,
		MaxScore:      s.MaxScore,
		Weight:        s.Weight.String(),
		Comment:       s.Comment,
		Utime:         toMillis(s.Utime),
	}
}

func (t Terms) toDomain() (domain.Terms, error) {
	base, err := parseDecimal("baseSalary", t.BaseSalary)
	if err != nil {
		return domain.Terms{}, err
	}
	bonus, err := parseDecimal("bonus", t.Bonus)
	if err != nil {
		return domain.Terms{}, err
	}
	start, err := parseDate("startDate", t.StartDate)
	if err != nil {
		return domain.Terms{}, err
	}
	return domain.Terms{
		BaseSalary: base,
		Bonus:      bonus,
		Currency:   t.Currency,
		StartDate:  start,
		Benefits:   t.Benefits,
	}, nil
}

func newTerms(t domain.Terms) Terms {
	return Terms{
		BaseSalary: t.BaseSalary.String(),
		Bonus:      t.Bonus.String(),
		Currency:   t.Currency,
		StartDate:  formatDate(t.StartDate),
		Benefits:   t.Benefits,
	}
}

func newOffer(o domain.Offer) Offer {
	return Offer{
		ID:               o.ID.String(),
		ApplicationID:    o.ApplicationID.String(),
		OfferNumber:      o.OfferNumber,
		Status:           o.Status.String(),
		Terms:            newTerms(o.Terms),
		ExpiresAt:        toMillis(o.ExpiresAt),
		ApproverID:       formatID(o.ApproverID),
		ApprovedAt:       toMillis(o.ApprovedAt),
		SentAt:           toMillis(o.SentAt),
		RespondedAt:      toMillis(o.RespondedAt),
		DeclineReason:    o.DeclineReason,
		NegotiationNotes: o.NegotiationNotes,
		Version:          o.Version,
		Utime:            toMillis(o.Utime),
	}
}

func newAverageScore(interviewID uuid.UUID, avg decimal.Decimal) AverageScore {
	return AverageScore{
		InterviewID: interviewID.String(),
		Average:     avg.StringFixed(2),
	}
}
