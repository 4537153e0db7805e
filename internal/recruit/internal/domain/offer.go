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
	"github.com/ecodeclub/hirebook/internal/pkg/fsm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OfferEntity = "Offer"

type OfferStatus string

const (
	OfferStatusDraft           OfferStatus = "DRAFT"
	OfferStatusPendingApproval OfferStatus = "PENDING_APPROVAL"
	OfferStatusApproved        OfferStatus = "APPROVED"
	OfferStatusSent            OfferStatus = "SENT"
	OfferStatusAccepted        OfferStatus = "ACCEPTED"
	OfferStatusDeclined        OfferStatus = "DECLINED"
	OfferStatusNegotiating     OfferStatus = "NEGOTIATING"
	OfferStatusExpired         OfferStatus = "EXPIRED"
	OfferStatusCancelled       OfferStatus = "CANCELLED"
)

func (s OfferStatus) String() string {
	return string(s)
}

const (
	ActionSubmitForApproval = "submitForApproval"
	ActionApprove           = "approve"
	ActionSend              = "send"
	ActionAccept            = "accept"
	ActionDecline           = "decline"
	ActionNegotiate         = "negotiate"
	ActionRevise            = "revise"
	ActionExpire            = "expire"
)

// ActiveOfferStatuses 非终态，过期任务只扫描这些状态
var ActiveOfferStatuses = []OfferStatus{
	OfferStatusDraft,
	OfferStatusPendingApproval,
	OfferStatusApproved,
	OfferStatusSent,
	OfferStatusNegotiating,
}

var offerMachine = fsm.New[OfferStatus](OfferEntity,
	map[string]fsm.Transition[OfferStatus]{
		ActionSubmitForApproval: {From: []OfferStatus{OfferStatusDraft}, To: OfferStatusPendingApproval},
		ActionApprove:           {From: []OfferStatus{OfferStatusPendingApproval}, To: OfferStatusApproved},
		ActionSend:              {From: []OfferStatus{OfferStatusApproved}, To: OfferStatusSent},
		ActionAccept:            {From: []OfferStatus{OfferStatusSent}, To: OfferStatusAccepted},
		ActionDecline:           {From: []OfferStatus{OfferStatusSent}, To: OfferStatusDeclined},
		ActionNegotiate:         {From: []OfferStatus{OfferStatusSent}, To: OfferStatusNegotiating},
		ActionRevise:            {From: []OfferStatus{OfferStatusNegotiating}, To: OfferStatusDraft},
		ActionCancel:            {From: ActiveOfferStatuses, To: OfferStatusCancelled},
		ActionExpire:            {From: ActiveOfferStatuses, To: OfferStatusExpired},
	},
	OfferStatusAccepted, OfferStatusDeclined, OfferStatusExpired, OfferStatusCancelled,
)

type Offer struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ApplicationID uuid.UUID
	OfferNumber   string
	Status        OfferStatus
	Terms         Terms
	ExpiresAt     time.Time

	ApproverID       uuid.UUID
	ApprovedAt       time.Time
	SentAt           time.Time
	RespondedAt      time.Time
	DeclineReason    string
	NegotiationNotes string

	Version int64
	Ctime   time.Time
	Utime   time.Time
}

// Terms 薪酬条款
type Terms struct {
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Currency   string
	StartDate  time.Time
	Benefits   string
}

func (t Terms) Validate() error {
	if !t.BaseSalary.IsPositive() {
		return errs.Invalid("基本薪资必须大于 0")
	}
	if t.Bonus.IsNegative() {
		return errs.Invalid("奖金不能为负数")
	}
	if strings.TrimSpace(t.Currency) == "" {
		return errs.Invalid("币种不能为空")
	}
	return nil
}

func NewOffer(tenantID, applicationID uuid.UUID, terms Terms, expiresAt, now time.Time) (Offer, error) {
	if err := terms.Validate(); err != nil {
		return Offer{}, err
	}
	if !expiresAt.After(now) {
		return Offer{}, errs.Invalid("过期时间必须晚于当前时间")
	}
	return Offer{
		ID:            uuid.New(),
		TenantID:      tenantID,
		ApplicationID: applicationID,
		Status:        OfferStatusDraft,
		Terms:         terms,
		ExpiresAt:     expiresAt,
		Ctime:         now,
		Utime:         now,
	}, nil
}

func (o *Offer) SubmitForApproval(now time.Time) error {
	return o.transit(ActionSubmitForApproval, now)
}

func (o *Offer) Approve(approverID uuid.UUID, now time.Time) error {
	if err := o.transit(ActionApprove, now); err != nil {
		return err
	}
	o.ApproverID = approverID
	o.ApprovedAt = now
	return nil
}

func (o *Offer) Send(now time.Time) error {
	if err := o.transit(ActionSend, now); err != nil {
		return err
	}
	o.SentAt = now
	return nil
}

// Accept 过期之后即便扫描任务还没跑到，也不允许再接受
func (o *Offer) Accept(now time.Time) error {
	if !offerMachine.Can(o.Status, ActionAccept) {
		return errs.NewStateTransitionError(OfferEntity, ActionAccept, o.Status.String())
	}
	if o.IsExpired(now) {
		return errs.Invalid("offer %s 已于 %s 过期", o.OfferNumber, o.ExpiresAt.Format(time.DateTime))
	}
	if err := o.transit(ActionAccept, now); err != nil {
		return err
	}
	o.RespondedAt = now
	return nil
}

func (o *Offer) Decline(reason string, now time.Time) error {
	if err := o.transit(ActionDecline, now); err != nil {
		return err
	}
	o.DeclineReason = reason
	o.RespondedAt = now
	return nil
}

func (o *Offer) Negotiate(notes string, now time.Time) error {
	if err := o.transit(ActionNegotiate, now); err != nil {
		return err
	}
	o.NegotiationNotes = notes
	return nil
}

// Revise 谈判之后修改条款，重新走审批
func (o *Offer) Revise(terms Terms, now time.Time) error {
	if !offerMachine.Can(o.Status, ActionRevise) {
		return errs.NewStateTransitionError(OfferEntity, ActionRevise, o.Status.String())
	}
	if err := terms.Validate(); err != nil {
		return err
	}
	o.Terms = terms
	return o.transit(ActionRevise, now)
}

func (o *Offer) Cancel(now time.Time) error {
	return o.transit(ActionCancel, now)
}

// Expire 幂等。已经是终态或者还没到期都返回 false
func (o *Offer) Expire(now time.Time) (bool, error) {
	if o.IsTerminal() || !o.IsExpired(now) {
		return false, nil
	}
	if err := o.transit(ActionExpire, now); err != nil {
		return false, err
	}
	return true, nil
}

func (o Offer) IsExpired(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && o.ExpiresAt.Before(now)
}

func (o Offer) IsTerminal() bool {
	return offerMachine.IsTerminal(o.Status)
}

func (o *Offer) transit(action string, now time.Time) error {
	next, err := offerMachine.Next(o.Status, action)
	if err != nil {
		return err
	}
	o.Status = next
	o.Utime = now
	return nil
}
