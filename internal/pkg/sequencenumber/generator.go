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

// Package sequencenumber 生成形如 APP-20240101-000001 的业务编号。
// 计数器落在数据库里，每个租户每种业务每天一行，多实例和重启之后都不会重复。
package sequencenumber

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dayLayout = "20060102"

type Biz string

const (
	BizApplication Biz = "APP"
	BizOffer       Biz = "OFR"
)

type Generator struct {
	db       *gorm.DB
	now      func() time.Time
	initOnce sync.Once
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db, now: time.Now}
}

// NewGeneratorWith 主要用于测试，指定时钟
func NewGeneratorWith(db *gorm.DB, now func() time.Time) *Generator {
	return &Generator{db: db, now: now}
}

func (g *Generator) InitTable() error {
	var err error
	g.initOnce.Do(func() {
		err = g.db.AutoMigrate(&SequenceNumber{})
	})
	return err
}

// Next 返回下一个编号。
// 先 upsert 当天的计数行，value 自增；再在同一个事务里读回来。
// upsert 会给这一行加上排他锁，所以并发调用拿到的 value 不会相同。
func (g *Generator) Next(ctx context.Context, tenantID uuid.UUID, biz Biz) (string, error) {
	now := g.now()
	day := now.Format(dayLayout)
	var res SequenceNumber
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			DoUpdates: clause.Assignments(map[string]any{
				"value": gorm.Expr("`value` + 1"),
				"utime": now.UnixMilli(),
			}),
		}).Create(&SequenceNumber{
			TenantID: tenantID.String(),
			Biz:      string(biz),
			Day:      day,
			Value:    1,
			Ctime:    now.UnixMilli(),
			Utime:    now.UnixMilli(),
		}).Error
		if err != nil {
			return err
		}
		return tx.Where("tenant_id = ? AND biz = ? AND day = ?", tenantID.String(), string(biz), day).
			First(&res).Error
	})
	if err != nil {
		return "", fmt.Errorf("生成 %s 编号失败: %w", biz, err)
	}
	return Format(biz, day, res.Value), nil
}

func Format(biz Biz, day string, value int64) string {
	return fmt.Sprintf("%s-%s-%06d", biz, day, value)
}

type SequenceNumber struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	TenantID string `gorm:"type:char(36);not null;uniqueIndex:uniq_tenant_biz_day"`
	Biz      string `gorm:"type:varchar(16);not null;uniqueIndex:uniq_tenant_biz_day"`
	Day      string `gorm:"type:char(8);not null;uniqueIndex:uniq_tenant_biz_day"`
	Value    int64  `gorm:"not null;default:0"`
	Ctime    int64
	Utime    int64
}

func (SequenceNumber) TableName() string {
	return "sequence_numbers"
}
