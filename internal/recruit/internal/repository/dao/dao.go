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

package dao

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/hirebook/internal/pkg/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&JobRequisition{},
		&Application{},
		&Interview{},
		&InterviewScore{},
		&Offer{},
	)
}

const uniqueIndexErrNo uint16 = 1062

func isDuplicateErr(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}

// notFound 把 gorm 的找不到记录转换为统一的错误种类
func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound("%s %s", entity, id)
	}
	return err
}

// updateVersioned 乐观锁更新。
// val 中的 Version 必须已经是新版本号，oldVersion 是读出来时的版本号；没有更新到任何行说明被别人改过了。
func updateVersioned(tx *gorm.DB, val any, entity, tenantID string, oldVersion int64, columns []string) error {
	res := tx.Model(val).
		Where("tenant_id = ? AND version = ?", tenantID, oldVersion).
		Select(columns).
		Updates(val)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", errs.ErrConcurrentModification, entity)
	}
	return nil
}
