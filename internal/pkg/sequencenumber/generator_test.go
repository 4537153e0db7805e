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

package sequencenumber

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func TestGenerator_Next(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.Local)
	tenantID := uuid.New()
	testCases := []struct {
		name    string
		biz     Biz
		mock    func(t *testing.T) *sql.DB
		wantSN  string
		wantErr bool
	}{
		{
			name: "当天第一个申请编号",
			biz:  BizApplication,
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `sequence_numbers` .* ON DUPLICATE KEY UPDATE .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT \\* FROM `sequence_numbers` WHERE .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "biz", "day", "value"}).
						AddRow(1, tenantID.String(), "APP", "20240309", 1))
				mock.ExpectCommit()
				return db
			},
			wantSN: "APP-20240309-000001",
		},
		{
			name: "已有计数的offer编号",
			biz:  BizOffer,
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `sequence_numbers` .*").
					WillReturnResult(sqlmock.NewResult(3, 2))
				mock.ExpectQuery("SELECT \\* FROM `sequence_numbers` WHERE .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "biz", "day", "value"}).
						AddRow(3, tenantID.String(), "OFR", "20240309", 42))
				mock.ExpectCommit()
				return db
			},
			wantSN: "OFR-20240309-000042",
		},
		{
			name: "upsert失败",
			biz:  BizApplication,
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `sequence_numbers` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return db
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			g := NewGeneratorWith(db, func() time.Time { return now })
			sn, err := g.Next(context.Background(), tenantID, tc.biz)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSN, sn)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "APP-20240101-000007", Format(BizApplication, "20240101", 7))
	assert.Equal(t, "OFR-20240101-1234567", Format(BizOffer, "20240101", 1234567))
}

func TestSequenceNumber_Schema(t *testing.T) {
	sch, err := schema.Parse(&SequenceNumber{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	id := sch.LookUpField("Id")
	require.NotNil(t, id)
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.AutoIncrement)
	_, ok := id.TagSettings["PRIMARYKEY"]
	assert.True(t, ok)
	_, ok = id.TagSettings["AUTOINCREMENT"]
	assert.True(t, ok)
}
