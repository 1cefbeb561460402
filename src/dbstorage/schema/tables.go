// 数据库表，当前只有一张表，每个抽取到的文本对应一行
package schema

import (
	"time"
)

type Record struct {
	ID    uint64    `xorm:"bigint pk autoincr 'id'"`
	URL   string    `xorm:"varchar(2048) notnull index 'url'"`
	Title string    `xorm:"text 'title'"`
	Date  time.Time `xorm:"datetime 'date'"`
}

func (r *Record) TableName() string {
	return "records"
}
