package docstore

import (
	"time"

	"gorm.io/datatypes"
)

type Document struct {
	Path      string         `gorm:"primaryKey;type:text" json:"path"`
	DocID     string         `gorm:"primaryKey;column:doc_id;type:text" json:"doc_id"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}
