package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores an ordered list of strings as a JSON text column.
// Order is significant: tags keep insertion order, links keep
// first-occurrence order after deduplication.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string list: %T", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Paper is the canonical record produced by the ingestion pipeline.
// Every field is populated by the time a paper reaches a caller:
// the normalizer applies defaults, so no field is ever absent or null.
type Paper struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	GroupID      uint       `gorm:"index" json:"-"`
	Position     int        `json:"-"`
	Title        string     `gorm:"size:512" json:"title"`
	Year         string     `gorm:"size:16" json:"year"`
	Tags         StringList `gorm:"type:text" json:"tags"`
	Summary      string     `gorm:"type:text" json:"summary"`
	Contribution string     `gorm:"type:text" json:"contribution"`
	Notes        string     `gorm:"type:text" json:"notes"`
	Important    bool       `gorm:"default:false" json:"important"`
	Links        StringList `gorm:"type:text" json:"links"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Group is a named reading list holding papers in insertion order.
type Group struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"index;size:256" json:"name"`
	Position  int       `json:"-"`
	Papers    []Paper   `gorm:"foreignKey:GroupID" json:"papers"`
	CreatedAt time.Time `json:"created_at"`
}

// Collection is the full persisted document: every group with its papers.
// Paper identifiers are unique across the whole collection, not just
// within one group; the identity repair pass enforces this on load.
type Collection struct {
	Groups []Group `json:"groups"`
}

func (Paper) TableName() string {
	return "papers"
}

func (Group) TableName() string {
	return "groups"
}
