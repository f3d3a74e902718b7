package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringList is an ordered list of strings persisted as a JSON-encoded
// text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes the stored text. NULL, empty, or corrupt blobs decode to
// an empty list so a bad row never breaks a read path.
func (l *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}

type Job struct {
	ID         uint    `gorm:"primaryKey"`
	Title      string  `gorm:"size:255;not null;index"`
	Company    string  `gorm:"size:255;not null;index"`
	Location   string  `gorm:"size:255;not null"`
	Experience string  `gorm:"size:100;not null"`
	Salary     string  `gorm:"size:100;not null"`
	Type       string  `gorm:"size:50;not null;index"`  // On-site, Hybrid, Remote
	Category   string  `gorm:"size:100;not null;index"` // Accounting, Sales, Software, ...
	LogoURL    *string `gorm:"size:500"`

	Description      StringList `gorm:"type:text;not null"`
	Responsibilities StringList `gorm:"type:text;not null"`
	SoftSkills       StringList `gorm:"type:text;not null"`
	Qualifications   StringList `gorm:"type:text;not null"`

	// Both timestamps are set by the service layer: CreatedAt once at
	// insert, UpdatedAt on every mutation (nil until the first one).
	CreatedAt time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}
