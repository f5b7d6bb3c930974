package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Availability maps a date (YYYY-MM-DD) to its ordered list of open time slots,
// e.g. {"2025-05-27": ["09:00", "10:00"]}. Stored as a JSON column.
type Availability map[string][]string

// Value implements driver.Valuer for JSON column storage
func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON column retrieval
func (a *Availability) Scan(value interface{}) error {
	if value == nil {
		*a = Availability{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("availability: unsupported column type")
	}
	if len(data) == 0 {
		*a = Availability{}
		return nil
	}
	return json.Unmarshal(data, a)
}

// Doctor represents the doctors table.
// Each doctor profile belongs to exactly one user account (role=doctor).
type Doctor struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;uniqueIndex" json:"user_id"`
	HospitalID     uint         `gorm:"not null;index" json:"hospital_id"`
	Specialization string       `gorm:"size:50;not null" json:"specialization"`
	Qualifications string       `gorm:"type:text" json:"qualifications"`
	Experience     int          `gorm:"default:0" json:"experience"`
	Availability   Availability `gorm:"type:json" json:"availability"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
