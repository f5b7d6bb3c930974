package models

// Leave request statuses
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Leave represents the leaves table.
// AdminID stays NULL until an admin approves or rejects the request.
type Leave struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DoctorID  uint   `gorm:"not null;index" json:"doctor_id"`
	StartDate string `gorm:"size:10;not null" json:"start_date"`
	EndDate   string `gorm:"size:10;not null" json:"end_date"`
	Reason    string `gorm:"type:text" json:"reason"`
	Status    string `gorm:"size:20;default:'pending'" json:"status"`
	AdminID   *uint  `gorm:"index" json:"admin_id"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Admin  *User  `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for Leave model
func (Leave) TableName() string {
	return "leaves"
}
