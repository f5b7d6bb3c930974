package authz

import (
	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
)

// Scope narrows a list query to the rows visible to one principal
type Scope func(*gorm.DB) *gorm.DB

func unrestricted(db *gorm.DB) *gorm.DB { return db }

// listScopes holds the per-(entity, role) visibility filters for list
// operations. Admin is absent everywhere: admins always list unrestricted.
var listScopes = map[Entity]map[Role]func(userID uint) Scope{
	EntityHospital: {
		RolePatient: func(uint) Scope { return unrestricted },
		RoleDoctor:  func(uint) Scope { return unrestricted },
	},
	EntityDoctor: {
		RolePatient: func(uint) Scope { return unrestricted },
		RoleDoctor:  func(uint) Scope { return unrestricted },
	},
	EntityAppointment: {
		RolePatient: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("appointments.patient_id = ?", userID)
			}
		},
		RoleDoctor: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.
					Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
					Where("doctors.user_id = ?", userID)
			}
		},
	},
	EntityPrescription: {
		RolePatient: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.
					Joins("INNER JOIN appointments ON appointments.id = prescriptions.appointment_id").
					Where("appointments.patient_id = ?", userID)
			}
		},
		RoleDoctor: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.
					Joins("INNER JOIN appointments ON appointments.id = prescriptions.appointment_id").
					Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
					Where("doctors.user_id = ?", userID)
			}
		},
	},
	EntityHealthRecord: {
		RolePatient: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("health_records.patient_id = ?", userID)
			}
		},
		RoleDoctor: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.
					Joins("INNER JOIN appointments ON appointments.id = health_records.appointment_id").
					Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
					Where("doctors.user_id = ?", userID)
			}
		},
	},
	EntityLeave: {
		RoleDoctor: func(userID uint) Scope {
			return func(db *gorm.DB) *gorm.DB {
				return db.
					Joins("INNER JOIN doctors ON doctors.id = leaves.doctor_id").
					Where("doctors.user_id = ?", userID)
			}
		},
	},
}

// ListScope returns the visibility filter for p listing entity e.
// Roles excluded from listing an entity get Forbidden.
func ListScope(p Principal, e Entity) (Scope, error) {
	if !Allowed(p, e, ActionList) {
		return nil, apperr.Forbidden(string(p.Role) + " may not list " + string(e))
	}
	if p.Role == RoleAdmin {
		return unrestricted, nil
	}
	scopes, ok := listScopes[e]
	if !ok {
		return nil, apperr.Forbidden(string(p.Role) + " may not list " + string(e))
	}
	build, ok := scopes[p.Role]
	if !ok {
		return nil, apperr.Forbidden(string(p.Role) + " may not list " + string(e))
	}
	return build(p.UserID), nil
}
