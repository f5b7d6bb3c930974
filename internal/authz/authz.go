package authz

import (
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

// Role is the closed set of principal roles
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Entity identifies a resource type subject to access scoping
type Entity string

const (
	EntityHospital     Entity = "hospital"
	EntityDoctor       Entity = "doctor"
	EntityAppointment  Entity = "appointment"
	EntityPrescription Entity = "prescription"
	EntityHealthRecord Entity = "health_record"
	EntityLeave        Entity = "leave"
)

// Action is an operation against an entity type
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Principal is the authenticated actor performing a request
type Principal struct {
	UserID uint
	Role   Role
}

type roleSet map[Role]bool

var allRoles = roleSet{RolePatient: true, RoleDoctor: true, RoleAdmin: true}
var adminOnly = roleSet{RoleAdmin: true}

// permissions is the static role gate per (entity, action). Ownership of the
// concrete instance is checked separately via Authorize.
var permissions = map[Entity]map[Action]roleSet{
	EntityHospital: {
		ActionList:   allRoles,
		ActionRead:   allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	EntityDoctor: {
		ActionList:   allRoles,
		ActionRead:   allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: {RoleAdmin: true, RoleDoctor: true},
		ActionDelete: adminOnly,
	},
	EntityAppointment: {
		ActionList:   allRoles,
		ActionRead:   allRoles,
		ActionCreate: {RolePatient: true},
		ActionUpdate: {RolePatient: true, RoleDoctor: true, RoleAdmin: true},
		ActionDelete: {RolePatient: true, RoleDoctor: true, RoleAdmin: true},
	},
	EntityPrescription: {
		ActionList:   allRoles,
		ActionRead:   allRoles,
		ActionCreate: {RoleDoctor: true},
		ActionUpdate: {RoleDoctor: true, RoleAdmin: true},
		ActionDelete: {RoleDoctor: true, RoleAdmin: true},
	},
	EntityHealthRecord: {
		ActionList:   allRoles,
		ActionRead:   allRoles,
		ActionCreate: {RoleDoctor: true},
		ActionUpdate: {RoleDoctor: true, RoleAdmin: true},
		ActionDelete: {RoleDoctor: true, RoleAdmin: true},
	},
	EntityLeave: {
		ActionList:   {RoleDoctor: true, RoleAdmin: true},
		ActionRead:   {RoleDoctor: true, RoleAdmin: true},
		ActionCreate: {RoleDoctor: true},
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
}

// Allowed reports whether p's role may attempt action a on entity e at all
func Allowed(p Principal, e Entity, a Action) bool {
	actions, ok := permissions[e]
	if !ok {
		return false
	}
	return actions[a][p.Role]
}

// owners holds the per-entity ownership predicates relating a principal to a
// loaded instance. Entities absent from the map have no owner (anyone passing
// the role gate may act on any instance).
var owners = map[Entity]func(p Principal, v interface{}) bool{
	EntityDoctor: func(p Principal, v interface{}) bool {
		d := v.(*models.Doctor)
		return d.UserID == p.UserID
	},
	EntityAppointment: func(p Principal, v interface{}) bool {
		a := v.(*models.Appointment)
		if p.Role == RolePatient {
			return a.PatientID == p.UserID
		}
		return a.Doctor.UserID == p.UserID
	},
	EntityPrescription: func(p Principal, v interface{}) bool {
		pr := v.(*models.Prescription)
		if p.Role == RolePatient {
			return pr.Appointment.PatientID == p.UserID
		}
		return pr.Appointment.Doctor.UserID == p.UserID
	},
	EntityHealthRecord: func(p Principal, v interface{}) bool {
		r := v.(*models.HealthRecord)
		if p.Role == RolePatient {
			return r.PatientID == p.UserID
		}
		return r.Appointment.Doctor.UserID == p.UserID
	},
	EntityLeave: func(p Principal, v interface{}) bool {
		l := v.(*models.Leave)
		return l.Doctor.UserID == p.UserID
	},
}

// Authorize decides whether p may perform a on the given loaded instance of e.
// The instance must carry the relationships the ownership predicate walks
// (appointment.Doctor, prescription.Appointment.Doctor, leave.Doctor).
// Admins pass every ownership check.
func Authorize(p Principal, e Entity, a Action, v interface{}) error {
	if !p.Role.Valid() {
		return apperr.Unauthenticated("unknown role")
	}
	if !Allowed(p, e, a) {
		return apperr.Forbidden(string(p.Role) + " may not " + string(a) + " " + string(e))
	}
	if p.Role == RoleAdmin {
		return nil
	}
	owned, ok := owners[e]
	if !ok || v == nil {
		return nil
	}
	if !owned(p, v) {
		return apperr.Forbidden("you do not have access to this " + string(e))
	}
	return nil
}
