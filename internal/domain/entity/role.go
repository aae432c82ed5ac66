package entity

// Role claim values issued by the identity provider. The services trust
// these as already validated; there are no local users or roles tables.
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
	RoleAdmin   = "ADMIN"
)
