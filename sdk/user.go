package sdk

// Role distinguishes the two kinds of principals the TAPS API recognizes.
type Role string

const (
	// RoleDoctor identifies a doctor.
	RoleDoctor Role = "doctor"
	// RolePatient identifies a patient.
	RolePatient Role = "patient"
)

// User represents a principal authenticated against the TAPS API. A User is
// immutable for the lifetime of the session it was fetched for and is
// replaced wholesale on re-login.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Hospital string `json:"hospital,omitempty"`
}
