// Package session describes who is making a request. A Session is built
// once from the bearer token and handed to services explicitly.
package session

import (
	"slices"

	"github.com/google/uuid"
)

// Kind is the type of principal behind a session
type Kind string

const (
	KindCustomer Kind = "customer"
	KindAdmin    Kind = "admin"
)

// Permissions granted by kind
const (
	PermShop           = "shop"
	PermManageProducts = "manage-products"
	PermManageOrders   = "manage-orders"
	PermViewReports    = "view-reports"
)

// Session is the authenticated caller of a request
type Session struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	Kind        Kind      `json:"kind"`
	Username    string    `json:"username"`
	Permissions []string  `json:"permissions"`
}

// New builds a session with the default permissions of kind
func New(subjectID uuid.UUID, kind Kind, username string) Session {
	return Session{
		SubjectID:   subjectID,
		Kind:        kind,
		Username:    username,
		Permissions: PermissionsFor(kind),
	}
}

// PermissionsFor returns the permissions granted to a kind
func PermissionsFor(kind Kind) []string {
	switch kind {
	case KindAdmin:
		return []string{PermManageProducts, PermManageOrders, PermViewReports}
	case KindCustomer:
		return []string{PermShop}
	default:
		return nil
	}
}

// ParseKind validates a kind read from a token
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindCustomer, KindAdmin:
		return Kind(s), true
	}
	return "", false
}

func (s Session) IsAdmin() bool {
	return s.Kind == KindAdmin
}

func (s Session) IsCustomer() bool {
	return s.Kind == KindCustomer
}

// Can reports whether the session holds a permission
func (s Session) Can(permission string) bool {
	return slices.Contains(s.Permissions, permission)
}
