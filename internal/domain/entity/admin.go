package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a back-office user who manages the catalog and reads reports
type Admin struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new admin
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}

// Credential holds the login secret of either a customer or an admin.
// Exactly one of CustomerID and AdminID is set.
type Credential struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username     string     `gorm:"size:255;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	AdminID      *uuid.UUID `gorm:"type:uuid;index" json:"admin_id,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Admin    *Admin    `gorm:"foreignKey:AdminID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new credential
func (c *Credential) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Credential model
func (Credential) TableName() string {
	return "credentials"
}

// IsAdmin reports whether the credential belongs to an admin
func (c *Credential) IsAdmin() bool {
	return c.AdminID != nil
}

// SubjectID returns the id of the owning customer or admin
func (c *Credential) SubjectID() uuid.UUID {
	if c.AdminID != nil {
		return *c.AdminID
	}
	if c.CustomerID != nil {
		return *c.CustomerID
	}
	return uuid.Nil
}
