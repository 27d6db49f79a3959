package models

// Role represents a role row in the database
type Role struct {
	ID          int64      `db:"id"`          // Primary key
	Name        string     `db:"name"`        // Unique role name
	Default     bool       `db:"is_default"`  // Assigned to new brewers
	Permissions Permission `db:"permissions"` // Permission bitmask
}
