package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Brewer represents a brewer row in the database, joined with its role.
type Brewer struct {
	ID           int64      `db:"id"`               // Primary key
	Email        string     `db:"email"`            // Unique email
	Username     string     `db:"username"`         // Unique username
	PasswordHash string     `db:"password_hash"`    // bcrypt hash, never the plaintext
	RoleID       int64      `db:"role_id"`          // Role reference
	Confirmed    bool       `db:"confirmed"`        // Email address confirmed
	Name         string     `db:"name"`             // Display name
	Location     string     `db:"location"`         // Free-text location
	AboutMe      string     `db:"about_me"`         // Free-text bio
	MemberSince  time.Time  `db:"member_since"`     // Registration timestamp
	LastSeen     time.Time  `db:"last_seen"`        // Last request timestamp
	AvatarHash   string     `db:"avatar_hash"`      // md5 of the email, for gravatar
	RoleName     string     `db:"role_name"`        // Joined from roles
	Permissions  Permission `db:"role_permissions"` // Joined from roles
}

// Can reports whether the brewer's role grants every bit of required.
func (b *Brewer) Can(required Permission) bool {
	return b.RoleID != 0 && b.Permissions.Has(required)
}

// IsAdministrator reports whether the brewer holds the ADMINISTER bit.
func (b *Brewer) IsAdministrator() bool {
	return b.Can(PermissionAdminister)
}

// DisplayName returns the real name, falling back to the username.
func (b *Brewer) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Username
}

// Gravatar returns the avatar URL of the brewer.
func (b *Brewer) Gravatar(size int, secure bool) string {
	base := "http://www.gravatar.com/avatar"
	if secure {
		base = "https://secure.gravatar.com/avatar"
	}
	hash := b.AvatarHash
	if hash == "" {
		hash = AvatarHash(b.Email)
	}
	return fmt.Sprintf("%s/%s?s=%d&d=identicon&r=g", base, hash, size)
}

// AvatarHash is the gravatar hash of an email address.
func AvatarHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// CachedPrincipal is a verified Basic credential remembered between requests.
type CachedPrincipal struct {
	BrewerID int64
	// Fingerprint of the password hash the credential was checked against.
	Fingerprint string
}
