package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPermission_Has(t *testing.T) {
	user := PermissionDrink | PermissionBrew

	tests := []struct {
		name     string
		mask     Permission
		required Permission
		want     bool
	}{
		{"single bit present", user, PermissionBrew, true},
		{"all bits present", user, PermissionDrink | PermissionBrew, true},
		{"one bit missing", user, PermissionBrew | PermissionModerate, false},
		{"nothing required", user, 0, true},
		{"administrator has everything", 0xff, PermissionAdminister | PermissionModerate, true},
		{"drink only cannot brew", PermissionDrink, PermissionBrew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mask.Has(tt.required))
		})
	}
}

func TestSeedRoles(t *testing.T) {
	roles := SeedRoles()

	assert.Len(t, roles, 3)
	assert.Equal(t, RoleUser, roles[0].Name)
	assert.Equal(t, Permission(0x03), roles[0].Permissions)

	defaults := 0
	for _, r := range roles {
		if r.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestBrewer_Can(t *testing.T) {
	b := &Brewer{RoleID: 1, Permissions: PermissionDrink | PermissionBrew}
	assert.True(t, b.Can(PermissionBrew))
	assert.False(t, b.Can(PermissionAdminister))
	assert.False(t, b.IsAdministrator())

	noRole := &Brewer{Permissions: 0xff}
	assert.False(t, noRole.Can(PermissionDrink))

	admin := &Brewer{RoleID: 3, Permissions: 0xff}
	assert.True(t, admin.IsAdministrator())
}

func TestBrewer_DisplayNameAndGravatar(t *testing.T) {
	b := &Brewer{Username: "earl", Email: "Earl@Example.com "}
	assert.Equal(t, "earl", b.DisplayName())
	b.Name = "Earl Grey"
	assert.Equal(t, "Earl Grey", b.DisplayName())

	hash := AvatarHash("earl@example.com")
	assert.Equal(t, hash, AvatarHash(b.Email))
	assert.Equal(t, "https://secure.gravatar.com/avatar/"+hash+"?s=100&d=identicon&r=g", b.Gravatar(100, true))
	assert.Contains(t, b.Gravatar(40, false), "http://www.gravatar.com/avatar/")
}

func TestPot_State(t *testing.T) {
	p := &Pot{BrewedAt: time.Now()}
	assert.True(t, p.Drinkable())
	assert.Equal(t, PotBrewed, p.State())

	drank := time.Now()
	p.DrankAt = &drank
	assert.False(t, p.Drinkable())
	assert.Equal(t, PotDrunk, p.State())

	p.BrewerUsername = "earl"
	assert.Equal(t, "earl", p.BrewerDisplayName())
}

func TestTeaInput_RoundTrip(t *testing.T) {
	in := TeaInput{Name: "Sencha", Category: "Green", Location: "Japan", Description: "*grassy*"}
	var tea Tea
	in.Apply(&tea)
	assert.Equal(t, in, TeaInputFrom(&tea))
}
