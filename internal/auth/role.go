package auth

import "fmt"

// Role is the coarse permission tag stored on a user account.
type Role string

const (
	RoleClient   Role = "Client"
	RoleOwner    Role = "Owner"
	RoleDelivery Role = "Delivery"

	// RoleAny is only meaningful in an allow-list: any authenticated user.
	RoleAny Role = "Any"
)

// UserRoles lists the roles an account may hold.
var UserRoles = []Role{RoleClient, RoleOwner, RoleDelivery}

// ParseRole returns the account role named by s. RoleAny is rejected.
func ParseRole(s string) (Role, error) {
	for _, r := range UserRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}
