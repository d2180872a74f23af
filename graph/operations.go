package graph

import (
	"eats-backend/internal/auth"
	"eats-backend/internal/guard"
)

// Operation names a root field and the roles allowed to run it. Roles nil
// means the operation is public.
type Operation struct {
	Name  string
	Roles []auth.Role
}

var (
	anyRole   = []auth.Role{auth.RoleAny}
	ownerOnly = []auth.Role{auth.RoleOwner}
)

// Operations is the table of every root operation the schema exposes.
func Operations() []Operation {
	return []Operation{
		{Name: "Query.me", Roles: anyRole},
		{Name: "Query.userProfile", Roles: anyRole},
		{Name: "Query.allCategories"},
		{Name: "Query.category"},
		{Name: "Query.restaurants"},
		{Name: "Query.restaurant"},
		{Name: "Query.searchRestaurant"},

		{Name: "Mutation.createAccount"},
		{Name: "Mutation.login"},
		{Name: "Mutation.editProfile", Roles: anyRole},
		{Name: "Mutation.verifyEmail"},
		{Name: "Mutation.createRestaurant", Roles: ownerOnly},
		{Name: "Mutation.editRestaurant", Roles: ownerOnly},
		{Name: "Mutation.deleteRestaurant", Roles: ownerOnly},
		{Name: "Mutation.createDish", Roles: ownerOnly},
		{Name: "Mutation.editDish", Roles: ownerOnly},
		{Name: "Mutation.deleteDish", Roles: ownerOnly},
	}
}

// NewRegistry builds the guard's allow-list table from ops.
func NewRegistry(ops []Operation) guard.Registry {
	reg := guard.Registry{}
	for _, op := range ops {
		reg.Register(op.Name, op.Roles...)
	}
	return reg
}

// OperationNames lists the names in ops, in table order.
func OperationNames(ops []Operation) []string {
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	return names
}
