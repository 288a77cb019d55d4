package entities

import "errors"

var ErrUserNotFound = errors.New("user not found")

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID       string
	Email    string
	Name     string
	Phone    string
	Image    string
	Birthday string
	Role     UserRole
}
