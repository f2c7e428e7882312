package domain

import "github.com/golang-jwt/jwt/v5"

// User roles. Admin manages users and branches; staff records sales and
// reads reports.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
