package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
)
