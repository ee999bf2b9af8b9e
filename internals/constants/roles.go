package constants

// 클럽 내 역할
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleMember = "member"
)

// AllowedRoles: 역할 검증용
var AllowedRoles = map[string]bool{
	RoleOwner:  true,
	RoleAdmin:  true,
	RoleStaff:  true,
	RoleMember: true,
}
