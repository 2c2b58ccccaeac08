package role

// Role — роль пользователя в системе
type Role string

const (
	User  Role = "user"
	Admin Role = "admin"
)

// Valid проверяет, что роль одна из известных
func (r Role) Valid() bool {
	return r == User || r == Admin
}
