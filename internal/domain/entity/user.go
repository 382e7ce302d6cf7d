package entity

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User representa un usuario del panel. Password puede estar en texto plano (datos de demo)
// o como hash bcrypt.
type User struct {
	ID       int    `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
}
