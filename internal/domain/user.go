package domain

// Role is the access level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is one entry of the fixed credential directory.
// The stored JSON keeps the legacy "rol" key.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"rol"`
	ID       int    `json:"id"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"password,omitempty"`
}

// Directory is the fixed in-memory user list consulted by the session gate.
// Users are never created or deleted at runtime.
type Directory struct {
	users []User
}

// DefaultUsers returns the seed directory shipped with the demo.
func DefaultUsers() *Directory {
	return &Directory{users: []User{
		{Name: "Jose", Email: "jose@example.com", Password: "123456789", Role: RoleAdmin, ID: 1},
		{Name: "John Doe", Email: "john.doe@example.com", Password: "password", Role: RoleUser, ID: 2},
		{Name: "Jane Smith", Email: "jane.smith@example.com", Password: "password123", Role: RoleUser, ID: 3},
		{Name: "Maria Garcia", Email: "maria.garcia@example.com", Password: "qwerty", Role: RoleUser, ID: 4},
		{Name: "Mohammed Ahmed", Email: "mohammed.ahmed@example.com", Password: "password123", Role: RoleUser, ID: 5},
	}}
}

// NewDirectory builds a directory from an explicit user list.
func NewDirectory(users []User) *Directory {
	return &Directory{users: users}
}

// FindByCredentials returns the user whose email and password both match
// exactly, or false when no entry matches. Comparison is cleartext, which
// is an accepted property of the demo.
func (d *Directory) FindByCredentials(email, password string) (User, bool) {
	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}

// FindByID returns the user with the given id.
func (d *Directory) FindByID(id int) (User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// All returns a copy of the directory entries.
func (d *Directory) All() []User {
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}
