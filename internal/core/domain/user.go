package domain

type Role struct {
	ID   uint64
	Name string
}

type User struct {
	ID       uint64
	Name     string
	Login    string
	Password string
	Image    []byte
	RoleID   uint64
	Role     *Role
}

type RegisterUserInput struct {
	Name     string
	Login    string
	Password string
}

// UpdateUserInput carries a partial user update. A zero value ("" or 0
// or nil) means the field was not supplied; blanking a field to empty
// is therefore not possible through this input.
type UpdateUserInput struct {
	Name     string
	Login    string
	Password string
	RoleID   uint64
	Image    []byte
}

func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == "" && in.Login == "" && in.Password == "" && in.RoleID == 0 && len(in.Image) == 0
}
