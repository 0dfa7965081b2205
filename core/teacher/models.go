package teacher

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/studyline/studyline/core"
)

// Roles
const (
	// RoleAdmin is the reserved wildcard role: it passes every allow-list.
	RoleAdmin = "admin"

	// RoleDefault is assigned to newly created teachers.
	RoleDefault = "teacher"
)

type Teacher struct {
	ID           int64  `json:"id" db:"id"`
	Login        string `json:"login" db:"login"`
	FullName     string `json:"full_name" db:"full_name"`
	Role         string `json:"role" db:"role"`
	PasswordHash []byte `json:"-" db:"password_hash"`
}

func (t *Teacher) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	t.PasswordHash = hash
	return nil
}

func (t *Teacher) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(t.PasswordHash, []byte(pwd))
}

func (t *Teacher) IsAdmin() bool {
	return t.Role == RoleAdmin
}

// Public is the listing projection of a Teacher: no login, no hash.
type Public struct {
	ID       int64  `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Role     string `json:"role" db:"role"`
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Login    string `json:"login" validate:"required,min=3,alphanum_"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate, svc *Service) error {
	nt.Login = core.CleanString(nt.Login, true /* lower */)
	nt.FullName = core.CleanString(nt.FullName)

	if err := validate.Struct(nt); err != nil {
		return err
	}
	return svc.CheckLoginUniqueness(nt.Login)
}

// EditLogin changes a teacher's login.
type EditLogin struct {
	Login string `json:"login" validate:"required,min=3,alphanum_"`
}

func (e *EditLogin) Validate(validate *validator.Validate) error {
	e.Login = core.CleanString(e.Login, true /* lower */)
	return validate.Struct(e)
}

// EditPassword changes a teacher's password.
type EditPassword struct {
	Password string `json:"password" validate:"required"`
}

func (e *EditPassword) Validate(validate *validator.Validate) error {
	return validate.Struct(e)
}

// EditFullName changes a teacher's display name.
type EditFullName struct {
	FullName string `json:"full_name" validate:"required"`
}

func (e *EditFullName) Validate(validate *validator.Validate) error {
	e.FullName = core.CleanString(e.FullName)
	return validate.Struct(e)
}
