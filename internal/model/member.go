package model

import "github.com/deppfellow/fitness-center/internal/validation"

// Member is a registered person at the fitness center.
type Member struct {
	ID    int
	Name  string
	Email string
	Phone string
}

// MemberFields is the full set of writable Member fields.
type MemberFields struct {
	Name  string
	Email string
	Phone string
}

type CreateMemberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (r *CreateMemberRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateMemberRequest) Fields() MemberFields {
	return MemberFields{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type ListMembersRequest struct{}

func (r *ListMembersRequest) Validate() error {
	return nil
}

type GetMemberRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *GetMemberRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateMemberRequest replaces every writable field of a member.
type UpdateMemberRequest struct {
	ID    int    `param:"id" json:"-"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (r *UpdateMemberRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateMemberRequest) Fields() MemberFields {
	return MemberFields{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type DeleteMemberRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *DeleteMemberRequest) Validate() error {
	return validation.Struct(r)
}
