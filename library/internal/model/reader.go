package model

import (
	"time"

	"github.com/google/uuid"
)

type Reader struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	MemberID    string     `json:"memberId" db:"member_id"`
	Name        string     `json:"name" db:"name"`
	Email       string     `json:"email" db:"email"`
	NIC         *string    `json:"nic,omitempty" db:"nic"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	Address     *string    `json:"address,omitempty" db:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	CreatedBy   string     `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedBy   *string    `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	DeletedBy   *string    `json:"deletedBy,omitempty" db:"deleted_by"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

type ReaderSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateReaderRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Email       string  `json:"email" validate:"required,email"`
	NIC         *string `json:"nic" validate:"omitempty,nic"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address"`
	DateOfBirth *Date   `json:"dateOfBirth"`
}

type UpdateReaderRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	NIC         *string `json:"nic" validate:"omitempty,nic"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address"`
	DateOfBirth *Date   `json:"dateOfBirth"`
}

func (r UpdateReaderRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.NIC == nil &&
		r.Phone == nil && r.Address == nil && r.DateOfBirth == nil
}

type ReaderFilter struct {
	Name  string `query:"name"`
	Email string `query:"email"`
	NIC   string `query:"nic"`
	Phone string `query:"phone"`
}

type ReaderResponse struct {
	Message string `json:"message"`
	Reader  Reader `json:"reader"`
}
