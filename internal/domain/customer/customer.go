package customer

import (
	"fmt"
	"strings"
	"time"
)

// Customer is an end consumer whose products get serviced. Tickets snapshot
// the name and phone at creation, so edits here never rewrite history.
type Customer struct {
	id         uint
	operatorID uint
	name       string
	phone      string
	email      string
	address    string
	joinedAt   time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCustomer(operatorID uint, name, phone, email, address string, joinedAt time.Time) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	if joinedAt.IsZero() {
		joinedAt = time.Now().UTC()
	}
	now := time.Now().UTC()
	return &Customer{
		operatorID: operatorID,
		name:       name,
		phone:      phone,
		email:      strings.TrimSpace(email),
		address:    strings.TrimSpace(address),
		joinedAt:   joinedAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCustomer(id, operatorID uint, name, phone, email, address string, joinedAt, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:         id,
		operatorID: operatorID,
		name:       name,
		phone:      phone,
		email:      email,
		address:    address,
		joinedAt:   joinedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) OperatorID() uint     { return c.operatorID }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) JoinedAt() time.Time  { return c.joinedAt }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) SetID(id uint) {
	c.id = id
}

func (c *Customer) UpdateDetails(name, phone, email, address string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return fmt.Errorf("customer name is required")
	}
	if phone == "" {
		return fmt.Errorf("customer phone is required")
	}
	c.name = name
	c.phone = phone
	c.email = strings.TrimSpace(email)
	c.address = strings.TrimSpace(address)
	c.updatedAt = time.Now().UTC()
	return nil
}
