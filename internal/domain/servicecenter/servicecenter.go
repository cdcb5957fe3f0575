package servicecenter

import (
	"fmt"
	"strings"
	"time"
)

// AutoProvisionedAddress is the placeholder written when a center is created
// as a side effect of ticket intake rather than through the roster form.
const AutoProvisionedAddress = "Auto-generated from ticket - please update"

// ServiceCenter is an external partner location that Demo and Service
// tickets are routed to.
type ServiceCenter struct {
	id            uint
	operatorID    uint
	name          string
	companyName   string
	address       string
	contactNumber string
	category      string
	autoCreated   bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewServiceCenter creates a roster-managed center.
func NewServiceCenter(operatorID uint, name, companyName, address, contactNumber, category string) (*ServiceCenter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service center name is required")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	now := time.Now().UTC()
	return &ServiceCenter{
		operatorID:    operatorID,
		name:          name,
		companyName:   strings.TrimSpace(companyName),
		address:       strings.TrimSpace(address),
		contactNumber: strings.TrimSpace(contactNumber),
		category:      strings.TrimSpace(category),
		autoCreated:   false,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// AutoProvision creates a center from a ticket's free-text assignee name.
// Company falls back to "N/A" and the contact number falls back to the
// ticket's customer phone when the intake form left them blank.
func AutoProvision(operatorID uint, name, companyName, customerPhone, category string) (*ServiceCenter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service center name is required")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	company := strings.TrimSpace(companyName)
	if company == "" {
		company = "N/A"
	}
	now := time.Now().UTC()
	return &ServiceCenter{
		operatorID:    operatorID,
		name:          name,
		companyName:   company,
		address:       AutoProvisionedAddress,
		contactNumber: strings.TrimSpace(customerPhone),
		category:      strings.TrimSpace(category),
		autoCreated:   true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructServiceCenter rebuilds a center from persistence.
func ReconstructServiceCenter(
	id uint,
	operatorID uint,
	name string,
	companyName string,
	address string,
	contactNumber string,
	category string,
	autoCreated bool,
	createdAt time.Time,
	updatedAt time.Time,
) *ServiceCenter {
	return &ServiceCenter{
		id:            id,
		operatorID:    operatorID,
		name:          name,
		companyName:   companyName,
		address:       address,
		contactNumber: contactNumber,
		category:      category,
		autoCreated:   autoCreated,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *ServiceCenter) ID() uint              { return s.id }
func (s *ServiceCenter) OperatorID() uint      { return s.operatorID }
func (s *ServiceCenter) Name() string          { return s.name }
func (s *ServiceCenter) CompanyName() string   { return s.companyName }
func (s *ServiceCenter) Address() string       { return s.address }
func (s *ServiceCenter) ContactNumber() string { return s.contactNumber }
func (s *ServiceCenter) Category() string      { return s.category }
func (s *ServiceCenter) AutoCreated() bool     { return s.autoCreated }
func (s *ServiceCenter) CreatedAt() time.Time  { return s.createdAt }
func (s *ServiceCenter) UpdatedAt() time.Time  { return s.updatedAt }

func (s *ServiceCenter) SetID(id uint) {
	s.id = id
}

// UpdateDetails replaces the editable roster fields. Editing an
// auto-provisioned center clears the flag since the operator has now
// reviewed it.
func (s *ServiceCenter) UpdateDetails(name, companyName, address, contactNumber, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("service center name is required")
	}
	s.name = name
	s.companyName = strings.TrimSpace(companyName)
	s.address = strings.TrimSpace(address)
	s.contactNumber = strings.TrimSpace(contactNumber)
	s.category = strings.TrimSpace(category)
	s.autoCreated = false
	s.updatedAt = time.Now().UTC()
	return nil
}
