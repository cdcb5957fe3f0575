package ticket

import (
	"fmt"
	"strings"
	"time"

	"billu/internal/domain/ticket/valueobjects"
)

// NewAssigneeSentinel is the placeholder the intake form uses while the
// operator is still typing a brand-new assignee name. It must never reach a
// persisted ticket.
const NewAssigneeSentinel = "__new__"

// CenterDetails carries the assignee and call-tracking fields of a Demo or
// Service ticket.
type CenterDetails struct {
	serviceCenterID   uint
	serviceCenterName string
	callID            string
	uniqueID          string
}

func (d CenterDetails) ServiceCenterID() uint     { return d.serviceCenterID }
func (d CenterDetails) ServiceCenterName() string { return d.serviceCenterName }
func (d CenterDetails) CallID() string            { return d.callID }
func (d CenterDetails) UniqueID() string          { return d.uniqueID }

// TechDetails carries the assignee and financial fields of a Third Party or
// In Store ticket. Amounts are non-negative and default to zero when the
// intake form leaves them blank.
type TechDetails struct {
	technicianID     uint
	technicianName   string
	serviceAmount    float64
	commissionAmount float64
	amountReceived   float64
}

func (d TechDetails) TechnicianID() uint        { return d.technicianID }
func (d TechDetails) TechnicianName() string    { return d.technicianName }
func (d TechDetails) ServiceAmount() float64    { return d.serviceAmount }
func (d TechDetails) CommissionAmount() float64 { return d.commissionAmount }
func (d TechDetails) AmountReceived() float64   { return d.amountReceived }

// Ticket is the aggregate root of the repair workflow. Exactly one of
// centerDetails/techDetails is set, determined by the category.
type Ticket struct {
	id            uint
	ticketNumber  string
	operatorID    uint
	customerID    uint
	customerName  string
	customerPhone string
	productID     uint
	productName   string
	serialNumber  string
	companyName   string
	brand         string
	model         string
	category      valueobjects.Category
	issueType     valueobjects.IssueType
	description   string
	status        valueobjects.Status
	priority      valueobjects.Priority
	centerDetails *CenterDetails
	techDetails   *TechDetails
	endDate       *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// CreateTicketParams bundles the inputs for NewTicket.
type CreateTicketParams struct {
	TicketNumber  string
	OperatorID    uint
	CustomerID    uint
	CustomerName  string
	CustomerPhone string
	ProductID     uint
	ProductName   string
	SerialNumber  string
	CompanyName   string
	Brand         string
	Model         string
	Category      valueobjects.Category
	IssueType     string
	Description   string
	Priority      valueobjects.Priority

	// Service-center assignment and call tracking, for Demo/Service.
	ServiceCenterID   uint
	ServiceCenterName string
	CallID            string
	UniqueID          string

	// Technician assignment and financials, for Third Party/In Store.
	TechnicianID     uint
	TechnicianName   string
	ServiceAmount    float64
	CommissionAmount float64
	AmountReceived   float64
}

// NewTicket validates the params against the category rules and returns a
// Pending ticket.
func NewTicket(p CreateTicketParams) (*Ticket, error) {
	if strings.TrimSpace(p.TicketNumber) == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if p.OperatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	if p.CustomerID == 0 {
		return nil, fmt.Errorf("customer is required")
	}
	if p.ProductID == 0 {
		return nil, fmt.Errorf("product is required")
	}
	if !p.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", p.Category)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", p.Priority)
	}
	issueType, err := valueobjects.NewIssueType(p.Category, p.IssueType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &Ticket{
		ticketNumber:  strings.TrimSpace(p.TicketNumber),
		operatorID:    p.OperatorID,
		customerID:    p.CustomerID,
		customerName:  strings.TrimSpace(p.CustomerName),
		customerPhone: strings.TrimSpace(p.CustomerPhone),
		productID:     p.ProductID,
		productName:   strings.TrimSpace(p.ProductName),
		serialNumber:  strings.TrimSpace(p.SerialNumber),
		companyName:   strings.TrimSpace(p.CompanyName),
		brand:         strings.TrimSpace(p.Brand),
		model:         strings.TrimSpace(p.Model),
		category:      p.Category,
		issueType:     issueType,
		description:   strings.TrimSpace(p.Description),
		status:        valueobjects.StatusPending,
		priority:      p.Priority,
		createdAt:     now,
		updatedAt:     now,
	}

	switch {
	case p.Category.UsesServiceCenter():
		details, err := newCenterDetails(p.ServiceCenterID, p.ServiceCenterName, p.CallID, p.UniqueID)
		if err != nil {
			return nil, err
		}
		t.centerDetails = details
	case p.Category.UsesTechnician():
		details, err := newTechDetails(p.TechnicianID, p.TechnicianName, p.ServiceAmount, p.CommissionAmount, p.AmountReceived)
		if err != nil {
			return nil, err
		}
		t.techDetails = details
	}

	return t, nil
}

func newCenterDetails(id uint, name, callID, uniqueID string) (*CenterDetails, error) {
	name = strings.TrimSpace(name)
	if name == NewAssigneeSentinel {
		return nil, fmt.Errorf("service center name placeholder was not resolved")
	}
	if name == "" {
		return nil, fmt.Errorf("service center name is required")
	}
	// id may be zero: assignment is by name and stays valid even when the
	// auto-provisioned center row failed to write.
	return &CenterDetails{
		serviceCenterID:   id,
		serviceCenterName: name,
		callID:            strings.TrimSpace(callID),
		uniqueID:          strings.TrimSpace(uniqueID),
	}, nil
}

func newTechDetails(id uint, name string, serviceAmount, commissionAmount, amountReceived float64) (*TechDetails, error) {
	name = strings.TrimSpace(name)
	if name == NewAssigneeSentinel {
		return nil, fmt.Errorf("technician name placeholder was not resolved")
	}
	if id == 0 {
		return nil, fmt.Errorf("technician is required for this category")
	}
	if name == "" {
		return nil, fmt.Errorf("technician name is required")
	}
	if serviceAmount < 0 {
		return nil, fmt.Errorf("service amount cannot be negative")
	}
	if commissionAmount < 0 {
		return nil, fmt.Errorf("commission amount cannot be negative")
	}
	if amountReceived < 0 {
		return nil, fmt.Errorf("amount received cannot be negative")
	}
	return &TechDetails{
		technicianID:     id,
		technicianName:   name,
		serviceAmount:    serviceAmount,
		commissionAmount: commissionAmount,
		amountReceived:   amountReceived,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without re-running
// creation validation.
type ReconstructTicketParams struct {
	ID            uint
	TicketNumber  string
	OperatorID    uint
	CustomerID    uint
	CustomerName  string
	CustomerPhone string
	ProductID     uint
	ProductName   string
	SerialNumber  string
	CompanyName   string
	Brand         string
	Model         string
	Category      valueobjects.Category
	IssueType     string
	Description   string
	Status        valueobjects.Status
	Priority      valueobjects.Priority
	CenterDetails *CenterDetails
	TechDetails   *TechDetails
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructTicket(p ReconstructTicketParams) *Ticket {
	return &Ticket{
		id:            p.ID,
		ticketNumber:  p.TicketNumber,
		operatorID:    p.OperatorID,
		customerID:    p.CustomerID,
		customerName:  p.CustomerName,
		customerPhone: p.CustomerPhone,
		productID:     p.ProductID,
		productName:   p.ProductName,
		serialNumber:  p.SerialNumber,
		companyName:   p.CompanyName,
		brand:         p.Brand,
		model:         p.Model,
		category:      p.Category,
		issueType:     valueobjects.IssueType(p.IssueType),
		description:   p.Description,
		status:        p.Status,
		priority:      p.Priority,
		centerDetails: p.CenterDetails,
		techDetails:   p.TechDetails,
		endDate:       p.EndDate,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

// ReconstructCenterDetails rebuilds center details from persistence.
func ReconstructCenterDetails(id uint, name, callID, uniqueID string) *CenterDetails {
	return &CenterDetails{
		serviceCenterID:   id,
		serviceCenterName: name,
		callID:            callID,
		uniqueID:          uniqueID,
	}
}

// ReconstructTechDetails rebuilds technician details from persistence.
func ReconstructTechDetails(id uint, name string, serviceAmount, commissionAmount, amountReceived float64) *TechDetails {
	return &TechDetails{
		technicianID:     id,
		technicianName:   name,
		serviceAmount:    serviceAmount,
		commissionAmount: commissionAmount,
		amountReceived:   amountReceived,
	}
}

func (t *Ticket) ID() uint                      { return t.id }
func (t *Ticket) TicketNumber() string          { return t.ticketNumber }
func (t *Ticket) OperatorID() uint              { return t.operatorID }
func (t *Ticket) CustomerID() uint              { return t.customerID }
func (t *Ticket) CustomerName() string          { return t.customerName }
func (t *Ticket) CustomerPhone() string         { return t.customerPhone }
func (t *Ticket) ProductID() uint               { return t.productID }
func (t *Ticket) ProductName() string           { return t.productName }
func (t *Ticket) SerialNumber() string          { return t.serialNumber }
func (t *Ticket) CompanyName() string           { return t.companyName }
func (t *Ticket) Brand() string                 { return t.brand }
func (t *Ticket) Model() string                 { return t.model }
func (t *Ticket) Category() valueobjects.Category { return t.category }
func (t *Ticket) IssueType() valueobjects.IssueType { return t.issueType }
func (t *Ticket) Description() string           { return t.description }
func (t *Ticket) Status() valueobjects.Status   { return t.status }
func (t *Ticket) Priority() valueobjects.Priority { return t.priority }
func (t *Ticket) CenterDetails() *CenterDetails { return t.centerDetails }
func (t *Ticket) TechDetails() *TechDetails     { return t.techDetails }
func (t *Ticket) EndDate() *time.Time           { return t.endDate }
func (t *Ticket) CreatedAt() time.Time          { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time          { return t.updatedAt }

// SetID assigns the persistence identity after the first save.
func (t *Ticket) SetID(id uint) {
	t.id = id
}

// ChangeStatus moves the ticket to a new status. Moving into Resolved
// requires the caller to pass confirmed=true; the transition is rejected
// otherwise so a stray click cannot close a ticket.
func (t *Ticket) ChangeStatus(next valueobjects.Status, confirmed bool) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", next)
	}
	if next.IsResolved() && !t.status.IsResolved() && !confirmed {
		return fmt.Errorf("resolving a ticket requires confirmation")
	}
	if t.status == next {
		return nil
	}
	t.status = next
	t.updatedAt = time.Now().UTC()
	return nil
}

// SetEndDate records the expected or actual completion date. The date may
// not precede creation.
func (t *Ticket) SetEndDate(endDate time.Time) error {
	if endDate.Before(t.createdAt) {
		return fmt.Errorf("end date cannot be before ticket creation")
	}
	d := endDate
	t.endDate = &d
	t.updatedAt = time.Now().UTC()
	return nil
}

// ClearEndDate removes a previously recorded end date.
func (t *Ticket) ClearEndDate() {
	t.endDate = nil
	t.updatedAt = time.Now().UTC()
}

// UpdateDescription replaces the free-text description.
func (t *Ticket) UpdateDescription(description string) {
	t.description = strings.TrimSpace(description)
	t.updatedAt = time.Now().UTC()
}

// UpdatePriority replaces the priority.
func (t *Ticket) UpdatePriority(p valueobjects.Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %s", p)
	}
	t.priority = p
	t.updatedAt = time.Now().UTC()
	return nil
}

// UpdateIssueType replaces the issue type, revalidating it against the
// ticket's category.
func (t *Ticket) UpdateIssueType(issueType string) error {
	it, err := valueobjects.NewIssueType(t.category, issueType)
	if err != nil {
		return err
	}
	t.issueType = it
	t.updatedAt = time.Now().UTC()
	return nil
}

// ReassignServiceCenter repoints a Demo/Service ticket at another center.
// Call-tracking fields are preserved.
func (t *Ticket) ReassignServiceCenter(id uint, name string) error {
	if !t.category.UsesServiceCenter() {
		return fmt.Errorf("ticket category %s is not assigned to a service center", t.category)
	}
	callID, uniqueID := "", ""
	if t.centerDetails != nil {
		callID, uniqueID = t.centerDetails.callID, t.centerDetails.uniqueID
	}
	details, err := newCenterDetails(id, name, callID, uniqueID)
	if err != nil {
		return err
	}
	t.centerDetails = details
	t.updatedAt = time.Now().UTC()
	return nil
}

// ReassignTechnician repoints a Third Party/In Store ticket at another
// technician, also setting the financial fields.
func (t *Ticket) ReassignTechnician(id uint, name string, serviceAmount, commissionAmount, amountReceived float64) error {
	if !t.category.UsesTechnician() {
		return fmt.Errorf("ticket category %s is not assigned to a technician", t.category)
	}
	details, err := newTechDetails(id, name, serviceAmount, commissionAmount, amountReceived)
	if err != nil {
		return err
	}
	t.techDetails = details
	t.updatedAt = time.Now().UTC()
	return nil
}

// UpdateAmounts adjusts the financial fields of a technician ticket.
func (t *Ticket) UpdateAmounts(serviceAmount, commissionAmount, amountReceived float64) error {
	if t.techDetails == nil {
		return fmt.Errorf("ticket category %s has no financial fields", t.category)
	}
	details, err := newTechDetails(t.techDetails.technicianID, t.techDetails.technicianName, serviceAmount, commissionAmount, amountReceived)
	if err != nil {
		return err
	}
	t.techDetails = details
	t.updatedAt = time.Now().UTC()
	return nil
}

// SetCallTracking records external call-center identifiers on a
// Demo/Service ticket.
func (t *Ticket) SetCallTracking(callID, uniqueID string) error {
	if t.centerDetails == nil {
		return fmt.Errorf("ticket category %s has no call tracking fields", t.category)
	}
	d := *t.centerDetails
	d.callID = strings.TrimSpace(callID)
	d.uniqueID = strings.TrimSpace(uniqueID)
	t.centerDetails = &d
	t.updatedAt = time.Now().UTC()
	return nil
}
