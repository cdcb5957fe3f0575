package technician

import (
	"fmt"
	"strings"
	"time"
)

// Technician is a field worker who takes Third Party and In Store tickets.
// Portal credentials are a plaintext userId/password pair checked by direct
// string equality; this mirrors the system of record and is isolated from
// operator authentication.
type Technician struct {
	id         uint
	operatorID uint
	name       string
	email      string
	phone      string
	address    string
	skills     string
	portalUser string
	portalPass string
	createdAt  time.Time
	updatedAt  time.Time
}

type CreateTechnicianParams struct {
	OperatorID uint
	Name       string
	Email      string
	Phone      string
	Address    string
	Skills     string
	PortalUser string
	PortalPass string
}

func NewTechnician(p CreateTechnicianParams) (*Technician, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("technician name is required")
	}
	if p.OperatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	now := time.Now().UTC()
	return &Technician{
		operatorID: p.OperatorID,
		name:       name,
		email:      strings.TrimSpace(p.Email),
		phone:      strings.TrimSpace(p.Phone),
		address:    strings.TrimSpace(p.Address),
		skills:     strings.TrimSpace(p.Skills),
		portalUser: strings.TrimSpace(p.PortalUser),
		portalPass: p.PortalPass,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type ReconstructTechnicianParams struct {
	ID         uint
	OperatorID uint
	Name       string
	Email      string
	Phone      string
	Address    string
	Skills     string
	PortalUser string
	PortalPass string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructTechnician(p ReconstructTechnicianParams) *Technician {
	return &Technician{
		id:         p.ID,
		operatorID: p.OperatorID,
		name:       p.Name,
		email:      p.Email,
		phone:      p.Phone,
		address:    p.Address,
		skills:     p.Skills,
		portalUser: p.PortalUser,
		portalPass: p.PortalPass,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}
}

func (t *Technician) ID() uint             { return t.id }
func (t *Technician) OperatorID() uint     { return t.operatorID }
func (t *Technician) Name() string         { return t.name }
func (t *Technician) Email() string        { return t.email }
func (t *Technician) Phone() string        { return t.phone }
func (t *Technician) Address() string      { return t.address }
func (t *Technician) Skills() string       { return t.skills }
func (t *Technician) PortalUser() string   { return t.portalUser }
func (t *Technician) CreatedAt() time.Time { return t.createdAt }
func (t *Technician) UpdatedAt() time.Time { return t.updatedAt }

func (t *Technician) SetID(id uint) {
	t.id = id
}

// HasPortalAccess reports whether portal credentials were issued.
func (t *Technician) HasPortalAccess() bool {
	return t.portalUser != "" && t.portalPass != ""
}

// VerifyPortalCredentials checks the plaintext pair by string equality.
func (t *Technician) VerifyPortalCredentials(user, pass string) bool {
	if !t.HasPortalAccess() {
		return false
	}
	return t.portalUser == strings.TrimSpace(user) && t.portalPass == pass
}

// PortalPass exposes the stored password for persistence mapping only.
func (t *Technician) PortalPass() string {
	return t.portalPass
}

func (t *Technician) UpdateDetails(name, email, phone, address, skills string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("technician name is required")
	}
	t.name = name
	t.email = strings.TrimSpace(email)
	t.phone = strings.TrimSpace(phone)
	t.address = strings.TrimSpace(address)
	t.skills = strings.TrimSpace(skills)
	t.updatedAt = time.Now().UTC()
	return nil
}

// SetPortalCredentials issues or replaces the portal pair.
func (t *Technician) SetPortalCredentials(user, pass string) error {
	user = strings.TrimSpace(user)
	if user == "" || pass == "" {
		return fmt.Errorf("portal user ID and password are required")
	}
	t.portalUser = user
	t.portalPass = pass
	t.updatedAt = time.Now().UTC()
	return nil
}
