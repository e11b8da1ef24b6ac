package companyapimodels

import "github.com/pkg/errors"

type CompanyUserCommonData struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Position    string `json:"position"`
	IsAdmin     bool   `json:"is_admin"`
	CompanyID   string `json:"company_id"`
	Role        string `json:"role"`
}

type CompanyUser struct {
	ID string `json:"id"`
	CompanyUserCommonData
}

type CreateUser struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Position    string `json:"position"`
	IsAdmin     bool   `json:"is_admin"`
	IsManager   bool   `json:"is_manager"`
	CompanyID   string `json:"company_id"`
}

func (r CreateUser) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

type UpdateUser struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Position    *string `json:"position,omitempty"`
	Password    *string `json:"password,omitempty"`
}

type CreateCompany struct {
	Name         string `json:"name"`
	OrgNumber    string `json:"org_number"`
	Address      string `json:"address"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

func (r CreateCompany) Validate() error {
	if r.Name == "" {
		return errors.New("company name is required")
	}
	if len(r.OrgNumber) != 9 {
		return errors.New("organisation number must be 9 digits")
	}
	return nil
}

type CompanyView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrgNumber      string `json:"org_number"`
	Address        string `json:"address"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	HasHseHandbook bool   `json:"has_hse_handbook"`
}
