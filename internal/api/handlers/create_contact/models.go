package create_contact

import (
	submitContact "github.com/m04kA/SWC-BookingService/internal/usecase/submit_contact"
)

// CreateContactRequest HTTP request model. "website" is the honeypot.
type CreateContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Website   string `json:"website"`
	CsrfToken string `json:"csrfToken"`
}

// CreateContactResponse HTTP response model
type CreateContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateContactRequest) ToUseCaseRequest(clientKey string) *submitContact.Request {
	return &submitContact.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		Honeypot:  r.Website,
		ClientKey: clientKey,
	}
}
