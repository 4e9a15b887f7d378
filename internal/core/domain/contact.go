package domain

// Contact is a person expenses can be split with. Contacts are immutable once created.
type Contact struct {
	ContactID string `json:"contactID"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	AuditFields
}

// PaymentRecipient is the identifier payment apps address the contact by.
func (c Contact) PaymentRecipient() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Name
}
