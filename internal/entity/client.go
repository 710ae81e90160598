package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Client JSON field names follow the SPA wire format.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Zip       string    `json:"zip,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientPatch carries the fields of a partial update. Nil means "leave unchanged".
type ClientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	TaxID   *string `json:"tax_id"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
}

// Apply merges the patch onto c, leaving absent fields untouched.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}

	if p.Email != nil {
		c.Email = *p.Email
	}

	if p.TaxID != nil {
		c.TaxID = *p.TaxID
	}

	if p.Phone != nil {
		c.Phone = *p.Phone
	}

	if p.Address != nil {
		c.Address = *p.Address
	}

	if p.City != nil {
		c.City = *p.City
	}

	if p.State != nil {
		c.State = *p.State
	}

	if p.Zip != nil {
		c.Zip = *p.Zip
	}

	if p.Country != nil {
		c.Country = *p.Country
	}
}
