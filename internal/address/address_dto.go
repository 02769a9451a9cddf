package address

type CreateAddressRequest struct {
	AddressLine1  string `json:"address_line1" binding:"required"`
	AddressLine2  string `json:"address_line2"`
	City          string `json:"city" binding:"required"`
	StateProvince string `json:"state_province" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
}

type UpdateAddressRequest struct {
	AddressLine1  string `json:"address_line1" binding:"required"`
	AddressLine2  string `json:"address_line2"`
	City          string `json:"city" binding:"required"`
	StateProvince string `json:"state_province" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
}

type AddressResponse struct {
	AddressID     int    `json:"address_id"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city"`
	StateProvince string `json:"state_province"`
	PostalCode    string `json:"postal_code"`
}
