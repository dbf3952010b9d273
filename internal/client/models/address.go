package models

// Address is a postal address. On create, ID is empty and filled in by the
// provider.
type Address struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Street1 string `json:"street1,omitempty"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// DisplayName is the name, falling back to the company.
func (a Address) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Company
}

// Parcel dimensions are in inches, weight in ounces.
type Parcel struct {
	ID     string  `json:"id,omitempty"`
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Weight float64 `json:"weight"`
}
