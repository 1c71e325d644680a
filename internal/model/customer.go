// internal/model/customer.go
package model

// CustomerConfig is the per-form customer document, read-only here.
type CustomerConfig struct {
	FormID      string      `db:"form_id" json:"form_id"`
	CompanyInfo CompanyInfo `db:"company_info" json:"company_info"`
	Branding    Branding    `db:"branding" json:"branding"`
	Promos      []Promo     `db:"promos" json:"promos"`
}

type CompanyInfo struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	RepName string  `json:"rep_name"`
	Website string  `json:"website"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Social  Social  `json:"social"`
	RegLink string  `json:"regLink"`
}

type Address struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
}

type Social struct {
	Selfie  string `json:"selfie"`
	FB      string `json:"fb"`
	Insta   string `json:"insta"`
	Twitter string `json:"twitter"`
}

type Branding struct {
	Gradient Gradient `json:"gradient"`
}

type Gradient struct {
	LColor string `json:"l_color"`
	RColor string `json:"r_color"`
}

// Promo: only the first entry is consumed today. Value is kept as a
// string and rendered as "$<value>" by the promo email builder.
type Promo struct {
	Code    string `json:"code"`
	FeeName string `json:"fee_name"`
	Value   string `json:"value"`
	Live    bool   `json:"live"`
}
