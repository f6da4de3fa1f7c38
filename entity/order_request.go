package entity

// OrderRequest is the API input for every request variant. Amount is
// expressed in minor currency units; Reference is generated when empty.
type OrderRequest struct {
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency,omitempty"`
	Reference    string            `json:"reference,omitempty"`
	Language     string            `json:"language,omitempty"`
	Customer     Customer          `json:"customer"`
	Cart         Cart              `json:"cart"`
	ReturnFields []ReturnField     `json:"return_fields,omitempty"`
	ReturnUrls   ReturnUrls        `json:"return_urls,omitempty"`
	Installments []Installment     `json:"installments,omitempty"`
	Plan         *SubscriptionPlan `json:"plan,omitempty"`
}

// ReturnUrls overrides the configured return routes per outcome. Empty
// fields fall back to the configured routes.
type ReturnUrls struct {
	Accepted string `json:"accepted,omitempty"`
	Refused  string `json:"refused,omitempty"`
	Aborted  string `json:"aborted,omitempty"`
	Waiting  string `json:"waiting,omitempty"`
	Verify   string `json:"verify,omitempty"`
}

// Installment is one entry of a multi-installment schedule. Number runs
// from 1 to 4; Date uses the 2006-01-02 layout and is ignored for the
// first installment, which is always due immediately.
type Installment struct {
	Number   int     `json:"number"`
	Date     string  `json:"date,omitempty"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// SubscriptionPlan describes a recurring payment: amount per charge in
// minor units, day of month, frequency in months, number of charges and
// shift in days before the first one.
type SubscriptionPlan struct {
	Amount    float64 `json:"amount"`
	Day       int     `json:"day"`
	Frequency int     `json:"frequency"`
	Count     int     `json:"count"`
	Shift     int     `json:"shift"`
}
