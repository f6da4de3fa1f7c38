package entity

// Customer carries the billing data sent to the gateway. Country is the
// numeric ISO 3166-1 code ("250" for France); it is coerced to an integer
// when the billing address is serialized.
type Customer struct {
	Email     string `json:"email" bson:"email"`
	FirstName string `json:"firstname" bson:"firstname"`
	LastName  string `json:"lastname" bson:"lastname"`
	Address   string `json:"address" bson:"address"`
	PostCode  string `json:"postcode" bson:"postcode"`
	City      string `json:"city" bson:"city"`
	Country   string `json:"country" bson:"country"`
}

// Cart describes the shopping cart summary the gateway displays. The
// gateway caps the total quantity at two digits.
type Cart struct {
	TotalQuantity int `json:"total_quantity" bson:"total_quantity"`
}

// ReturnField is one entry of the PBX_RETOUR descriptor: the callback
// variable name and the one-letter gateway code bound to it.
type ReturnField struct {
	Key   string `json:"key" bson:"key" yaml:"key"`
	Value string `json:"value" bson:"value" yaml:"value"`
}
