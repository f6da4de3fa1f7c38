package entity

import "time"

// BuiltRequest is the finished artifact handed to the rendering layer:
// the signed parameter mapping plus the gateway URL it must be posted to.
type BuiltRequest struct {
	Url        string
	Reference  string
	Parameters *Parameters
}

// RequestRecord is the persisted trace of a built request.
type RequestRecord struct {
	Reference   string    `json:"reference" bson:"reference"`
	RequestType string    `json:"request_type" bson:"request_type"`
	Amount      string    `json:"amount" bson:"amount"`
	Currency    string    `json:"currency" bson:"currency"`
	Url         string    `json:"url" bson:"url"`
	Fields      []Field   `json:"fields" bson:"fields"`
	Signature   string    `json:"signature" bson:"signature"`
	TimeCreated time.Time `json:"time_created" bson:"time_created"`
}

// RequestEvent is published to the message broker after a request is built
// and recorded.
type RequestEvent struct {
	Reference   string    `json:"reference"`
	RequestType string    `json:"request_type"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Time        time.Time `json:"time"`
}
