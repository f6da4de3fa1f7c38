package entity

import "time"

// LogMessage is a log record as stored in the database.
type LogMessage struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Module    string    `json:"module" bson:"module"`
	Level     string    `json:"level" bson:"level"`
	Text      string    `json:"text" bson:"text"`
}

func (m *LogMessage) DataType() string {
	return "log"
}
