package services

import (
	"context"

	"paybox/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SaveRequestRecord(ctx context.Context, record *entity.RequestRecord) error
	GetRequestRecord(ctx context.Context, reference string) (*entity.RequestRecord, error)
}

type Data interface {
	DataType() string
}
