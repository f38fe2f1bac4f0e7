package main

import (
	"context"

	"github.com/wakahq/momo-sms-importer/pkg/processor"
)

type MessageProcessor interface {
	ProcessBatch(
		ctx context.Context,
		messages []processor.Message,
	) (string, error)
	Simulate(
		ctx context.Context,
		message processor.Message,
	) (string, error)
}
