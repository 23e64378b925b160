package dynamo

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// ErrTableNotFound is returned when the configured table does not exist.
var ErrTableNotFound = errors.New("dynamodb table not found")

// ErrThrottled is returned when DynamoDB rejects a request for capacity.
var ErrThrottled = errors.New("dynamodb request throttled")

// MapError maps an SDK error to an error the store layer understands.
// The original error stays in the chain.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %w", ErrTableNotFound, err)
	}

	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	var limit *types.RequestLimitExceeded
	if errors.As(err, &limit) {
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ThrottlingException" {
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	return err
}
