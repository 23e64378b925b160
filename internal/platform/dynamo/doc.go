// Package dynamo adapts the AWS SDK DynamoDB client to store.ItemClient.
//
// The package converts between store.Item and the SDK's attribute value
// union, issues single-item PutItem and GetItem requests, and maps SDK
// errors onto the store error taxonomy. Callers build the SDK client from
// config.AWSConfig with NewFromConfig, or inject any API implementation
// with New.
package dynamo
