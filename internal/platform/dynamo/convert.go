package dynamo

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/phrazzld/task-repository/internal/store"
)

// ErrUnsupportedAttribute is returned when an item carries a value that
// cannot be written to DynamoDB.
var ErrUnsupportedAttribute = errors.New("unsupported attribute value")

// toAttributeValues converts an item into the SDK representation.
func toAttributeValues(item store.Item) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(item))
	for name, attr := range item {
		av, err := toAttributeValue(attr)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

func toAttributeValue(attr store.Attribute) (types.AttributeValue, error) {
	switch attr.Kind() {
	case store.KindString:
		v, _ := attr.AsString()
		return &types.AttributeValueMemberS{Value: v}, nil
	case store.KindNumber:
		v, _ := attr.AsNumber()
		return &types.AttributeValueMemberN{Value: v}, nil
	case store.KindBinary:
		v, _ := attr.AsBinary()
		return &types.AttributeValueMemberB{Value: v}, nil
	case store.KindBool:
		v, _ := attr.AsBool()
		return &types.AttributeValueMemberBOOL{Value: v}, nil
	case store.KindNull:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAttribute, attr.Kind())
	}
}

// fromAttributeValues converts an SDK item into a store.Item. Lists, maps
// and sets are kept as opaque composite attributes.
func fromAttributeValues(values map[string]types.AttributeValue) store.Item {
	item := make(store.Item, len(values))
	for name, av := range values {
		item[name] = fromAttributeValue(av)
	}
	return item
}

func fromAttributeValue(av types.AttributeValue) store.Attribute {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return store.S(v.Value)
	case *types.AttributeValueMemberN:
		return store.N(v.Value)
	case *types.AttributeValueMemberB:
		return store.B(v.Value)
	case *types.AttributeValueMemberBOOL:
		return store.Bool(v.Value)
	case *types.AttributeValueMemberNULL:
		return store.Null()
	default:
		return store.Composite()
	}
}
