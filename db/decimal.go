package db

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// decodeAttr converts a DynamoDB attribute tree into plain Go values.
// Numbers stay arbitrary-precision (decimal.Decimal) until NormalizeNumbers
// prepares the tree for JSON encoding.
func decodeAttr(attr types.AttributeValue) any {
	switch v := attr.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		d, err := decimal.NewFromString(v.Value)
		if err != nil {
			return v.Value
		}
		return d
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for name, nested := range v.Value {
			m[name] = decodeAttr(nested)
		}
		return m
	case *types.AttributeValueMemberL:
		l := make([]any, 0, len(v.Value))
		for _, nested := range v.Value {
			l = append(l, decodeAttr(nested))
		}
		return l
	case *types.AttributeValueMemberSS:
		l := make([]any, 0, len(v.Value))
		for _, s := range v.Value {
			l = append(l, s)
		}
		return l
	case *types.AttributeValueMemberNS:
		l := make([]any, 0, len(v.Value))
		for _, n := range v.Value {
			l = append(l, decodeAttr(&types.AttributeValueMemberN{Value: n}))
		}
		return l
	default:
		return nil
	}
}

// NormalizeNumbers replaces every decimal in a decoded tree with a float64,
// preserving structure and all other values. Already-normalized values pass
// through unchanged, so re-running is a no-op.
func NormalizeNumbers(v any) any {
	switch t := v.(type) {
	case decimal.Decimal:
		f, _ := t.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, nested := range t {
			out[k] = NormalizeNumbers(nested)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, nested := range t {
			out = append(out, NormalizeNumbers(nested))
		}
		return out
	default:
		return v
	}
}
