// Package serializer converts division operands and results to and from
// protobuf well-known types.
package serializer

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/caffee/division/division"
)

// Struct field names shared by the gRPC server and client.
const (
	FieldDividend = "dividend"
	FieldDivisor  = "divisor"
	FieldQuotient = "quotient"
	FieldError    = "error"
	FieldMessage  = "message"
)

// OperandsToProto packs a dividend/divisor pair.
func OperandsToProto(dividend, divisor float64) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			FieldDividend: structpb.NewNumberValue(dividend),
			FieldDivisor:  structpb.NewNumberValue(divisor),
		},
	}
}

// ProtoToOperands unpacks a pair built by OperandsToProto. Both fields
// must be present and numeric.
func ProtoToOperands(s *structpb.Struct) (dividend, divisor float64, err error) {
	dividend, err = numberField(s, FieldDividend)
	if err != nil {
		return 0, 0, err
	}
	divisor, err = numberField(s, FieldDivisor)
	if err != nil {
		return 0, 0, err
	}
	return dividend, divisor, nil
}

// ResultToProto encodes r as {"quotient": q} or {"error": name, "message": msg}.
func ResultToProto(r division.Result) *structpb.Struct {
	q, err := r.Get()
	if err == nil {
		return &structpb.Struct{
			Fields: map[string]*structpb.Value{
				FieldQuotient: structpb.NewNumberValue(q),
			},
		}
	}

	e, _ := division.As(err)
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			FieldError:   structpb.NewStringValue(e.String()),
			FieldMessage: structpb.NewStringValue(e.Message()),
		},
	}
}

// ProtoToResult decodes a struct built by ResultToProto.
func ProtoToResult(s *structpb.Struct) (division.Result, error) {
	if v, ok := s.GetFields()[FieldError]; ok {
		name := v.GetStringValue()
		e, ok := division.Parse(name)
		if !ok {
			return division.Result{}, fmt.Errorf("unknown division error %q", name)
		}
		return division.Failure(e), nil
	}

	q, err := numberField(s, FieldQuotient)
	if err != nil {
		return division.Result{}, err
	}
	return division.Quotient(q), nil
}

func numberField(s *structpb.Struct, name string) (float64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("missing field %q", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", name)
	}
	return n.NumberValue, nil
}
