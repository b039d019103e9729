package service

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/caffee/division/division"
)

// toStatus turns a DivByZero into an InvalidArgument status carrying the
// variant name as a StringValue detail.
func toStatus(err error) error {
	e, ok := division.As(err)
	if !ok {
		return status.Errorf(codes.Internal, "unexpected error: %v", err)
	}

	st := status.New(codes.InvalidArgument, e.Message())
	detailed, detailErr := st.WithDetails(wrapperspb.String(e.String()))
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// fromStatus restores the DivByZero behind a status built by toStatus.
// Other errors are returned unchanged.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return err
	}

	for _, detail := range st.Details() {
		name, ok := detail.(*wrapperspb.StringValue)
		if !ok {
			continue
		}
		if e, ok := division.Parse(name.GetValue()); ok {
			return e
		}
	}
	// peers that drop details still send the message
	if e, ok := division.FromMessage(st.Message()); ok {
		return e
	}
	return err
}
