package caifgrpc

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/modemlink/caif/caif"
)

// toStatus maps a structured codec error onto a gRPC status. The stable
// RuleID leads the message so the client side can reconstruct the error.
func toStatus(err error) error {
	var e *caif.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	code := codes.InvalidArgument
	if e.Kind == caif.KindInternal {
		code = codes.Internal
	}
	return status.Error(code, e.RuleID+": "+e.Message)
}

// fromStatus reconstructs a structured codec error from an RPC error when the
// server encoded a RuleID, and returns the error unchanged otherwise.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	ruleID, msg, found := strings.Cut(st.Message(), ": ")
	if !found || !strings.HasPrefix(ruleID, "CAIF-") {
		return err
	}
	return &caif.Error{Kind: kindForRule(ruleID), RuleID: ruleID, Message: msg}
}

func kindForRule(ruleID string) caif.Kind {
	switch {
	case strings.HasPrefix(ruleID, "CAIF-ADDR-"):
		return caif.KindAddress
	case strings.HasPrefix(ruleID, "CAIF-OPT-"):
		return caif.KindOption
	case strings.HasPrefix(ruleID, "CAIF-VAL-"):
		return caif.KindValidation
	case strings.HasPrefix(ruleID, "CAIF-TEXT-"):
		return caif.KindText
	default:
		return caif.KindInternal
	}
}
