package v1

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// Error reasons carried by Kratos errors returned from the Greeter service.
const (
	ErrorReasonInvalidArgument   = "GREETER_INVALID_ARGUMENT"
	ErrorReasonQueryTimeout      = "GREETER_QUERY_TIMEOUT"
	ErrorReasonLedgerQueryFailed = "GREETER_LEDGER_QUERY_FAILED"
)

func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonInvalidArgument && e.Code == 400
}

func ErrorInvalidArgument(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ErrorReasonInvalidArgument, fmt.Sprintf(format, args...))
}

func IsQueryTimeout(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonQueryTimeout && e.Code == 504
}

func ErrorQueryTimeout(format string, args ...interface{}) *errors.Error {
	return errors.New(504, ErrorReasonQueryTimeout, fmt.Sprintf(format, args...))
}

func IsLedgerQueryFailed(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonLedgerQueryFailed && e.Code == 500
}

func ErrorLedgerQueryFailed(format string, args ...interface{}) *errors.Error {
	return errors.New(500, ErrorReasonLedgerQueryFailed, fmt.Sprintf(format, args...))
}
