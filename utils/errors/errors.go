package errors

import (
	"strings"

	"github.com/muhammadheryan/verified-commerce/constant"
)

type CustomError struct {
	errType constant.ErrorType
	details []string
}

func (c CustomError) Error() string {
	if len(c.details) == 0 {
		return constant.ErrorTypeMessage[c.errType]
	}
	return constant.ErrorTypeMessage[c.errType] + ": " + strings.Join(c.details, "; ")
}

func (c CustomError) Message() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Details returns the human readable reasons attached to the error, if any.
func (c CustomError) Details() []string {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetail(errorType constant.ErrorType, details ...string) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
