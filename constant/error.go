package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrDuplicate
	ErrInvalidCredential
	ErrInvalidToken
	ErrExpiredToken
	ErrForbidden
	ErrImageRequired
	ErrInvalidFileType
	ErrFileTooLarge
	ErrInvalidReference
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrDuplicate:         "data already exists",
	ErrInvalidCredential: "invalid email or password",
	ErrInvalidToken:      "invalid token",
	ErrExpiredToken:      "token expired",
	ErrForbidden:         "access forbidden",
	ErrImageRequired:     "image is required",
	ErrInvalidFileType:   "only images are allowed",
	ErrFileTooLarge:      "file too large",
	ErrInvalidReference:  "referenced data does not exist",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrDuplicate:         http.StatusBadRequest,
	ErrInvalidCredential: http.StatusBadRequest,
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrExpiredToken:      http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,
	ErrImageRequired:     http.StatusBadRequest,
	ErrInvalidFileType:   http.StatusBadRequest,
	ErrFileTooLarge:      http.StatusBadRequest,
	ErrInvalidReference:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrDuplicate:         "0005",
	ErrInvalidCredential: "0006",
	ErrInvalidToken:      "0007",
	ErrExpiredToken:      "0008",
	ErrForbidden:         "0009",
	ErrImageRequired:     "0010",
	ErrInvalidFileType:   "0011",
	ErrFileTooLarge:      "0012",
	ErrInvalidReference:  "0013",
}
