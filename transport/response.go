package transport

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   []string    `json:"error,omitempty"`
}

// writeJSON encodes before writing the status so an unencodable body
// becomes an internal error instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, body Response) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
		status = constant.ErrorTypeHTTPCode[constant.ErrInternal]
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(Response{
			Code:    constant.ErrorTypeCode[constant.ErrInternal],
			Message: constant.ErrorTypeMessage[constant.ErrInternal],
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("[writeJSON] err write", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeStatus(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeStatus(w, http.StatusCreated, data)
}

func writeStatus(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError answers with the CustomError carried by err; anything else is
// reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: ce.Message(),
		Error:   ce.Details(),
	})
}
