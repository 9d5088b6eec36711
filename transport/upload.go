package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
)

// multipartMemory is how much of a multipart body is buffered in memory; the
// rest spills to temporary files.
const multipartMemory = 8 << 20

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

// parseMultipart parses the form once; a body above the server limit is
// reported as a file size error.
func parseMultipart(r *http.Request) error {
	if r.MultipartForm != nil {
		return nil
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if bodyTooLarge(err) {
			return errors.SetCustomErrorWithDetail(constant.ErrFileTooLarge, "request body too large")
		}
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "malformed multipart form")
	}
	return nil
}

func toUploadFile(fh *multipart.FileHeader) *model.UploadFile {
	return &model.UploadFile{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// formFile returns the first file sent under field, or nil.
func formFile(r *http.Request, field string) *model.UploadFile {
	files := formFiles(r, field)
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// formFiles accepts both "field" and "field[]" part names.
func formFiles(r *http.Request, field string) []*model.UploadFile {
	if r.MultipartForm == nil {
		return nil
	}
	var out []*model.UploadFile
	for _, name := range []string{field, field + "[]"} {
		for _, fh := range r.MultipartForm.File[name] {
			out = append(out, toUploadFile(fh))
		}
	}
	return out
}

// formValue returns nil when the field was not sent at all.
func formValue(r *http.Request, field string) *string {
	if r.MultipartForm != nil {
		if values, ok := r.MultipartForm.Value[field]; ok && len(values) > 0 {
			v := values[0]
			return &v
		}
		return nil
	}
	if values, ok := r.PostForm[field]; ok && len(values) > 0 {
		v := values[0]
		return &v
	}
	return nil
}

func formString(r *http.Request, field string) string {
	if v := formValue(r, field); v != nil {
		return *v
	}
	return ""
}

func formFloat(r *http.Request, field string) (*float64, error) {
	v := formValue(r, field)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, fmt.Sprintf("%s must be a number", field))
	}
	return &f, nil
}

func formInt(r *http.Request, field string) (*int64, error) {
	v := formValue(r, field)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*v), 10, 64)
	if err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, fmt.Sprintf("%s must be an integer", field))
	}
	return &n, nil
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if bodyTooLarge(err) {
			return errors.SetCustomErrorWithDetail(constant.ErrFileTooLarge, "request body too large")
		}
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "malformed JSON body")
	}
	return nil
}

// parseForm parses a multipart or urlencoded body.
func parseForm(r *http.Request) error {
	if isMultipart(r) {
		return parseMultipart(r)
	}
	if err := r.ParseForm(); err != nil {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "malformed form body")
	}
	return nil
}

// bodyTooLarge also matches the message because mime/multipart does not
// always wrap the reader error.
func bodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return stderrors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large")
}
