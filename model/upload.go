package model

import "io"

// UploadFile is an uploaded file part that has not been written to storage yet.
type UploadFile struct {
	Filename    string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}
