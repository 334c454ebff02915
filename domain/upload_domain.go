package domain

import "errors"

var (
	MessageSuccessUploadFile = "file uploaded successfully"
	MessageSuccessDeleteFile = "file deleted successfully"

	MessageFailedUploadFile = "failed to upload file"
	MessageFailedGetFile    = "failed to retrieve file"
	MessageFailedDeleteFile = "failed to delete file"

	ErrNoFileUploaded = errors.New("no file uploaded")
	ErrFileNotFound   = errors.New("file not found")
)

type UploadResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}
