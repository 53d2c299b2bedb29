package filestorage

import "mime/multipart"

// Storage abstracts where uploaded files end up. The only implementation
// today is local disk; the interface keeps services unaware of that.
type Storage interface {
	// SaveFileWithPath stores the uploaded file under subPath and returns
	// the publicly accessible URL.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file by its stored URL/path.
	// Deleting a missing file is not an error.
	DeleteFile(filePath string) error
}
