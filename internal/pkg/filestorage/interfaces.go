package filestorage

import "mime/multipart"

// FileStorage defines the interface for media storage operations.
// Uploaded photos and gallery images are write-once: every upload produces a
// fresh reference, so there is no concurrent-write conflict to manage.
type FileStorage interface {
	// SaveFile saves a file and returns the URI it can be retrieved at
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under a subdirectory (e.g. "memories")
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
