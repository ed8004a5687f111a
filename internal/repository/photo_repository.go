package repository

import (
	"fmt"
	"io"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// PhotoRepository stores category images in GridFS.
type PhotoRepository struct {
	db *mongo.Database
}

func NewPhotoRepository(client *mongo.Client, dbName string) *PhotoRepository {
	return &PhotoRepository{db: client.Database(dbName)}
}

// Upload streams the file into GridFS under the given name and returns the
// hex file id.
func (r *PhotoRepository) Upload(file multipart.File, filename string) (string, error) {
	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return "", fmt.Errorf("PhotoRepository.Upload: bucket: %w", err)
	}

	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", fmt.Errorf("PhotoRepository.Upload: open stream: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, file); err != nil {
		return "", fmt.Errorf("PhotoRepository.Upload: copy: %w", err)
	}
	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// Download reads the whole file back by its hex id.
func (r *PhotoRepository) Download(fileID string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download: bucket: %w", err)
	}

	objID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download: bad file id: %w", err)
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download: open stream: %w", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download: read: %w", err)
	}
	return data, nil
}
