package utils

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage wraps an S3-compatible bucket used for avatars, company
// photos and gallery images.
type Storage struct {
	bucket string
	client *s3.S3
}

func NewStorage(bucket, region, endpoint string) *Storage {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), "",
		),
	}))
	return &Storage{bucket: bucket, client: s3.New(sess)}
}

func (st *Storage) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := st.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(st.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.object.pscloud.io/%s", st.bucket, filePath), nil
}

func (st *Storage) DeleteFile(fileURL string) error {
	prefix := fmt.Sprintf("https://%s.object.pscloud.io/", st.bucket)
	key := strings.TrimPrefix(fileURL, prefix)
	if key == fileURL {
		// not one of ours, nothing to delete
		return nil
	}

	_, err := st.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(st.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %v", err)
	}
	return nil
}
