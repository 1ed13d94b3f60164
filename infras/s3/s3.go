package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"clinic/config"
	"clinic/infras/otel"
	"clinic/shared/constant"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

type s3Impl struct {
	Client *awsS3.Client
	Config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) S3 {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.External.S3.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.External.S3.AccessKey,
			cfg.External.S3.SecretKey,
			constant.Empty,
		)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}

	client := awsS3.NewFromConfig(awsCfg, func(options *awsS3.Options) {
		if cfg.External.S3.APIEndpoint != "" {
			options.BaseEndpoint = aws.String(cfg.External.S3.APIEndpoint)
			options.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.External.S3.BucketName).Msg("S3 client initialized")

	return &s3Impl{
		Client: client,
		Config: cfg,
		otel:   otl,
	}
}

func (svc *s3Impl) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   bucketName,
	})

	buf := bytes.NewBuffer(nil)

	if _, err = buf.ReadFrom(file); err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)

	return svc.upload(ctx, bucketName, directory, fileName, contentType, buf)
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, objectName)

	_, err = svc.Client.DeleteObject(ctx, &awsS3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) GetObjectNameFromURL(bucketName, url string) (objectName string) {
	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	publicDomain := svc.Config.External.S3.PublicDomain

	bucketPrefix := path.Join(publicDomain, bucketName) + "/"
	if strings.HasPrefix(url, bucketPrefix) {
		return strings.TrimPrefix(url, bucketPrefix)
	}

	bucketURL := fmt.Sprintf("%s/%s/", svc.Config.External.S3.APIEndpoint, bucketName)
	if strings.HasPrefix(url, bucketURL) {
		return strings.TrimPrefix(url, bucketURL)
	}

	return constant.Empty
}

func (svc *s3Impl) upload(ctx context.Context, bucketName, directory, fileName, contentType string, body io.Reader) (url string, err error) {
	objectKey := path.Join(directory, fileName)

	_, err = svc.Client.PutObject(ctx, &awsS3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucketName).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	publicDomain := svc.Config.External.S3.PublicDomain
	if publicDomain != "" {
		return fmt.Sprintf("%s/%s/%s", publicDomain, bucketName, objectKey), nil
	}

	return fmt.Sprintf("%s/%s/%s", svc.Config.External.S3.APIEndpoint, bucketName, objectKey), nil
}
