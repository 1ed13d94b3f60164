package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"clinic/config"
	"clinic/infras/otel/mocks"
	s3Mocks "clinic/infras/s3/mocks"
	doctorMocks "clinic/internal/domains/doctor/mocks"
	"clinic/internal/domains/doctor/model"
	"clinic/internal/domains/doctor/model/dto"
	"clinic/internal/domains/doctor/service"
	"clinic/shared/cache"
	cacheMocks "clinic/shared/cache/mocks"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
)

func TestDoctorService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := doctorMocks.NewMockDoctor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	doctors := []model.Doctor{
		{
			ID:              "doctor-1",
			Name:            "Dr. Sarah Johnson",
			Degree:          "MBBS, MD",
			Specialization:  "General Medicine",
			ExperienceYears: 15,
			ConsultationFee: 150,
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(doctors, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Doctors, tt.wantTotal)
			assert.Equal(t, "Dr. Sarah Johnson", res.Doctors[0].Name)
		})
	}
}

func TestDoctorService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := doctorMocks.NewMockDoctor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   "doctor-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Doctor{ID: "doctor-1", Name: "Dr. Sarah Johnson"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "doctor not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Doctor{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}

func TestDoctorService_UpdatePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := doctorMocks.NewMockDoctor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "clinic-assets"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	photo := &multipart.FileHeader{Filename: "profile.jpg"}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantURL   string
	}{
		{
			name: "successful photo update",
			id:   "doctor-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Doctor{ID: "doctor-1"}, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "clinic-assets", model.EntityName, gomock.Any(), photo, "profile.jpg").
					Return("https://cdn.example.com/doctor/profile.jpg", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantURL: "https://cdn.example.com/doctor/profile.jpg",
		},
		{
			name: "previous photo removed from storage",
			id:   "doctor-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Doctor{ID: "doctor-1", PhotoURL: "https://cdn.example.com/doctor/old.jpg"}, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "clinic-assets", model.EntityName, gomock.Any(), photo, "profile.jpg").
					Return("https://cdn.example.com/doctor/profile.jpg", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockS3.EXPECT().
					GetObjectNameFromURL("clinic-assets", "https://cdn.example.com/doctor/old.jpg").
					Return("old.jpg").
					AnyTimes()

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "clinic-assets", model.EntityName, "old.jpg").
					Return(nil).
					AnyTimes()
			},
			wantURL: "https://cdn.example.com/doctor/profile.jpg",
		},
		{
			name: "doctor not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Doctor{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "upload error",
			id:   "doctor-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Doctor{ID: "doctor-1"}, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "clinic-assets", model.EntityName, gomock.Any(), photo, "profile.jpg").
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := dto.UploadPhotoRequest{Photo: photo}

			res, err := svc.UpdatePhoto(context.Background(), req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, "profile.jpg", res.FileName)
		})
	}
}
