package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"clinic/config"
	kafkaMocks "clinic/infras/kafka/mocks"
	"clinic/infras/otel/mocks"
	apptMocks "clinic/internal/domains/appointment/mocks"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/model/dto"
	"clinic/internal/domains/appointment/service"
	"clinic/shared/cache"
	cacheMocks "clinic/shared/cache/mocks"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
	"clinic/shared/timezone"
)

func TestAppointmentService_Book(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := apptMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockEvents, mockOtel)

	futureSlot := timezone.Now().Add(48 * time.Hour).Format(time.RFC3339)
	pastSlot := timezone.Now().Add(-1 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name      string
		req       dto.BookAppointmentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			req: dto.BookAppointmentRequest{
				PatientName:         "John Doe",
				Phone:               "+62 812-3456-789",
				PatientEmail:        "john@example.com",
				AppointmentDatetime: futureSlot,
				Reason:              "General checkup",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockEvents.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "malformed datetime",
			req: dto.BookAppointmentRequest{
				PatientName:         "John Doe",
				Phone:               "08123456789",
				PatientEmail:        "john@example.com",
				AppointmentDatetime: "next tuesday",
				Reason:              "General checkup",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "datetime in the past",
			req: dto.BookAppointmentRequest{
				PatientName:         "John Doe",
				Phone:               "08123456789",
				PatientEmail:        "john@example.com",
				AppointmentDatetime: pastSlot,
				Reason:              "General checkup",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.BookAppointmentRequest{
				PatientName:         "John Doe",
				Phone:               "08123456789",
				PatientEmail:        "john@example.com",
				AppointmentDatetime: futureSlot,
				Reason:              "General checkup",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Book(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, model.StatusPending.String(), res.Status)
			assert.Equal(t, tt.req.PatientName, res.PatientName)
		})
	}
}

func TestAppointmentService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := apptMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockEvents, mockOtel)

	appointments := []model.Appointment{
		{
			ID:                  "appointment-1",
			PatientName:         "John Doe",
			Phone:               "08123456789",
			PatientEmail:        "john@example.com",
			AppointmentDatetime: timezone.Now().Add(24 * time.Hour),
			Reason:              "General checkup",
			Status:              model.StatusPending,
			CreatedAt:           timezone.Now(),
		},
		{
			ID:                  "appointment-2",
			PatientName:         "Jane Doe",
			Phone:               "08198765432",
			PatientEmail:        "jane@example.com",
			AppointmentDatetime: timezone.Now().Add(72 * time.Hour),
			Reason:              "Dental cleaning",
			Status:              model.StatusConfirmed,
			CreatedAt:           timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(appointments, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 2,
		},
		{
			name:   "repository error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Appointments, tt.wantTotal)
			assert.Equal(t, tt.wantTotal, res.TotalData)
		})
	}
}

func TestAppointmentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := apptMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockEvents, mockOtel)

	appointment := model.Appointment{
		ID:                  "appointment-1",
		PatientName:         "John Doe",
		Phone:               "08123456789",
		PatientEmail:        "john@example.com",
		AppointmentDatetime: timezone.Now().Add(24 * time.Hour),
		Reason:              "General checkup",
		Status:              model.StatusPending,
		CreatedAt:           timezone.Now(),
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   "appointment-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(appointment, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "appointment not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "appointment-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{}, errors.New("database error"))
			},
			wantErr: true,
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
			assert.Equal(t, appointment.ID, res.ID)
			assert.Equal(t, model.StatusPending.String(), res.Status)
		})
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := apptMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockEvents, mockOtel)

	allowAsyncSideEffects := func() {
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockEvents.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	stored := model.Appointment{
		ID:                  "appointment-1",
		PatientName:         "John Doe",
		Phone:               "08123456789",
		PatientEmail:        "john@example.com",
		AppointmentDatetime: timezone.Now().Add(24 * time.Hour),
		Reason:              "General checkup",
		Status:              model.StatusPending,
		CreatedAt:           timezone.Now(),
	}

	tests := []struct {
		name       string
		id         string
		req        dto.UpdateStatusRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus model.Status
	}{
		{
			name: "confirm pending appointment",
			id:   "appointment-1",
			req:  dto.UpdateStatusRequest{Status: "CONFIRMED"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{model.FieldStatus: model.StatusConfirmed}, gomock.Any()).
					Return(nil)

				allowAsyncSideEffects()
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "lowercase label is accepted",
			id:   "appointment-1",
			req:  dto.UpdateStatusRequest{Status: "cancelled"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{model.FieldStatus: model.StatusCancelled}, gomock.Any()).
					Return(nil)

				allowAsyncSideEffects()
			},
			wantStatus: model.StatusCancelled,
		},
		{
			name: "reopen cancelled appointment",
			id:   "appointment-1",
			req:  dto.UpdateStatusRequest{Status: "PENDING"},
			setupMock: func() {
				cancelled := stored
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{model.FieldStatus: model.StatusPending}, gomock.Any()).
					Return(nil)

				allowAsyncSideEffects()
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "unknown status label",
			id:   "appointment-1",
			req:  dto.UpdateStatusRequest{Status: "DONE"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "appointment not found",
			id:   "missing-id",
			req:  dto.UpdateStatusRequest{Status: "CONFIRMED"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			id:   "appointment-1",
			req:  dto.UpdateStatusRequest{Status: "CONFIRMED"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdateStatus(context.Background(), tt.req, tt.id)

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
			assert.Equal(t, tt.wantStatus.String(), res.Status)
			assert.Equal(t, stored.PatientName, res.PatientName)
			assert.Equal(t, stored.Phone, res.Phone)
		})
	}
}

func TestAppointmentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := apptMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockEvents, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			id:   "appointment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockEvents.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "appointment not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			id:   "appointment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
