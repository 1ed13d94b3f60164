package dto

import (
	"mime/multipart"

	"clinic/internal/domains/doctor/model"
	"clinic/shared"
)

type DoctorResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Degree          string  `json:"degree"`
	Specialization  string  `json:"specialization"`
	ExperienceYears int     `json:"experienceYears"`
	ClinicTiming    string  `json:"clinicTiming"`
	PhotoURL        string  `json:"photoUrl"`
	Bio             string  `json:"bio"`
	ClinicName      string  `json:"clinicName"`
	ConsultationFee float64 `json:"consultationFee"`
}

func (r *DoctorResponse) FromModel(model model.Doctor) {
	r.ID = model.ID
	r.Name = model.Name
	r.Degree = model.Degree
	r.Specialization = model.Specialization
	r.ExperienceYears = model.ExperienceYears
	r.ClinicTiming = model.ClinicTiming
	r.PhotoURL = model.PhotoURL
	r.Bio = model.Bio
	r.ClinicName = model.ClinicName
	r.ConsultationFee = model.ConsultationFee
}

type GetDoctorsResponse struct {
	Doctors   []DoctorResponse `json:"doctors"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetDoctorsResponse) FromModels(models []model.Doctor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Doctors = make([]DoctorResponse, len(models))
	for i, mod := range models {
		r.Doctors[i].FromModel(mod)
	}
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
