package dto

import (
	"clinic/internal/domains/medservice/model"
	"clinic/shared"
)

type MedicalServiceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IconClass    string `json:"iconClass"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

func (r *MedicalServiceResponse) FromModel(model model.MedicalService) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.IconClass = model.IconClass
	r.DisplayOrder = model.DisplayOrder
	r.Active = model.Active
}

type GetMedicalServicesResponse struct {
	Services  []MedicalServiceResponse `json:"services"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetMedicalServicesResponse) FromModels(models []model.MedicalService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]MedicalServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
