package model

const (
	TableName  = "services"
	EntityName = "service"

	FieldID           = "id"
	FieldName         = "name"
	FieldDisplayOrder = "display_order"
	FieldActive       = "active"
)

type MedicalService struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	IconClass    string `db:"icon_class"`
	DisplayOrder int    `db:"display_order"`
	Active       bool   `db:"active"`
}
