package model

const (
	TableName  = "doctors"
	EntityName = "doctor"

	FieldID             = "id"
	FieldName           = "name"
	FieldDegree         = "degree"
	FieldSpecialization = "specialization"
	FieldPhotoURL       = "photo_url"
)

type Doctor struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Degree          string  `db:"degree"`
	Specialization  string  `db:"specialization"`
	ExperienceYears int     `db:"experience_years"`
	ClinicTiming    string  `db:"clinic_timing"`
	PhotoURL        string  `db:"photo_url"`
	Bio             string  `db:"bio"`
	ClinicName      string  `db:"clinic_name"`
	ConsultationFee float64 `db:"consultation_fee"`
}
