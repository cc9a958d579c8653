package booking

// ===============================
// Booking Type / Level / Consult
// ===============================

type Type string

const (
	TypePetCare         Type = "pet_care"
	TypeDogSitting      Type = "dog_sitting"
	TypeDogTraining     Type = "dog_training"
	TypePrivateTraining Type = "private_training"
	TypeConsult         Type = "consult"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypePetCare, TypeDogSitting, TypeDogTraining, TypePrivateTraining, TypeConsult:
		return Type(s), true
	}
	return "", false
}

type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "beginner"
	LevelIntermediate TrainingLevel = "intermediate"
	LevelAdvanced     TrainingLevel = "advanced"
	LevelExpert       TrainingLevel = "expert"
)

func ParseTrainingLevel(s string) (TrainingLevel, bool) {
	switch TrainingLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return TrainingLevel(s), true
	}
	return "", false
}

type ConsultType string

const (
	ConsultBehavioral ConsultType = "behavioral"
	ConsultTraining   ConsultType = "training"
	ConsultGeneral    ConsultType = "general"
)

func ParseConsultType(s string) (ConsultType, bool) {
	switch ConsultType(s) {
	case ConsultBehavioral, ConsultTraining, ConsultGeneral:
		return ConsultType(s), true
	}
	return "", false
}

// ===============================
// Service catalog
// ===============================

type Service struct {
	Name            string
	Type            Type
	DurationMinutes int
	PriceCents      int64 // ZAR cents

	// Only dog_training carries levels and only consult carries consult types.
	RequiresLevel       bool
	RequiresConsultType bool
}

var catalog = []Service{
	{Name: "Pet Care", Type: TypePetCare, DurationMinutes: 60, PriceCents: 15000},
	{Name: "Dog Sitting", Type: TypeDogSitting, DurationMinutes: 480, PriceCents: 80000},
	{Name: "Dog Training", Type: TypeDogTraining, DurationMinutes: 60, PriceCents: 25000, RequiresLevel: true},
	{Name: "Private Training", Type: TypePrivateTraining, DurationMinutes: 90, PriceCents: 40000},
	{Name: "Consultation", Type: TypeConsult, DurationMinutes: 45, PriceCents: 30000, RequiresConsultType: true},
}

func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

func ServiceFor(t Type) (Service, bool) {
	for _, s := range catalog {
		if s.Type == t {
			return s, true
		}
	}
	return Service{}, false
}

// Label returns the human-readable form of a booking type, e.g.
// "private_training" -> "Private Training".
func (t Type) Label() string {
	if s, ok := ServiceFor(t); ok {
		return s.Name
	}
	return string(t)
}
