package professionaltraining

import "github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"

type ProfessionalTrainingRepository interface {
	record.Repository[ProfessionalTraining]
}
