package nonbankexperience

import "github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"

type NonBankExperienceRepository interface {
	record.Repository[NonBankExperience]
}
