package bankexperience

import "github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"

type BankExperienceRepository interface {
	record.Repository[BankExperience]
}
