package disciplinaryaction

import "github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"

type DisciplinaryActionRepository interface {
	record.Repository[DisciplinaryAction]
}
