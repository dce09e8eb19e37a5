package report

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	sheetService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/service/records"
)

type ReportService interface {
	WorkCertificate(ctx context.Context, sheetID int64) (report.Document, error)
	InvestigationLetter(ctx context.Context, sheetID, actionID int64) (report.Document, error)
	ExportRegister(ctx context.Context) ([]byte, error)
}

type ReportServiceImpl struct {
	sheets  sheetService.InformationSheetService
	builder *report.Builder
}

func NewReportService(sheets sheetService.InformationSheetService, recs *records.RecordsService, head report.Letterhead) ReportService {
	return &ReportServiceImpl{
		sheets:  sheets,
		builder: report.NewBuilder(&source{sheets: sheets, records: recs}, head),
	}
}

func (s *ReportServiceImpl) WorkCertificate(ctx context.Context, sheetID int64) (report.Document, error) {
	return s.builder.WorkCertificate(ctx, sheetID)
}

func (s *ReportServiceImpl) InvestigationLetter(ctx context.Context, sheetID, actionID int64) (report.Document, error) {
	return s.builder.InvestigationLetter(ctx, sheetID, actionID)
}

// ExportRegister builds the xlsx register of every information sheet.
func (s *ReportServiceImpl) ExportRegister(ctx context.Context) ([]byte, error) {
	sheets, err := s.sheets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list information sheets: %w", err)
	}
	return report.ExportRegister(sheets)
}

// source reads report data straight from the services.
type source struct {
	sheets  sheetService.InformationSheetService
	records *records.RecordsService
}

func (s *source) InformationSheet(ctx context.Context, id int64) (informationsheet.InformationSheet, error) {
	return s.sheets.Get(ctx, id)
}

func (s *source) BankExperiencesOf(ctx context.Context, sheetID int64) ([]bankexperience.BankExperience, error) {
	return s.records.BankExperiences.List(ctx, record.ForSheet(sheetID))
}

func (s *source) NonBankExperiencesOf(ctx context.Context, sheetID int64) ([]nonbankexperience.NonBankExperience, error) {
	return s.records.NonBankExperiences.List(ctx, record.ForSheet(sheetID))
}

func (s *source) DisciplinaryActionsOf(ctx context.Context, sheetID int64) ([]disciplinaryaction.DisciplinaryAction, error) {
	return s.records.DisciplinaryActions.List(ctx, record.ForSheet(sheetID))
}

func (s *source) ProfessionalTrainingsOf(ctx context.Context, sheetID int64) ([]professionaltraining.ProfessionalTraining, error) {
	return s.records.ProfessionalTrainings.List(ctx, record.ForSheet(sheetID))
}
