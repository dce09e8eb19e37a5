package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	json "github.com/goccy/go-json"
)

const (
	InformationSheetsPath     = "/information-sheets"
	BankExperiencesPath       = "/bank-experiences"
	NonBankExperiencesPath    = "/non-bank-experiences"
	DisciplinaryActionsPath   = "/disciplinary-actions"
	ProfessionalTrainingsPath = "/professional-trainings"
)

// API groups the adapters of every entity.
type API struct {
	*Client

	InformationSheets     *Resource[informationsheet.InformationSheet]
	BankExperiences       *Resource[bankexperience.BankExperience]
	NonBankExperiences    *Resource[nonbankexperience.NonBankExperience]
	DisciplinaryActions   *Resource[disciplinaryaction.DisciplinaryAction]
	ProfessionalTrainings *Resource[professionaltraining.ProfessionalTraining]
}

func NewAPI(c *Client) *API {
	return &API{
		Client:                c,
		InformationSheets:     NewResource[informationsheet.InformationSheet](c, InformationSheetsPath, informationsheet.Fields),
		BankExperiences:       NewResource[bankexperience.BankExperience](c, BankExperiencesPath, bankexperience.Fields),
		NonBankExperiences:    NewResource[nonbankexperience.NonBankExperience](c, NonBankExperiencesPath, nonbankexperience.Fields),
		DisciplinaryActions:   NewResource[disciplinaryaction.DisciplinaryAction](c, DisciplinaryActionsPath, disciplinaryaction.Fields),
		ProfessionalTrainings: NewResource[professionaltraining.ProfessionalTraining](c, ProfessionalTrainingsPath, professionaltraining.Fields),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Login exchanges credentials for an access token and keeps it in the
// client's TokenStore.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	data, err := c.do(ctx, http.MethodPost, "/auth/login", nil, payload)
	if err != nil {
		return err
	}
	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("login response carries no access token")
	}
	return c.tokens.SetToken(resp.AccessToken)
}

// Logout revokes the held token on the server, then forgets it. The local
// token is dropped even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.tokens.Token() == "" {
		return nil
	}
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if resetErr := c.tokens.Reset(); resetErr != nil {
		return resetErr
	}
	return err
}

// ExportInformationSheets downloads the xlsx register.
func (c *Client) ExportInformationSheets(ctx context.Context) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, InformationSheetsPath+"/export", nil, nil,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// The methods below let the API feed the report builder.

func (a *API) InformationSheet(ctx context.Context, id int64) (informationsheet.InformationSheet, error) {
	return a.InformationSheets.GetByID(ctx, id)
}

func (a *API) BankExperiencesOf(ctx context.Context, sheetID int64) ([]bankexperience.BankExperience, error) {
	return a.BankExperiences.GetAll(ctx, &sheetID)
}

func (a *API) NonBankExperiencesOf(ctx context.Context, sheetID int64) ([]nonbankexperience.NonBankExperience, error) {
	return a.NonBankExperiences.GetAll(ctx, &sheetID)
}

func (a *API) DisciplinaryActionsOf(ctx context.Context, sheetID int64) ([]disciplinaryaction.DisciplinaryAction, error) {
	return a.DisciplinaryActions.GetAll(ctx, &sheetID)
}

func (a *API) ProfessionalTrainingsOf(ctx context.Context, sheetID int64) ([]professionaltraining.ProfessionalTraining, error) {
	return a.ProfessionalTrainings.GetAll(ctx, &sheetID)
}
