package informationsheet

import "errors"

var (
	ErrInformationSheetNotFound = errors.New("information sheet not found")
	ErrMatriculeExists          = errors.New("matricule already registered")
	ErrNINExists                = errors.New("NIN already registered")
)
