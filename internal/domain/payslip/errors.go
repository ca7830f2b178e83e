package payslip

import "errors"

var ErrLogoMissing = errors.New("company logo not found")
