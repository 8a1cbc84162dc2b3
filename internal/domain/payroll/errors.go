package payroll

import "errors"

var (
	ErrAdjustmentSaveFailed = errors.New("payment adjustment could not be saved")
	ErrVendorNotOnRoster    = errors.New("vendor is not on the event roster")
)
