package payslip

import "errors"

var (
	ErrInvalidPeriod      = errors.New("invalid payslip period")
	ErrNoRecordsInPeriod  = errors.New("no attendance records in the requested period")
	ErrSlipRenderFailed   = errors.New("payslip document rendering failed")
	ErrArchiveBuildFailed = errors.New("payslip archive build failed")
)
