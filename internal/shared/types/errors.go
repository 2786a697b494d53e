package types

import "errors"

var (
	ErrRegisterPathRequired = errors.New("no trade register dataset configured. Pass --register or set register_path in the config file")
	ErrEmptyRegister        = errors.New("trade register dataset contains no rows")
	ErrUnknownReportType    = errors.New("unknown report type; expected csv, json or pdf")
)
