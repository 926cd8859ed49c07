package service

import "fmt"

var (
	ErrCannotCreateLog      = fmt.Errorf("cannot create log")
	ErrCannotGetLogs        = fmt.Errorf("cannot get logs")
	ErrEndpointNotFound     = fmt.Errorf("endpoint not found")
	ErrEndpointExists       = fmt.Errorf("endpoint already exists")
	ErrCannotCreateEndpoint = fmt.Errorf("cannot create endpoint")
	ErrCannotDeleteEndpoint = fmt.Errorf("cannot delete endpoint")
)
