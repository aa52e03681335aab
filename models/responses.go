// path: models/responses.go
package models

// StatusResp is the generic {ok, message} envelope every endpoint uses
// for acknowledgements and failures.
type StatusResp struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// LoginReq is the JSON body for POST /admin/login.
type LoginReq struct {
	Code string `json:"code"`
}

// ReportsResp is the response body for GET /api/reports.
type ReportsResp struct {
	OK      bool     `json:"ok"`
	Reports []Report `json:"reports"`
}
