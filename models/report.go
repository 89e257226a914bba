package models

import (
	"encoding/json"
	"strings"
)

// Report is the content rendered into Legal_Report.pdf.
// List fields accept either a JSON array or a plain string from clients.
type Report struct {
	Summary     string    `json:"summary"`
	CaseNature  string    `json:"case_nature"`
	RiskScore   FlexText  `json:"risk_score"`
	Punishments string    `json:"punishments"`
	IPCSections FlexLines `json:"ipc_sections"`
	Remedies    FlexLines `json:"remedies"`
	Lawyers     FlexLines `json:"lawyers"`
	Translation string    `json:"translation"`
}

// FlexText decodes a JSON string or number into text
type FlexText string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexText(n.String())
	return nil
}

// FlexLines decodes a JSON array of strings or a single string into lines
type FlexLines []string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexLines) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*f = lines
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*f = nil
		return nil
	}
	*f = strings.Split(s, "\n")
	return nil
}
