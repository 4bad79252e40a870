package utils

import (
	"encoding/json"
	"fmt"
	"lmms/config"

	"github.com/go-resty/resty/v2"
)

// VettingCheckResponse represents the response from the vetting provider
type VettingCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ReferenceID string `json:"reference_id"`
		Result      string `json:"result"` // CLEAR, FLAGGED, PENDING
		Remarks     string `json:"remarks"`
	} `json:"data"`
}

// RequestVettingCheck submits a candidate to the background-check provider
// and returns the provider's current result for the candidate.
func RequestVettingCheck(passportNumber, nationality, fullName string) (*VettingCheckResponse, error) {
	if config.AppConfig.VettingApiKey == "" || config.AppConfig.VettingApiKey == "defaultSecret" {
		return nil, fmt.Errorf("vetting API key is not configured")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.VettingApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"passport_number": passportNumber,
			"nationality":     nationality,
			"full_name":       fullName,
		}).
		Post(config.AppConfig.VettingApiURL + "checks")
	if err != nil {
		return nil, fmt.Errorf("failed to reach vetting provider: %v", err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return nil, fmt.Errorf("vetting provider error: %s", resp.String())
	}

	var checkResp VettingCheckResponse
	if err := json.Unmarshal(resp.Body(), &checkResp); err != nil {
		return nil, fmt.Errorf("failed to parse vetting response: %v", err)
	}

	return &checkResp, nil
}
