package utils

import (
	"log"
	"time"

	"edulytics/analytics"
	"edulytics/config"

	"github.com/go-resty/resty/v2"
)

// DangerZoneAlert is the webhook payload sent when a course develops
// critical danger zones
type DangerZoneAlert struct {
	CourseID    uint                   `json:"course_id"`
	CourseCode  string                 `json:"course_code"`
	Title       string                 `json:"title"`
	DangerZones []analytics.DangerZone `json:"danger_zones"`
	AlertedAt   time.Time              `json:"alerted_at"`
}

// SendDangerZoneAlert posts the alert to the configured webhook.
// A no-op when ALERT_WEBHOOK_URL is not set.
func SendDangerZoneAlert(alert DangerZoneAlert) error {
	webhookURL := config.AppConfig.AlertWebhookURL
	if webhookURL == "" {
		return nil
	}

	client := resty.New().SetTimeout(10 * time.Second)
	req := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(alert)
	if token := config.AppConfig.AlertWebhookToken; token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Post(webhookURL)
	if err != nil {
		log.Printf("Failed to send danger zone alert for course %d: %v", alert.CourseID, err)
		return err
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Danger zone alert for course %d rejected: %s", alert.CourseID, resp.Status())
	}
	return nil
}
