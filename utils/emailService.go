package utils

import (
	"fmt"
	"lmms/config"
	"net/smtp"
	"strings"
	"time"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Labour Mobility <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00334D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00334D; line-height: 1.6; }
			.content h2 { color: #00334D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2E8B57; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LABOUR MOBILITY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Labour Mobility Agency. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Enrollment approved
func SendEnrollmentApprovedEmail(email, name, courseName, cohortCode string) {
	subject := "Enrollment Confirmed: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your application has been approved. You are now enrolled in <strong>%s</strong> (cohort %s).</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Check your dashboard for the session schedule and attendance requirements.
		</div>
	`, name, courseName, cohortCode)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

// 2. Cohort starting reminder
func SendCohortStartingEmail(email, name, cohortCode string, startDate time.Time) {
	subject := "Training Starting Soon: " + cohortCode
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your training cohort <strong>%s</strong> starts on <strong>%s</strong>.</p>
		<p>Please arrive with your identification documents on the first day.</p>
	`, name, cohortCode, startDate.Format("January 2, 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Training Starting Soon", body))
}

// 3. Certificate issued
func SendCertificateIssuedEmail(email, name, courseName, certificateNumber string) {
	subject := "Certificate Issued: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box">
			<strong>Your Certificate Number:</strong> %s
		</div>
		<p>Employers and brokers can verify this certificate using its verification code.</p>
	`, name, courseName, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Certificate of Completion", body))
}

// 4. Placement confirmed
func SendPlacementConfirmedEmail(email, name, employer, country, position string) {
	subject := "Job Placement Confirmed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your placement with <strong>%s</strong> (%s) as <strong>%s</strong> has been confirmed.</p>
		<p>Our placement team will contact you about travel and visa arrangements.</p>
	`, name, employer, country, position)

	go SendEmail([]string{email}, subject, getEmailTemplate("Placement Confirmed", body))
}
