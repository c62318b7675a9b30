package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

// sendAsync delivers in a goroutine; the caller never waits on, or hears
// about, a delivery failure.
func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: HerHub <%s>\r\n"+
			"Subject: %s\r\n"+
			"\r\n%s", strings.Join(to, ","), s.From, subject, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		}
	}()
}

// SendVerificationEmail mails a signup verification code.
func (s *MailService) SendVerificationEmail(email, code string) {
	body := fmt.Sprintf("Your verification code is: %s\r\n\r\nIt expires in 10 minutes.", code)
	s.sendAsync([]string{email}, "HerHub Email Verification", body)
}
