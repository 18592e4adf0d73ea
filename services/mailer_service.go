package services

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
)

// MailerServiceError błędy wysyłki e-maili.
type MailerServiceError string

func (e MailerServiceError) Error() string { return string(e) }

const (
	ErrMailSendFailed   MailerServiceError = "nie udało się wysłać wiadomości"
	ErrMailRenderFailed MailerServiceError = "nie udało się zbudować treści wiadomości"
)

// IMailerService wysyłka e-maili transakcyjnych.
//
// SendLeadNotification jest best-effort, wywołujący nie czeka na wynik
// (zgłoszenie jest już zapisane, maile są tylko powiadomieniem).
// SendReply jest synchroniczne, bez udanej wysyłki nie wolno zapisać
// kopii w historii odpowiedzi. Pojedyncza próba, bez retry.
type IMailerService interface {
	SendLeadNotification(submission *models.Submission) error
	SendReply(toEmail, subject, message string) error
}

// MailerService implementuje IMailerService na net/smtp.
type MailerService struct {
	cfg configs.MailerConfig
}

// NewMailerService tworzy mailer z konfiguracją ze środowiska.
func NewMailerService() IMailerService {
	return &MailerService{cfg: configs.LoadMailerConfig()}
}

// SendLeadNotification wysyła dwa maile o nowym zapytaniu: alert do biura
// (pełne dane + szacunkowa wycena) i potwierdzenie do klienta. Obie wysyłki
// są próbowane niezależnie; zwracany jest pierwszy napotkany błąd.
func (s *MailerService) SendLeadNotification(submission *models.Submission) error {
	adminBody, err := renderTemplate(leadAdminTemplate, leadAdminData(submission))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailRenderFailed, err)
	}
	clientBody, err := renderTemplate(leadClientTemplate, leadClientData(submission))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailRenderFailed, err)
	}

	var firstErr error
	adminSubject := fmt.Sprintf("Nowe zapytanie: %s (%s)", submission.FullName(), submission.EventType.Label())
	if err := s.send(s.cfg.AdminEmail, adminSubject, adminBody); err != nil {
		configslog.Log.Error("MailerService: alert do biura nie wyszedł",
			zap.Uint("submission_id", submission.ID), zap.Error(err))
		firstErr = err
	}
	if err := s.send(submission.Email, "Dziękujemy za zapytanie — LED Kino Plenerowe", clientBody); err != nil {
		configslog.Log.Error("MailerService: potwierdzenie do klienta nie wyszło",
			zap.Uint("submission_id", submission.ID), zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SendReply wysyła odpowiedź handlową na adres klienta. Treść wiadomości
// trafia do stałego szablonu HTML dosłownie, z zamianą nowych linii na <br>.
func (s *MailerService) SendReply(toEmail, subject, message string) error {
	body, err := renderTemplate(replyTemplate, map[string]interface{}{
		"Message": nl2br(message),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailRenderFailed, err)
	}
	if err := s.send(toEmail, subject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrMailSendFailed, err)
	}
	return nil
}

// send buduje wiadomość MIME i wysyła ją pojedynczą próbą przez SMTP.
// Przy wyłączonym mailerze (tryb developerski) wiadomość jest tylko logowana.
func (s *MailerService) send(to, subject, htmlBody string) error {
	if !s.cfg.Enabled {
		configslog.SLog.Infof("[MAIL wyłączony] do=%s temat=%q", to, subject)
		return nil
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", s.cfg.FromName), s.cfg.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, msg.Bytes())
}

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// nl2br escapuje tekst i zamienia nowe linie na <br>, zwracając bezpieczny
// fragment HTML do osadzenia w szablonie.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
