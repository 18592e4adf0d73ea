package services

import (
	"html/template"
	"strings"

	"ledkino.pl/models"
)

// Szablony e-maili transakcyjnych. Stylowanie inline, bo klienci pocztowi
// nie wspierają arkuszy CSS.

var leadAdminTemplate = template.Must(template.New("lead_admin").Parse(`<!DOCTYPE html>
<html lang="pl">
<head><meta charset="UTF-8"><title>Nowe zapytanie ofertowe</title></head>
<body style="margin:0;padding:24px;background:#f4f6f8;font-family:Arial,Helvetica,sans-serif;color:#1a1a2e;">
  <table role="presentation" cellspacing="0" cellpadding="0" width="600" style="margin:0 auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <tr><td style="background:#0f3460;color:#ffffff;padding:20px 28px;">
      <h2 style="margin:0;font-size:20px;">Nowe zapytanie ofertowe</h2>
    </td></tr>
    <tr><td style="padding:28px;">
      <table cellspacing="0" cellpadding="6" width="100%" style="font-size:14px;">
        <tr><td style="color:#6b7280;width:170px;">Klient</td><td><strong>{{.FullName}}</strong></td></tr>
        <tr><td style="color:#6b7280;">E-mail</td><td>{{.Email}}</td></tr>
        <tr><td style="color:#6b7280;">Telefon</td><td>{{.Phone}}</td></tr>
        <tr><td style="color:#6b7280;">Rodzaj wydarzenia</td><td>{{.EventTypeLabel}}</td></tr>
        <tr><td style="color:#6b7280;">Liczba widzów</td><td>{{.AudienceSize}}</td></tr>
        {{if .PreferredDate}}<tr><td style="color:#6b7280;">Preferowany termin</td><td>{{.PreferredDate}}</td></tr>{{end}}
        <tr><td style="color:#6b7280;">Dodatki</td><td>{{.Extras}}</td></tr>
        <tr><td style="color:#6b7280;">Sugerowany pakiet</td><td>{{.EstimatedLevel}}</td></tr>
        <tr><td style="color:#6b7280;">Wycena orientacyjna</td><td><strong>{{.EstimatedPrice}} zł netto</strong></td></tr>
      </table>
      <div style="margin-top:20px;padding:16px;background:#f4f6f8;border-radius:6px;font-size:14px;">
        <p style="margin:0 0 8px;color:#6b7280;">Wiadomość od klienta:</p>
        <p style="margin:0;white-space:pre-line;">{{.Message}}</p>
      </div>
    </td></tr>
    <tr><td style="padding:16px 28px;background:#fafafa;color:#9ca3af;font-size:12px;">
      Zgłoszenie nr {{.ID}} — panel: odpowiedz z zakładki Zapytania.
    </td></tr>
  </table>
</body>
</html>`))

var leadClientTemplate = template.Must(template.New("lead_client").Parse(`<!DOCTYPE html>
<html lang="pl">
<head><meta charset="UTF-8"><title>Dziękujemy za zapytanie</title></head>
<body style="margin:0;padding:24px;background:#f4f6f8;font-family:Arial,Helvetica,sans-serif;color:#1a1a2e;">
  <table role="presentation" cellspacing="0" cellpadding="0" width="600" style="margin:0 auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <tr><td style="background:#0f3460;color:#ffffff;padding:20px 28px;">
      <h2 style="margin:0;font-size:20px;">LED Kino Plenerowe</h2>
    </td></tr>
    <tr><td style="padding:28px;font-size:14px;line-height:1.6;">
      <p style="margin:0 0 12px;">Dzień dobry {{.FirstName}},</p>
      <p style="margin:0 0 12px;">dziękujemy za zapytanie dotyczące kina plenerowego
      ({{.EventTypeLabel}}, ok. {{.AudienceSize}} widzów). Odezwiemy się z ofertą
      najpóźniej w ciągu jednego dnia roboczego.</p>
      <p style="margin:0;">Pozdrawiamy,<br>Zespół LED Kino Plenerowe</p>
    </td></tr>
  </table>
</body>
</html>`))

var replyTemplate = template.Must(template.New("reply").Parse(`<!DOCTYPE html>
<html lang="pl">
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:24px;background:#f4f6f8;font-family:Arial,Helvetica,sans-serif;color:#1a1a2e;">
  <table role="presentation" cellspacing="0" cellpadding="0" width="600" style="margin:0 auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <tr><td style="background:#0f3460;color:#ffffff;padding:20px 28px;">
      <h2 style="margin:0;font-size:20px;">LED Kino Plenerowe</h2>
    </td></tr>
    <tr><td style="padding:28px;font-size:14px;line-height:1.6;">
      {{.Message}}
    </td></tr>
    <tr><td style="padding:16px 28px;background:#fafafa;color:#9ca3af;font-size:12px;">
      LED Kino Plenerowe — kino pod chmurką na Twoim wydarzeniu.
    </td></tr>
  </table>
</body>
</html>`))

func leadAdminData(s *models.Submission) map[string]interface{} {
	extras := make([]string, 0, 3)
	if s.WantsPopcorn {
		extras = append(extras, "popcorn")
	}
	if s.WantsChairs {
		extras = append(extras, "leżaki")
	}
	if s.WantsLicense {
		extras = append(extras, "licencja filmowa")
	}
	extrasLabel := "brak"
	if len(extras) > 0 {
		extrasLabel = strings.Join(extras, ", ")
	}

	data := map[string]interface{}{
		"ID":             s.ID,
		"FullName":       s.FullName(),
		"Email":          s.Email,
		"Phone":          s.Phone,
		"EventTypeLabel": s.EventType.Label(),
		"AudienceSize":   s.AudienceSize,
		"Extras":         extrasLabel,
		"EstimatedLevel": s.EstimatedLevel,
		"EstimatedPrice": s.EstimatePrice(),
		"Message":        s.Message,
	}
	if s.PreferredDate != nil {
		data["PreferredDate"] = s.PreferredDate.Format("2006-01-02")
	}
	return data
}

func leadClientData(s *models.Submission) map[string]interface{} {
	return map[string]interface{}{
		"FirstName":      s.FirstName,
		"EventTypeLabel": s.EventType.Label(),
		"AudienceSize":   s.AudienceSize,
	}
}
