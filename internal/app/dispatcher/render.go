package dispatcher

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

var emojiByType = map[domain.NotificationType]string{
	domain.NotificationTypeContentSubmitted:   "📝",
	domain.NotificationTypeContentPublished:   "📢",
	domain.NotificationTypeModerationApproved: "✅",
	domain.NotificationTypeModerationRejected: "❌",
	domain.NotificationTypeContentArchived:    "🗄",
	domain.NotificationTypeContentDeleted:     "🗑",
	domain.NotificationTypeEditorAdded:        "🤝",
	domain.NotificationTypeEditorRemoved:      "👋",
}

const defaultEmoji = "🕯"

const textTemplate = `{{.Emoji}} {{.Title}}
{{- range .Lines}}
{{.}}
{{- end}}`

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>{{.Emoji}} {{.Title}}</h2>
{{- range .Lines}}
    <p>{{.}}</p>
{{- end}}
    <p style="margin-top: 30px; font-size: 12px; color: #666;">You receive this message because notifications are enabled in your memorial account.</p>
</body>
</html>`

type renderData struct {
	Emoji string
	Title string
	Lines []string
}

// Renderer turns a stored notification into a channel message. Text bodies
// use text/template; the email HTML part goes through html/template so user
// supplied notes are escaped.
type Renderer struct {
	text *template.Template
	html *htmltemplate.Template
}

// NewRenderer parses the message templates.
func NewRenderer() *Renderer {
	return &Renderer{
		text: template.Must(template.New("text").Parse(textTemplate)),
		html: htmltemplate.Must(htmltemplate.New("html").Parse(htmlTemplate)),
	}
}

// Render builds the message for d's channel.
func (r *Renderer) Render(d domain.Delivery) (domain.Message, error) {
	n := d.Notification
	data := renderData{
		Emoji: emojiFor(n.Type),
		Title: n.Title,
		Lines: splitLines(n.Body),
	}

	msg := domain.Message{
		NotificationID: n.ID,
		RecipientID:    n.RecipientID,
		Channel:        n.Channel,
		Subject:        n.Title,
	}

	var buf bytes.Buffer
	if err := r.text.Execute(&buf, data); err != nil {
		return domain.Message{}, fmt.Errorf("render text: %w", err)
	}
	msg.Text = buf.String()

	switch n.Channel {
	case domain.ChannelEmail:
		if d.Email != nil {
			msg.Email = *d.Email
		}
		buf.Reset()
		if err := r.html.Execute(&buf, data); err != nil {
			return domain.Message{}, fmt.Errorf("render html: %w", err)
		}
		msg.HTML = buf.String()
	case domain.ChannelTelegram:
		if d.TelegramChatID != nil {
			msg.TelegramChatID = *d.TelegramChatID
		}
	}

	return msg, nil
}

func emojiFor(t domain.NotificationType) string {
	if e, ok := emojiByType[t]; ok {
		return e
	}
	return defaultEmoji
}

func splitLines(body string) []string {
	var lines []string
	for _, l := range strings.Split(body, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
