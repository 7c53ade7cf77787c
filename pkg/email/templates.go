package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

var jst = time.FixedZone("JST", 9*60*60)

// ContactEmailData is a stored contact message as shown in emails.
type ContactEmailData struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
	Salon     Salon
}

// ReservationEmailData is a booking as shown in the confirmation email.
type ReservationEmailData struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	BlendLabel string
	Menu       string
	Message    string
	Salon      Salon
}

const layoutOpen = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Hiragino Sans', 'Hiragino Kaku Gothic ProN', Meiryo, sans-serif; line-height: 1.6; color: #374151; max-width: 600px; margin: 0 auto; padding: 20px;">
`

const layoutClose = `</body>
</html>`

// BuildContactNotificationEmail is the notice sent to the salon for a new message.
func BuildContactNotificationEmail(to string, data ContactEmailData) Message {
	salon := salonOrDefault(data.Salon)
	subject := fmt.Sprintf("【%s】新しいお問い合わせ: %s", salon.Name, oneLine(data.Subject))

	textBody := fmt.Sprintf(`新しいお問い合わせ

件名: %s
お名前: %s
メール: %s
送信日時: %s

%s

管理画面から返信をお願いします。`,
		data.Subject, data.Name, data.Email, formatTimestamp(data.CreatedAt), data.Message)

	htmlBody := layoutOpen + fmt.Sprintf(`    <h2 style="color: #059669;">新しいお問い合わせ</h2>
    <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h4 style="margin-top: 0;">お問い合わせ詳細</h4>
        <p><strong>件名:</strong> %s</p>
        <p><strong>お名前:</strong> %s</p>
        <p><strong>メール:</strong> %s</p>
        <p><strong>送信日時:</strong> %s</p>
        <p><strong>メッセージ:</strong></p>
        <div style="background-color: white; padding: 15px; border-radius: 4px; margin-top: 10px;">%s</div>
    </div>
    <p>管理画面から返信をお願いします。</p>
`,
		esc(data.Subject), esc(data.Name), esc(data.Email), formatTimestamp(data.CreatedAt), multiline(data.Message)) + layoutClose

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
		Headers:  map[string]string{"Reply-To": data.Email},
	}
}

// BuildContactConfirmationEmail acknowledges a message to its sender.
func BuildContactConfirmationEmail(data ContactEmailData) Message {
	salon := salonOrDefault(data.Salon)
	subject := fmt.Sprintf("【%s】お問い合わせ受付確認", salon.Name)

	textBody := fmt.Sprintf(`%s 様

お問い合わせありがとうございます。以下の内容で承りました。

件名: %s
送信日時: %s

%s

内容を確認の上、担当者よりご連絡いたします。
しばらくお待ちください。

%s`,
		data.Name, data.Subject, formatTimestamp(data.CreatedAt), data.Message, footerText(salon))

	htmlBody := layoutOpen + fmt.Sprintf(`    <h2 style="color: #059669; text-align: center;">%s</h2>
    <h3>お問い合わせ受付確認</h3>
    <p>%s 様</p>
    <p>お問い合わせありがとうございます。以下の内容で承りました。</p>
    <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h4 style="margin-top: 0;">お問い合わせ内容</h4>
        <p><strong>件名:</strong> %s</p>
        <p><strong>お名前:</strong> %s</p>
        <p><strong>メール:</strong> %s</p>
        <p><strong>送信日時:</strong> %s</p>
        <p><strong>メッセージ:</strong></p>
        <div style="background-color: white; padding: 15px; border-radius: 4px; margin-top: 10px;">%s</div>
    </div>
    <p>内容を確認の上、担当者よりご連絡いたします。</p>
    <p>しばらくお待ちください。</p>
%s`,
		esc(salon.Name), esc(data.Name), esc(data.Subject), esc(data.Name), esc(data.Email),
		formatTimestamp(data.CreatedAt), multiline(data.Message), footerHTML(salon)) + layoutClose

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildReservationConfirmationEmail confirms a booking to the guest.
func BuildReservationConfirmationEmail(data ReservationEmailData) Message {
	salon := salonOrDefault(data.Salon)
	subject := fmt.Sprintf("【%s】ご予約確認", salon.Name)

	blend := data.BlendLabel
	if blend == "" {
		blend = "不明"
	}

	var optText, optHTML strings.Builder
	if data.Menu != "" {
		fmt.Fprintf(&optText, "メニュー: %s\n", data.Menu)
		fmt.Fprintf(&optHTML, "        <p><strong>メニュー:</strong> %s</p>\n", esc(data.Menu))
	}
	if data.Message != "" {
		fmt.Fprintf(&optText, "ご要望: %s\n", data.Message)
		fmt.Fprintf(&optHTML, "        <p><strong>ご要望:</strong> %s</p>\n", multiline(data.Message))
	}

	textBody := fmt.Sprintf(`%s 様

ご予約ありがとうございます。以下の内容で承りました。

予約番号: %s
日時: %s %s
ブレンド: %s
%s
ご来店時の注意事項
- 施術時間は約60分です
- 変更・キャンセルは前日までにご連絡ください
- 妊娠中の方は事前にご相談ください

%s`,
		data.Name, data.ID, formatDate(data.Date), data.Time, blend, optText.String(), footerText(salon))

	htmlBody := layoutOpen + fmt.Sprintf(`    <h2 style="color: #059669; text-align: center;">%s</h2>
    <h3>ご予約確認</h3>
    <p>%s 様</p>
    <p>ご予約ありがとうございます。以下の内容で承りました。</p>
    <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h4 style="margin-top: 0;">予約詳細</h4>
        <p><strong>予約番号:</strong> %s</p>
        <p><strong>日時:</strong> %s %s</p>
        <p><strong>ブレンド:</strong> %s</p>
%s        <p><strong>お名前:</strong> %s</p>
        <p><strong>メール:</strong> %s</p>
        <p><strong>電話番号:</strong> %s</p>
    </div>
    <div style="background-color: #fef3c7; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <h4 style="color: #92400e; margin-top: 0;">ご来店時の注意事項</h4>
        <ul style="color: #92400e;">
            <li>施術時間は約60分です</li>
            <li>変更・キャンセルは前日までにご連絡ください</li>
            <li>妊娠中の方は事前にご相談ください</li>
        </ul>
    </div>
    <p>ご質問がございましたら、お気軽にお問い合わせください。</p>
%s`,
		esc(salon.Name), esc(data.Name), esc(data.ID), esc(formatDate(data.Date)), esc(data.Time), esc(blend),
		optHTML.String(), esc(data.Name), esc(data.Email), esc(data.Phone), footerHTML(salon)) + layoutClose

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func salonOrDefault(s Salon) Salon {
	if s.Name == "" {
		s.Name = "よもぎ蒸しサロン"
	}
	return s
}

func footerText(s Salon) string {
	lines := []string{s.Name}
	if s.PostalAddress != "" {
		lines = append(lines, s.PostalAddress)
	}
	if s.Phone != "" {
		lines = append(lines, "TEL: "+s.Phone)
	}
	if s.Email != "" {
		lines = append(lines, "Email: "+s.Email)
	}
	return strings.Join(lines, "\n")
}

func footerHTML(s Salon) string {
	lines := strings.Split(footerText(s), "\n")
	for i := range lines {
		lines[i] = esc(lines[i])
	}
	return fmt.Sprintf(`    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
        <p style="color: #6b7280; font-size: 14px;">%s</p>
    </div>
`, strings.Join(lines, "<br>"))
}

func esc(s string) string {
	return html.EscapeString(s)
}

// multiline escapes s and keeps its line breaks.
func multiline(s string) string {
	return strings.ReplaceAll(esc(s), "\n", "<br>")
}

// oneLine strips line breaks so user text cannot inject headers.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jst).Format("2006/01/02 15:04:05")
}

func formatDate(d string) string {
	t, err := time.Parse(time.DateOnly, d)
	if err != nil {
		return d
	}
	return t.Format("2006/1/2")
}
