package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildContactNotificationEmail_EscapesUserText(t *testing.T) {
	m := BuildContactNotificationEmail("admin@yomogi.jp", ContactEmailData{
		Name:      "<script>alert(1)</script>",
		Email:     "guest@example.com",
		Subject:   "予約について\r\nBcc: evil@example.com",
		Message:   "一行目\n二行目",
		CreatedAt: time.Date(2026, 10, 1, 3, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, []string{"admin@yomogi.jp"}, m.To)
	assert.NotContains(t, m.Subject, "\n")
	assert.Contains(t, m.Subject, "【よもぎ蒸しサロン】新しいお問い合わせ")
	assert.NotContains(t, m.HTMLBody, "<script>")
	assert.Contains(t, m.HTMLBody, "&lt;script&gt;")
	assert.Contains(t, m.HTMLBody, "一行目<br>二行目")
	assert.Contains(t, m.HTMLBody, "2026/10/01 12:00:00")
	assert.Equal(t, "guest@example.com", m.Headers["Reply-To"])
}

func TestBuildContactConfirmationEmail(t *testing.T) {
	m := BuildContactConfirmationEmail(ContactEmailData{
		Name:    "山田",
		Email:   "yamada@example.com",
		Subject: "質問",
		Message: "こんにちは",
		Salon:   Salon{Name: "yosaPARK", Phone: "03-1234-5678"},
	})

	assert.Equal(t, []string{"yamada@example.com"}, m.To)
	assert.Equal(t, "【yosaPARK】お問い合わせ受付確認", m.Subject)
	assert.Contains(t, m.TextBody, "山田 様")
	assert.Contains(t, m.TextBody, "TEL: 03-1234-5678")
	assert.Contains(t, m.HTMLBody, "yosaPARK<br>TEL: 03-1234-5678")
}

func TestBuildReservationConfirmationEmail(t *testing.T) {
	m := BuildReservationConfirmationEmail(ReservationEmailData{
		ID:         "0192-abc",
		Name:       "佐藤",
		Email:      "sato@example.com",
		Phone:      "+819012345678",
		Date:       "2026-11-02",
		Time:       "10:30",
		BlendLabel: "温活ブレンド",
	})

	assert.Equal(t, "【よもぎ蒸しサロン】ご予約確認", m.Subject)
	assert.Contains(t, m.TextBody, "2026/11/2 10:30")
	assert.Contains(t, m.HTMLBody, "温活ブレンド")
	assert.NotContains(t, m.HTMLBody, "メニュー:")
	assert.NotContains(t, m.TextBody, "ご要望")

	withOpts := BuildReservationConfirmationEmail(ReservationEmailData{
		Email: "x@example.com", Date: "bad", Menu: "basic-metabolism", Message: "<b>hi</b>",
	})
	assert.Contains(t, withOpts.HTMLBody, "basic-metabolism")
	assert.Contains(t, withOpts.HTMLBody, "&lt;b&gt;hi&lt;/b&gt;")
	assert.Contains(t, withOpts.HTMLBody, "不明")
	assert.True(t, strings.Contains(withOpts.TextBody, "bad"))
}

func TestBuildMessage_Validation(t *testing.T) {
	_, err := buildMessage("", Message{To: []string{"a@b"}, Subject: "s", TextBody: "t"})
	assert.ErrorIs(t, err, ErrInvalidMessage)

	_, err = buildMessage("from@x", Message{To: []string{" "}, Subject: "s", TextBody: "t"})
	assert.ErrorIs(t, err, ErrInvalidMessage)

	_, err = buildMessage("from@x", Message{To: []string{"a@b"}, Subject: "s"})
	assert.ErrorIs(t, err, ErrInvalidMessage)

	msg, err := buildMessage("from@x", Message{To: []string{"a@b"}, Subject: "s", HTMLBody: "<p>x</p>"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a@b"}, msg.GetHeader("To"))
}

func TestClient_SendDisabled(t *testing.T) {
	c := New(Config{Enabled: false})
	err := c.Send(t.Context(), Message{})
	assert.ErrorIs(t, err, ErrDisabled)
}
