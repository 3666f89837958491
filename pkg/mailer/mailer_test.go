package mailer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeDialer struct {
	fails int
	sent  []*mail.Message
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	if d.fails > 0 {
		d.fails--
		return errors.New("421 service not available")
	}
	d.sent = append(d.sent, m...)
	return nil
}

type overdueData struct {
	Name  string
	Books []struct {
		Title   string
		DueDate time.Time
	}
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()
	d := &fakeDialer{fails: 1}
	m := &Mailer{dialer: d, sender: "lib@example.com", attempts: 3}

	data := overdueData{Name: "Nimal Perera"}
	data.Books = append(data.Books, struct {
		Title   string
		DueDate time.Time
	}{Title: "Madol Doova", DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, m.Send("nimal@example.com", "overdue_notice.tmpl", data))
	require.Len(t, d.sent, 1)
	require.Equal(t, []string{"nimal@example.com"}, d.sent[0].GetHeader("To"))
	require.Equal(t, []string{"Overdue Book Notification - TURN THE PAGE Library"}, d.sent[0].GetHeader("Subject"))
}

func TestMailer_SendGivesUp(t *testing.T) {
	t.Parallel()
	d := &fakeDialer{fails: 5}
	m := &Mailer{dialer: d, sender: "lib@example.com", attempts: 2}

	err := m.Send("a@example.com", "reader_welcome.tmpl", map[string]string{"Name": "A", "MemberID": "Reader-2024-12345"})
	require.Error(t, err)
	require.Empty(t, d.sent)
	require.Equal(t, 3, d.fails)
}

func TestMailer_UnknownTemplate(t *testing.T) {
	t.Parallel()
	m := &Mailer{dialer: &fakeDialer{}, attempts: 1}
	require.Error(t, m.Send("a@example.com", "missing.tmpl", nil))
}
