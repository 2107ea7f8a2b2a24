package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/spachava753/addressbook/person"
)

var categoryLabels = map[person.Category]string{
	person.CategoryPhone:   "Phone",
	person.CategoryEmail:   "Email",
	person.CategoryAddress: "Address",
}

func buildMessage(from, to, subject, body string, now time.Time) []byte {
	subject = sanitizeHeader(subject)
	if subject == "" {
		subject = "(no subject)"
	}
	headers := []string{
		fmt.Sprintf("From: %s", sanitizeHeader(from)),
		fmt.Sprintf("To: %s", sanitizeHeader(to)),
		fmt.Sprintf("Subject: %s", subject),
		fmt.Sprintf("Date: %s", now.Format(time.RFC1123Z)),
		fmt.Sprintf("Message-ID: %s", generateMessageID(from, now)),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + normalizeBody(body) + "\r\n")
}

// card renders one person as labelled lines. Private entries are skipped
// unless showPrivate is set, in which case they are marked.
func card(p person.ReadOnly, showPrivate bool) string {
	lines := []string{"Name: " + p.Name().String()}
	for _, category := range person.Categories {
		for _, entry := range p.Entries(category) {
			if entry.Private && !showPrivate {
				continue
			}
			label := categoryLabels[category]
			if entry.Type != person.DefaultType {
				label += " (" + entry.Type + ")"
			}
			value := entry.Value
			if entry.Private {
				value = "(private) " + value
			}
			lines = append(lines, label+": "+value)
		}
	}
	if tags := p.Tags(); tags.Len() > 0 {
		lines = append(lines, "Tags: "+tags.String())
	}
	return strings.Join(lines, "\n")
}

func snapshot(persons []person.ReadOnly) string {
	if len(persons) == 0 {
		return "The address book is empty."
	}
	cards := make([]string, 0, len(persons))
	for i, p := range persons {
		cards = append(cards, fmt.Sprintf("%d.\n%s", i+1, card(p, true)))
	}
	return strings.Join(cards, "\n\n")
}

func backupSubject(count int, now time.Time) string {
	return fmt.Sprintf("Address book backup %s (%d persons)", now.UTC().Format(time.RFC3339), count)
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

func normalizeBody(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")
	return strings.TrimSpace(body)
}

func generateMessageID(address string, now time.Time) string {
	domain := "localhost"
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		domain = address[at+1:]
	}
	return fmt.Sprintf("<%d.%s>", now.UnixNano(), domain)
}
