package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/contacto/internal/client/models"
	"golang.org/x/term"
)

// isTerminal and terminalWidth are test seams over golang.org/x/term.
var (
	isTerminal    = term.IsTerminal
	terminalWidth = func(fd int) (int, error) {
		w, _, err := term.GetSize(fd)
		return w, err
	}
)

const (
	minMessageWidth = 10
	columnPadding   = 2
)

var tableHeader = models.ContactRow{ID: "ID", Name: "Name", Email: "Email", Message: "Message", Date: "Date"}

// stdoutWidth returns the terminal width of stdout, or 0 when stdout is not
// a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !isTerminal(fd) {
		return 0
	}
	w, err := terminalWidth(fd)
	if err != nil {
		return 0
	}
	return w
}

// renderTable writes rows as aligned columns. With a positive width the
// message column is shortened so each line fits.
func renderTable(w io.Writer, rows []models.ContactRow, width int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No contacts")
		return err
	}

	rows = singleLineRows(rows)
	if width > 0 {
		rows = fitMessages(rows, width)
	}

	tw := tabwriter.NewWriter(w, 0, 0, columnPadding, ' ', 0)
	for _, r := range append([]models.ContactRow{tableHeader}, rows...) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Email, r.Message, r.Date)
	}
	return tw.Flush()
}

func fitMessages(rows []models.ContactRow, width int) []models.ContactRow {
	var idW, nameW, emailW, dateW int
	for _, r := range append([]models.ContactRow{tableHeader}, rows...) {
		idW = max(idW, utf8.RuneCountInString(r.ID))
		nameW = max(nameW, utf8.RuneCountInString(r.Name))
		emailW = max(emailW, utf8.RuneCountInString(r.Email))
		dateW = max(dateW, utf8.RuneCountInString(r.Date))
	}

	avail := width - (idW + nameW + emailW + dateW + 4*columnPadding)
	avail = max(avail, minMessageWidth)

	out := make([]models.ContactRow, len(rows))
	for i, r := range rows {
		r.Message = truncate(r.Message, avail)
		out[i] = r
	}
	return out
}

// singleLineRows returns a copy of rows where no cell holds a tab or line
// break, so every contact stays on one tabwriter line.
func singleLineRows(rows []models.ContactRow) []models.ContactRow {
	out := make([]models.ContactRow, len(rows))
	for i, r := range rows {
		out[i] = models.ContactRow{
			ID:      singleLine(r.ID),
			Name:    singleLine(r.Name),
			Email:   singleLine(r.Email),
			Message: singleLine(r.Message),
			Date:    singleLine(r.Date),
		}
	}
	return out
}

func singleLine(s string) string {
	b := []rune(s)
	for i, c := range b {
		if c == '\n' || c == '\r' || c == '\t' {
			b[i] = ' '
		}
	}
	return string(b)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
