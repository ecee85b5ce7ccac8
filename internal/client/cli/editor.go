package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contacto/internal/client/form"
	"github.com/dmitrijs2005/contacto/internal/client/services"
)

var fieldLabels = map[form.Field]string{
	form.FieldName:    "Name",
	form.FieldEmail:   "Email",
	form.FieldMessage: "Message",
}

// runSession drives an edit session on the terminal: every field is asked
// once, then the user saves, fixes fields or cancels until the session is
// closed. Input errors cancel the session so it never stays open.
func (a *App) runSession(ctx context.Context, s *services.EditSession) error {
	if s.Editing() {
		fmt.Fprintf(a.out, "Editing contact %d (press Enter to keep a value)\n", s.ContactID())
	} else {
		fmt.Fprintln(a.out, "New contact")
	}

	if err := a.askFields(s, form.Fields); err != nil {
		_ = s.Cancel(ctx)
		return err
	}

	label := s.SaveLabel()
	short := strings.ToLower(label[:1])
	prompt := fmt.Sprintf("%s, fix or cancel? [%s/f/c]", label, short)

	for {
		choice, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			_ = s.Cancel(ctx)
			return err
		}

		switch strings.ToLower(choice) {
		case "", short, strings.ToLower(label):
			err := s.Submit(ctx)
			var ve *form.ValidationError
			switch {
			case err == nil:
				return nil
			case errors.As(err, &ve):
				a.printErrors(ve.Fields)
			default:
				// the notifier has already shown the failure; the draft is kept for a retry
				a.logger.Debug(ctx, "submit failed", "error", err)
			}

		case "f", "fix":
			fields := invalidFields(s.Errors())
			if len(fields) == 0 {
				fields = form.Fields
			}
			if err := a.askFields(s, fields); err != nil {
				_ = s.Cancel(ctx)
				return err
			}

		case "c", "cancel":
			return s.Cancel(ctx)

		default:
			fmt.Fprintln(a.out, "Unknown choice:", choice)
		}
	}
}

// askFields prompts for each field and prints its error right after entry.
// An empty answer keeps a non-empty current value.
func (a *App) askFields(s *services.EditSession, fields []form.Field) error {
	for _, f := range fields {
		current := form.Value(s.Draft(), f)

		prompt := fieldLabels[f]
		if current != "" {
			prompt = fmt.Sprintf("%s [%s]", prompt, current)
		}

		read := getSimpleText
		if f == form.FieldMessage {
			read = getMultiline
		}
		value, err := read(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if value == "" && current != "" {
			continue
		}

		errs, err := s.SetField(f, value)
		if err != nil {
			return err
		}
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(a.out, "  %s: %s\n", fieldLabels[f], msg)
		}
	}
	return nil
}

func (a *App) printErrors(errs form.Errors) {
	for _, f := range form.Fields {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(a.out, "  %s: %s\n", fieldLabels[f], msg)
		}
	}
}

func invalidFields(errs form.Errors) []form.Field {
	var out []form.Field
	for _, f := range form.Fields {
		if _, ok := errs[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
