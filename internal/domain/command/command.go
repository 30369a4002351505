// Package command extracts the action tags an assistant embeds in its replies.
//
// Model output is untrusted input. Every tag is decoded strictly and validated before it
// becomes a typed command; anything else ends up as Unrecognized and must not be acted on.
package command

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"careconnect/internal/domain/reminder"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindSendMessage  Kind = "SEND_MESSAGE"
	KindAddMedicine  Kind = "ADD_MEDICINE"
	KindVisualize    Kind = "VISUALIZE"
	KindUnrecognized Kind = "UNRECOGNIZED"
)

// Command is one of SendMessage, AddMedicine, Visualize or Unrecognized.
type Command interface {
	Kind() Kind
	isCommand()
}

// SendMessage asks to relay a message to a caretaker on the user's behalf.
type SendMessage struct {
	RecipientID string `json:"recipientId" validate:"required,max=128"`
	Message     string `json:"message" validate:"required,max=2000"`
}

// AddMedicine asks to create a medicine schedule for the patient.
type AddMedicine struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Dosage       string   `json:"dosage" validate:"required,max=100"`
	Times        []string `json:"times" validate:"required,min=1,max=24,dive,timeofday"`
	Instructions string   `json:"instructions" validate:"max=500"`
}

// Visualize asks for an illustration of the prompt.
type Visualize struct {
	Prompt string `validate:"required,max=500"`
}

// Unrecognized is any tag that did not decode into a known, valid command.
type Unrecognized struct {
	Tag     string
	Payload string
	Reason  string
}

func (SendMessage) Kind() Kind  { return KindSendMessage }
func (AddMedicine) Kind() Kind  { return KindAddMedicine }
func (Visualize) Kind() Kind    { return KindVisualize }
func (Unrecognized) Kind() Kind { return KindUnrecognized }

func (SendMessage) isCommand()  {}
func (AddMedicine) isCommand()  {}
func (Visualize) isCommand()    {}
func (Unrecognized) isCommand() {}

// Parsed is a reply split into visible text and commands, in order of appearance.
type Parsed struct {
	Text     string
	Commands []Command
}

const tagClose = ">>>"

var tagOpen = regexp.MustCompile(`<<<([A-Za-z_]+)=`)

// Parser decodes tags.
type Parser struct {
	validate *validator.Validate
}

func NewParser() (*Parser, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := reminder.ParseTimeOfDay(fl.Field().String())

		return err == nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "register timeofday validation")
	}

	return &Parser{validate: v}, nil
}

// Parse extracts every tag from reply. Tags are removed from the returned text whether or
// not they were recognized. A JSON payload extends to the end of its JSON value, so ">>>"
// inside a string does not close the tag.
func (p *Parser) Parse(reply string) Parsed {
	var (
		text     strings.Builder
		commands []Command
	)

	pos := 0
	for pos < len(reply) {
		loc := tagOpen.FindStringSubmatchIndex(reply[pos:])
		if loc == nil {
			break
		}
		openStart, payloadStart := pos+loc[0], pos+loc[1]
		tag := reply[pos+loc[2] : pos+loc[3]]

		cmd, end, ok := p.scan(tag, reply, payloadStart)
		if !ok {
			// never closed: leave it as text
			text.WriteString(reply[pos:payloadStart])
			pos = payloadStart

			continue
		}

		text.WriteString(reply[pos:openStart])
		commands = append(commands, cmd)
		pos = end
	}
	text.WriteString(reply[pos:])

	return Parsed{
		Text:     strings.TrimSpace(text.String()),
		Commands: commands,
	}
}

// scan decodes the tag whose payload starts at reply[start:] and returns the offset just
// past its closing marker.
func (p *Parser) scan(tag, reply string, start int) (Command, int, bool) {
	kind := Kind(strings.ToUpper(tag))
	if kind == KindSendMessage || kind == KindAddMedicine {
		if raw, end, ok := jsonExtent(reply, start); ok {
			return p.decode(tag, raw), end, true
		}
	}

	closeAt := strings.Index(reply[start:], tagClose)
	if closeAt < 0 {
		return nil, 0, false
	}
	payload := reply[start : start+closeAt]

	return p.decode(tag, strings.TrimSpace(payload)), start + closeAt + len(tagClose), true
}

// jsonExtent reports the JSON value at reply[start:] when it is followed, after optional
// whitespace, by the closing marker.
func jsonExtent(reply string, start int) (string, int, bool) {
	dec := json.NewDecoder(strings.NewReader(reply[start:]))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return "", 0, false
	}

	after := start + int(dec.InputOffset())
	rest := strings.TrimLeft(reply[after:], " \t\r\n")
	if !strings.HasPrefix(rest, tagClose) {
		return "", 0, false
	}
	end := len(reply) - len(rest) + len(tagClose)

	return strings.TrimSpace(reply[start:after]), end, true
}

func (p *Parser) decode(tag, payload string) Command {
	switch Kind(strings.ToUpper(tag)) {
	case KindSendMessage:
		var cmd SendMessage
		if err := p.decodeJSON(payload, &cmd); err != nil {
			return unrecognized(tag, payload, err)
		}
		cmd.RecipientID = strings.TrimSpace(cmd.RecipientID)
		cmd.Message = strings.TrimSpace(cmd.Message)
		if err := p.validate.Struct(cmd); err != nil {
			return unrecognized(tag, payload, err)
		}

		return cmd
	case KindAddMedicine:
		var cmd AddMedicine
		if err := p.decodeJSON(payload, &cmd); err != nil {
			return unrecognized(tag, payload, err)
		}
		cmd.Name = strings.TrimSpace(cmd.Name)
		cmd.Dosage = strings.TrimSpace(cmd.Dosage)
		if err := p.validate.Struct(cmd); err != nil {
			return unrecognized(tag, payload, err)
		}

		return cmd
	case KindVisualize:
		cmd := Visualize{Prompt: payload}
		if err := p.validate.Struct(cmd); err != nil {
			return unrecognized(tag, payload, err)
		}

		return cmd
	default:
		return Unrecognized{Tag: tag, Payload: payload, Reason: "unknown command tag"}
	}
}

func (p *Parser) decodeJSON(payload string, dst any) error {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrap(err, "decode payload")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after payload")
	}

	return nil
}

func unrecognized(tag, payload string, err error) Unrecognized {
	return Unrecognized{Tag: tag, Payload: payload, Reason: err.Error()}
}
