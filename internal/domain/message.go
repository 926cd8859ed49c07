package domain

import (
	"encoding/json"
	"fmt"
)

// Message is the payload of a log entry. It is either a SuccessMessage or
// an ErrorMessage, selected by the entry's LogType.
type Message interface {
	Type() LogType
	Text() string
}

type SuccessMessage struct {
	Value string
}

func (SuccessMessage) Type() LogType  { return LogTypeSuccess }
func (m SuccessMessage) Text() string { return m.Value }

type successJSON struct {
	Success bool   `json:"success"`
	Value   string `json:"value"`
}

func (m SuccessMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(successJSON{Success: true, Value: m.Value})
}

type ErrorMessage struct {
	Error string
}

func (ErrorMessage) Type() LogType  { return LogTypeError }
func (m ErrorMessage) Text() string { return m.Error }

type errorJSON struct {
	Error string `json:"error"`
}

func (m ErrorMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{Error: m.Error})
}

func NewMessage(logType LogType, text string) (Message, error) {
	switch logType {
	case LogTypeSuccess:
		return SuccessMessage{Value: text}, nil
	case LogTypeError:
		return ErrorMessage{Error: text}, nil
	default:
		return nil, ErrInvalidLogType
	}
}

func EncodeMessage(m Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("encode message: %w", ErrInvalidLogType)
	}
	return json.Marshal(m)
}

// DecodeMessage restores a payload stored as JSON. The log type decides
// which shape is expected.
func DecodeMessage(logType LogType, data []byte) (Message, error) {
	switch logType {
	case LogTypeSuccess:
		var s successJSON
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode success message: %w", err)
		}
		return SuccessMessage{Value: s.Value}, nil
	case LogTypeError:
		var e errorJSON
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decode error message: %w", err)
		}
		return ErrorMessage{Error: e.Error}, nil
	default:
		return nil, ErrInvalidLogType
	}
}
