package helper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/unicode/norm"
)

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// Decode reads a JSON body regardless of the Content-Type header.
func Decode(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "request body is empty")
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	return nil
}

// DecodeStrict is Decode that rejects keys the target does not declare.
func DecodeStrict(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "request body is empty")
	}
	if err := strictJSON.Unmarshal(body, dst); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unknown field") {
			return fiber.NewError(fiber.StatusBadRequest, "request contains unknown fields")
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	return nil
}

/* ===============================
   Text
=================================*/

// CleanText trims and NFC-normalises so Bengali strings compare byte-stable.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanTextPtr is CleanText for optional columns; blank becomes nil.
func CleanTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := CleanText(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ===============================
   Image reference lists
=================================*/

// StringList accepts a JSON array or the legacy JSON-encoded array inside a string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*l = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*l = StringList{}
			return nil
		}
		b = []byte(s)
	}
	var out []string
	if err := sonic.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("expected an array of image references: %w", err)
	}
	*l = out
	return nil
}

// Clean drops blank entries.
func (l StringList) Clean() []string {
	out := make([]string, 0, len(l))
	for _, s := range l {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
