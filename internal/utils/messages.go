package utils

import (
	"errors"

	"github.com/vskvj3/linkedlist/internal/datastructures"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. English text doubles as the key.
const (
	MsgListEmpty   = "list is empty"
	MsgNotFound    = "value not found"
	MsgInvalidPos  = "invalid position"
	MsgOutOfRange  = "position out of range"
	MsgOK          = "OK"
	MsgSearch      = "search %v: %t"
	MsgLength      = "length: %d"
	MsgMiddle      = "middle node: %v"
	MsgNth         = "node %d: %v"
	MsgIsEmpty     = "is empty: %t"
	MsgCommandFail = "%s failed: %s"
)

var supported = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(supported)

func init() {
	ko := []struct{ key, msg string }{
		{MsgListEmpty, "리스트가 비어 있습니다."},
		{MsgNotFound, "리스트에 해당 데이터가 없습니다."},
		{MsgInvalidPos, "잘못된 위치입니다."},
		{MsgOutOfRange, "위치가 범위를 벗어났습니다."},
		{MsgOK, "완료"},
		{MsgSearch, "%v 검색: %t"},
		{MsgLength, "리스트 길이: %d"},
		{MsgMiddle, "중간 노드: %v"},
		{MsgNth, "%d번째 노드: %v"},
		{MsgIsEmpty, "비어 있음: %t"},
		{MsgCommandFail, "%s 실패: %s"},
	}
	for _, m := range ko {
		if err := message.SetString(language.Korean, m.key, m.msg); err != nil {
			panic(err)
		}
	}
}

// Messages renders user facing status lines in one language.
type Messages struct {
	printer *message.Printer
}

// NewMessages returns a Messages for the closest supported language to lang.
// Unknown languages fall back to English.
func NewMessages(lang string) *Messages {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	return &Messages{printer: message.NewPrinter(language.Make(base.String()))}
}

// Sprintf formats a message key with args.
func (m *Messages) Sprintf(key string, args ...interface{}) string {
	return m.printer.Sprintf(key, args...)
}

// Describe returns a localized description of a list error.
func (m *Messages) Describe(err error) string {
	switch {
	case err == nil:
		return m.Sprintf(MsgOK)
	case errors.Is(err, datastructures.ErrEmptyList):
		return m.Sprintf(MsgListEmpty)
	case errors.Is(err, datastructures.ErrNotFound):
		return m.Sprintf(MsgNotFound)
	case errors.Is(err, datastructures.ErrInvalidPosition):
		return m.Sprintf(MsgInvalidPos)
	case errors.Is(err, datastructures.ErrOutOfRange):
		return m.Sprintf(MsgOutOfRange)
	default:
		return err.Error()
	}
}
