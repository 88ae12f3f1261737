package pageviews

import "fmt"

// FormatError - строка дампа, которую не удалось разобрать на поля.
// Line начинается с 1; ноль, если ошибка пришла напрямую из ParseLine
type FormatError struct {
	Line   int64
	Text   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// FilesystemError - входной файл не читается или выходной файл не записывается
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
