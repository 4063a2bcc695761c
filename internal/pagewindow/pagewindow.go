package pagewindow

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// BandRadius - сколько страниц показывается по обе стороны от текущей.
	BandRadius = 1
	// EllipsisThreshold - минимальное расстояние от текущей страницы до крайней,
	// начиная с которого между ними появляется многоточие.
	EllipsisThreshold = 2
)

// ErrInvalidArgument возвращается ComputeStrict для отрицательного числа страниц
// или номера страницы меньше 1.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind различает виды токенов. Нулевое значение не является допустимым видом.
type Kind int

const (
	KindPage Kind = iota + 1
	KindEllipsis
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token - одна единица пагинатора: номер страницы либо многоточие.
// Number имеет смысл только для KindPage.
type Token struct {
	Kind   Kind
	Number int
}

// Page создаёт токен страницы n.
func Page(n int) Token {
	return Token{Kind: KindPage, Number: n}
}

// Ellipsis создаёт токен многоточия.
func Ellipsis() Token {
	return Token{Kind: KindEllipsis}
}

// IsPage сообщает, является ли токен кликабельным номером страницы.
func (t Token) IsPage() bool {
	return t.Kind == KindPage
}

func (t Token) String() string {
	if t.Kind == KindEllipsis {
		return "…"
	}
	return fmt.Sprintf("%d", t.Number)
}

type tokenJSON struct {
	Type string `json:"type"`
	Page int    `json:"page,omitempty"`
}

// MarshalJSON кодирует токен как {"type":"page","page":n} или {"type":"ellipsis"}.
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindPage:
		return json.Marshal(tokenJSON{Type: "page", Page: t.Number})
	case KindEllipsis:
		return json.Marshal(tokenJSON{Type: "ellipsis"})
	default:
		return nil, fmt.Errorf("marshal token: unknown kind %d", int(t.Kind))
	}
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var raw tokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "page":
		*t = Page(raw.Page)
	case "ellipsis":
		*t = Ellipsis()
	default:
		return fmt.Errorf("unmarshal token: unknown type %q", raw.Type)
	}
	return nil
}

// Sequence - токены в порядке отрисовки слева направо.
type Sequence []Token

// Pages возвращает номера страниц последовательности без многоточий.
func (s Sequence) Pages() []int {
	pages := make([]int, 0, len(s))
	for _, t := range s {
		if t.IsPage() {
			pages = append(pages, t.Number)
		}
	}
	return pages
}

// Compute строит окно пагинатора для страницы current из total.
// При total <= 1 возвращается пустая последовательность: пагинатор не показывается.
// current не ограничивается диапазоном [1, total].
func Compute(current, total int) Sequence {
	if total <= 1 {
		return Sequence{}
	}

	seq := make(Sequence, 0, 2*BandRadius+5)
	seq = append(seq, Page(1))

	if current > 1+EllipsisThreshold {
		seq = append(seq, Ellipsis())
	}

	for i := max(2, current-BandRadius); i <= min(total-1, current+BandRadius); i++ {
		seq = append(seq, Page(i))
	}

	if current < total-EllipsisThreshold {
		seq = append(seq, Ellipsis())
	}

	return append(seq, Page(total))
}

// ComputeStrict работает как Compute, но отклоняет значения вне области определения.
func ComputeStrict(current, total int) (Sequence, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: total pages %d is negative", ErrInvalidArgument, total)
	}
	if current < 1 {
		return nil, fmt.Errorf("%w: current page %d is less than 1", ErrInvalidArgument, current)
	}
	return Compute(current, total), nil
}
