package shibe

import "fmt"

const (
	// DefaultCount - количество картинок, если в запросе оно не указано.
	DefaultCount = 5
	// MaxCount - верхняя граница count, которую принимает upstream.
	MaxCount = 25
)

// Endpoint - категория картинок на стороне upstream API.
type Endpoint int

const (
	Shibes Endpoint = iota
	Cats
	Birds
)

// endpointNames - каноническое имя категории, оно же сегмент пути в URL.
var endpointNames = map[Endpoint]string{
	Shibes: "shibes",
	Cats:   "cats",
	Birds:  "birds",
}

// String возвращает каноническое имя категории.
func (e Endpoint) String() string {
	if name, ok := endpointNames[e]; ok {
		return name
	}
	return fmt.Sprintf("endpoint(%d)", int(e))
}

// Query - разобранный инлайн-запрос. Нулевое значение не является
// запросом по умолчанию, используйте DefaultQuery.
type Query struct {
	Endpoint Endpoint
	Count    int
}

// DefaultQuery возвращает {Shibes, 5}.
func DefaultQuery() Query {
	return Query{
		Endpoint: Shibes,
		Count:    DefaultCount,
	}
}

// PhotoResult - одна картинка для ответа на инлайн-запрос.
type PhotoResult struct {
	ID       string
	PhotoURL string
	ThumbURL string
}

// InlineRequest описывает входящий инлайн-запрос.
type InlineRequest struct {
	ID        string
	Text      string
	Requester string // только для логов
}
