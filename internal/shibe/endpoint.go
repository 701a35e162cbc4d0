package shibe

import (
	"errors"
	"fmt"
)

// ErrUnknownEndpoint возвращается, когда токен не совпадает ни с одним алиасом.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// endpointAliases - таблица алиасов. Сравнение регистрозависимое.
var endpointAliases = map[string]Endpoint{
	"shibe":  Shibes,
	"shibes": Shibes,
	"shiba":  Shibes,
	"shibas": Shibes,
	"cat":    Cats,
	"cats":   Cats,
	"bird":   Birds,
	"birds":  Birds,
}

// ParseEndpoint ищет категорию по алиасу.
func ParseEndpoint(s string) (Endpoint, error) {
	ep, ok := endpointAliases[s]
	if !ok {
		return Shibes, fmt.Errorf("%w: %q", ErrUnknownEndpoint, s)
	}
	return ep, nil
}
