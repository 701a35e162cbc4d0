package shibe

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// MapURL превращает URL картинки в PhotoResult.
// Возвращает false, если URL невалиден или из него нельзя достать идентификатор.
func MapURL(raw string) (PhotoResult, bool) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		log.Warn().Str("url", raw).Msg("Skipping image: invalid image URL")
		return PhotoResult{}, false
	}

	id, ok := parseID(u)
	if !ok {
		log.Warn().Str("url", u.String()).Msg("Failed to parse image ID from URL, skipping image")
		return PhotoResult{}, false
	}

	// Отдельную миниатюру не запрашиваем: картинки и так маленькие.
	full := u.String()
	return PhotoResult{
		ID:       id,
		PhotoURL: full,
		ThumbURL: full,
	}, true
}

// MapURLs сохраняет порядок upstream и молча отбрасывает негодные URL.
func MapURLs(urls []string) []PhotoResult {
	results := make([]PhotoResult, 0, len(urls))
	for _, raw := range urls {
		if res, ok := MapURL(raw); ok {
			results = append(results, res)
		}
	}
	return results
}

// parseID берёт последний сегмент пути и отрезает ровно один суффикс ".jpg".
func parseID(u *url.URL) (string, bool) {
	path := strings.TrimPrefix(u.EscapedPath(), "/")
	if path == "" {
		return "", false
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "", false
	}

	// Только один суффикс: "a.jpg.jpg" -> "a.jpg".
	id := strings.TrimSuffix(last, ".jpg")
	return id, id != ""
}
