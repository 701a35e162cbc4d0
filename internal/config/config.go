package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maine/shibe_inline_bot/internal/shibe"
)

// Version попадает в User-Agent.
const Version = "0.2.0"

type (
	// Root объединяет все конфигурационные блоки.
	Root struct {
		Upstream Upstream `yaml:"upstream"`
		HTTP     HTTP     `yaml:"http"`
		Telegram Telegram `yaml:"telegram"`
	}

	// Upstream описывает API с картинками.
	Upstream struct {
		BaseURL string `yaml:"base_url"`
	}

	// HTTP - настройки общего HTTP-клиента. Задаются один раз при старте.
	HTTP struct {
		ConnectTimeout time.Duration `yaml:"connect_timeout"`
		Timeout        time.Duration `yaml:"timeout"`
		UserAgent      string        `yaml:"user_agent"`
	}

	// Telegram содержит параметры long polling и ответа на инлайн-запросы.
	Telegram struct {
		PollTimeout int  `yaml:"poll_timeout"` // секунды, 0 - short polling
		CacheTime   int  `yaml:"cache_time"`   // 0 - значение Telegram по умолчанию
		IsPersonal  bool `yaml:"is_personal"`
	}
)

// Default возвращает конфигурацию без файла.
func Default() Root {
	var cfg Root
	cfg.applyDefaults()
	return cfg
}

// LoadRoot читает основной файл конфигурации. Отсутствующий файл - не ошибка.
func LoadRoot(path string) (Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Root{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Root{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (r *Root) applyDefaults() {
	if r.Upstream.BaseURL == "" {
		r.Upstream.BaseURL = shibe.DefaultBaseURL
	}
	if r.HTTP.ConnectTimeout <= 0 {
		r.HTTP.ConnectTimeout = 5 * time.Second
	}
	if r.HTTP.Timeout <= 0 {
		r.HTTP.Timeout = shibe.DefaultTimeout
	}
	if r.HTTP.UserAgent == "" {
		r.HTTP.UserAgent = "shibe-inline-bot/" + Version
	}
	if r.Telegram.PollTimeout <= 0 {
		r.Telegram.PollTimeout = 10
	}
	// getUpdates ходит через тот же клиент, long poll должен укладываться в его таймаут.
	if limit := int(r.HTTP.Timeout/time.Second) - 2; r.Telegram.PollTimeout > limit {
		r.Telegram.PollTimeout = max(limit, 0)
	}
	if r.Telegram.CacheTime < 0 {
		r.Telegram.CacheTime = 0
	}
}
