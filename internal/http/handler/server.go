package handler

import (
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/config"
)

const maxBodyBytes = 10 * 1024 * 1024

// ServerConfig is the Fiber configuration of the API server. When a proxy
// header is configured, c.IP() reads the first valid address from it, and
// only for requests arriving from TrustedProxies if that list is set.
func ServerConfig(p config.ProxyConfig) fiber.Config {
	cfg := fiber.Config{
		ErrorHandler: ErrorHandler(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    maxBodyBytes,
	}
	if p.Header != "" {
		cfg.ProxyHeader = p.Header
		cfg.EnableIPValidation = true
		if len(p.TrustedProxies) > 0 {
			cfg.EnableTrustedProxyCheck = true
			cfg.TrustedProxies = p.TrustedProxies
		}
	}
	return cfg
}
