package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// PageConfig is the user-facing copy of the redirect and QR pages.
// It lives in YAML so the text can be translated without a rebuild.
type PageConfig struct {
	Lang     string         `yaml:"lang"`
	Redirect RedirectConfig `yaml:"redirect"`
	QR       QRConfig       `yaml:"qr"`
}

// RedirectConfig holds the copy shown while Messages is being opened.
type RedirectConfig struct {
	Title     string `yaml:"title"`
	Heading   string `yaml:"heading"`
	Fallback  string `yaml:"fallback"`   // Text before the manual link
	LinkLabel string `yaml:"link_label"` // Text of the manual link
}

// QRConfig holds the copy of the QR page.
type QRConfig struct {
	Title        string `yaml:"title"`
	Heading      string `yaml:"heading"`
	Instructions string `yaml:"instructions"`
	Hint         string `yaml:"hint,omitempty"` // Optional extra line, hidden when empty
}

// DefaultPageConfig returns the built-in English copy.
func DefaultPageConfig() *PageConfig {
	return &PageConfig{
		Lang: "en",
		Redirect: RedirectConfig{
			Title:     "Opening iMessage…",
			Heading:   "Opening iMessage…",
			Fallback:  "If nothing happens, tap:",
			LinkLabel: "Open iMessage",
		},
		QR: QRConfig{
			Title:        "Contact via iMessage",
			Heading:      "Contact via iMessage",
			Instructions: "Scan this code with the camera on your iPhone or iPad. It will open Messages automatically.",
		},
	}
}

// LoadPageConfig loads page copy from path.
// Returns the defaults without error if the file doesn't exist.
func LoadPageConfig(path string) (*PageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return DefaultPageConfig(), nil
		}
		return nil, err
	}

	var cfg PageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.fillDefaults()
	return &cfg, nil
}

func (c *PageConfig) fillDefaults() {
	d := DefaultPageConfig()
	setDefault(&c.Lang, d.Lang)
	setDefault(&c.Redirect.Title, d.Redirect.Title)
	setDefault(&c.Redirect.Heading, d.Redirect.Heading)
	setDefault(&c.Redirect.Fallback, d.Redirect.Fallback)
	setDefault(&c.Redirect.LinkLabel, d.Redirect.LinkLabel)
	setDefault(&c.QR.Title, d.QR.Title)
	setDefault(&c.QR.Heading, d.QR.Heading)
	setDefault(&c.QR.Instructions, d.QR.Instructions)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
