package config

type ServiceConfig struct {
	Name        string       `yaml:"name"`
	Environment string       `yaml:"environment"`
	WebRoot     string       `yaml:"web_root"`
	PayPal      PayPalConfig `yaml:"paypal"`
}

type PayPalConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	APIBaseURL   string `yaml:"api_base_url"`
	ReturnURL    string `yaml:"return_url"`
	DisplayName  string `yaml:"display_name"`
}
