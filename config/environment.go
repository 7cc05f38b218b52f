package config

// Cookie holds the auth cookie attributes.
type Cookie struct {
	IsDevelopment bool   `mapstructure:"-"`
	Domain        string `mapstructure:"domain"`
	Secure        bool   `mapstructure:"-"`
}

func NewCookie(domain string) Cookie {
	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	return Cookie{
		IsDevelopment: isDev,
		Domain:        domain,
		Secure:        !isDev,
	}
}
