package config

type Jwt struct {
	Secret  string `mapstructure:"secret"`
	Expires int    `mapstructure:"expires"` // access token有效期（小时）
	Issuer  string `mapstructure:"issuer"`
}
