package config

// Site 站点静态信息，由site接口原样下发
type Site struct {
	Name        string `mapstructure:"name" json:"name"`
	Description string `mapstructure:"description" json:"description"`
	Keywords    string `mapstructure:"keywords" json:"keywords"`
	ICP         string `mapstructure:"icp" json:"icp"`
	Author      string `mapstructure:"author" json:"author"`
}
