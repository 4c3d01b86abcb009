package config

type Captcha struct {
	Open      bool `mapstructure:"open"`       // 是否对匿名评论开启验证码校验
	KeyLong   int  `mapstructure:"key_long"`   // 验证码位数
	ImgWidth  int  `mapstructure:"img_width"`  // 图片宽度
	ImgHeight int  `mapstructure:"img_height"` // 图片高度
	Expire    int  `mapstructure:"expire"`     // 验证码有效期（秒）
}
