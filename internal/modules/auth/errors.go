package auth

import "errors"

// Validation and flow errors carry the user-facing Chinese message; the
// handler forwards err.Error() verbatim.
var (
	ErrInvalidUsername  = errors.New("用户名需以字母开头，6-30位字母数字或下划线")
	ErrInvalidEmail     = errors.New("邮箱格式不正确")
	ErrInvalidPhone     = errors.New("手机号格式不正确")
	ErrInvalidIDNo      = errors.New("证件号码格式不正确")
	ErrPasswordTooShort = errors.New("密码长度至少6位")
	ErrPasswordMismatch = errors.New("两次输入的密码不一致")
	ErrWeakPassword     = errors.New("需包含字母、数字、下划线中至少两种且长度≥6")
	ErrAccountExists    = errors.New("用户名/邮箱/手机号已存在")

	ErrAccountNotFound = errors.New("账号不存在，请先注册")
	ErrWrongPassword   = errors.New("密码错误")

	ErrResetAccountNotFound = errors.New("账号不存在")
	ErrCodeNotSent          = errors.New("请先发送验证码")
	ErrCodeExpired          = errors.New("验证码已过期")
	ErrCodeMismatch         = errors.New("验证码错误")

	ErrQrSessionExpired = errors.New("二维码已失效，请刷新")
	ErrNoSession        = errors.New("未登录")
)
