package errno

import "errors"

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage 返回同一错误码、替换了提示信息的副本
func (e Errno) WithMessage(msg string) Errno {
	return Errno{Code: e.Code, Message: msg}
}

// Is 按错误码比较, 这样 WithMessage 之后的副本依然能被 errors.Is 识别
func (e Errno) Is(target error) bool {
	var t Errno
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, err.Error()
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, err.Error()
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrValidation       = Errno{Code: 10003, Message: "Validation error"}
	ErrDatabase         = Errno{Code: 10004, Message: "Database error"}
)

// Mapper Errors (30000+)
// 301xx: 凭证/钱包相关, 302xx: 数据可用性相关
var (
	ErrMissingCredential         = Errno{Code: 30101, Message: "wallet password must be provided"}
	ErrWalletUnavailable         = Errno{Code: 30102, Message: "wallet could not be opened"}
	ErrUnknownSigner             = Errno{Code: 30103, Message: "signer address is not part of the wallet"}
	ErrRecipientPublicKeyUnknown = Errno{Code: 30201, Message: "recipient public key is unknown"}
)
