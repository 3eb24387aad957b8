package model

type WalletName string

func (n WalletName) String() string { return string(n) }

type WalletPassword string

func (p WalletPassword) Bytes() []byte { return []byte(p) }

// String 不输出明文, 防止密码进日志
func (p WalletPassword) String() string { return "******" }

// WalletNamePasswordPair 单次请求内构造, 不落盘
type WalletNamePasswordPair struct {
	Name     WalletName
	Password *WalletPassword
}

func NewWalletNamePasswordPair(name WalletName, password WalletPassword) WalletNamePasswordPair {
	return WalletNamePasswordPair{Name: name, Password: &password}
}
