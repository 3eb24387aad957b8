package model

// TransferSendRequest 转账请求. Password 为 nil 时拒绝解锁钱包
type TransferSendRequest struct {
	WalletName           WalletName
	SignerAddress        Address
	RecipientAddress     Address
	Amount               Amount
	Message              *string
	ShouldEncryptMessage bool
	DeadlineHours        int
	Password             *WalletPassword
	Fee                  Amount // 调用方已协商好的手续费, 不重新计算
}

func (r TransferSendRequest) WalletNamePasswordPair() WalletNamePasswordPair {
	return WalletNamePasswordPair{Name: r.WalletName, Password: r.Password}
}

// TransferImportanceRequest 委托 (或撤销) 收获权
type TransferImportanceRequest struct {
	SignerAddress Address
	WalletName    WalletName
	Password      *WalletPassword
	DeadlineHours int
	Mode          ImportanceTransferMode
}

func (r TransferImportanceRequest) WalletNamePasswordPair() WalletNamePasswordPair {
	return WalletNamePasswordPair{Name: r.WalletName, Password: r.Password}
}

// PartialTransferInformationRequest 只用于费用估算, 不访问钱包
type PartialTransferInformationRequest struct {
	RecipientAddress         *Address
	Amount                   *Amount
	Message                  *string
	IsSecureMessageRequested bool
}

type PartialTransferInformationViewModel struct {
	Fee                   Amount
	IsEncryptionSupported bool
}
