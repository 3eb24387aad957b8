package request

// TransferPrepareRequest 金额和手续费都是整币单位的十进制字符串
type TransferPrepareRequest struct {
	Wallet        string  `json:"wallet" binding:"required,max=128"`
	Password      *string `json:"password"` // 缺失时返回 30101, 不做 binding 校验
	Signer        string  `json:"signer" binding:"required"`
	Recipient     string  `json:"recipient" binding:"required"`
	Amount        string  `json:"amount" binding:"required,amount"`
	Fee           string  `json:"fee" binding:"required,amount"`
	Message       *string `json:"message" binding:"omitempty,max=1024"`
	Encrypt       bool    `json:"encrypt"`
	DeadlineHours int     `json:"deadline_hours" binding:"gte=0,max=24"`
}

type ImportanceTransferRequest struct {
	Wallet        string  `json:"wallet" binding:"required,max=128"`
	Password      *string `json:"password"`
	Signer        string  `json:"signer" binding:"required"`
	DeadlineHours int     `json:"deadline_hours" binding:"gte=0,max=24"`
}

// TransferValidateRequest 所有字段可选
type TransferValidateRequest struct {
	Recipient *string `json:"recipient"`
	Amount    *string `json:"amount" binding:"omitempty,amount"`
	Message   *string `json:"message" binding:"omitempty,max=1024"`
	Encrypt   bool    `json:"encrypt"`
}

// RememberAccountRequest 登记一个账户的公钥 (压缩公钥 hex)
type RememberAccountRequest struct {
	Address   string `json:"address" binding:"required"`
	PublicKey string `json:"public_key" binding:"required,len=66,hexadecimal"`
}
